package graft_test

import (
	"errors"
	"testing"

	"github.com/aretw0/graft"
)

func TestGet(t *testing.T) {
	m := graft.Map{
		"a": graft.Number(1),
		"b": graft.Map{"c": graft.Number(2)},
	}

	tests := []struct {
		name    string
		key     string
		want    graft.Value
		wantErr error
	}{
		{name: "top level", key: "a", want: graft.Number(1)},
		{name: "nested", key: "b.c", want: graft.Number(2)},
		{name: "whole sub-map", key: "b", want: graft.Map{"c": graft.Number(2)}},
		{name: "missing final segment", key: "b.x", wantErr: graft.ErrKeyNotFound},
		{name: "missing intermediate", key: "x.y", wantErr: graft.ErrKeyNotFound},
		{name: "scalar in path", key: "a.b", wantErr: graft.ErrNotTraversable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := graft.Get(m, tt.key)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Get(%q) error = %v, want %v", tt.key, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", tt.key, err)
			}
			if !graft.Equal(got, tt.want) {
				t.Errorf("Get(%q) = %v, want %v", tt.key, graft.ToAny(got), graft.ToAny(tt.want))
			}
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("creates full path into empty map", func(t *testing.T) {
		m := graft.Map{}
		if err := graft.Set(m, "foo.bar.nar", graft.Number(12)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		want := graft.Map{"foo": graft.Map{"bar": graft.Map{"nar": graft.Number(12)}}}
		if !graft.Equal(m, want) {
			t.Errorf("map = %v, want %v", graft.ToAny(m), graft.ToAny(want))
		}
	})

	t.Run("overwrites by default", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{"c": graft.Number(2)}}
		if err := graft.Set(m, "b.c", graft.Number(5)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, _ := graft.Get(m, "b.c")
		if !graft.Equal(got, graft.Number(5)) {
			t.Errorf("b.c = %v, want 5", graft.ToAny(got))
		}
	})

	t.Run("no-create fails on missing intermediate", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1)}
		err := graft.Set(m, "d.e", graft.Number(3), graft.NoCreate())
		if !errors.Is(err, graft.ErrKeyNotFound) {
			t.Fatalf("error = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("no-overwrite refuses existing value", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{"c": graft.Number(2)}}
		err := graft.Set(m, "b.c", graft.Number(4), graft.NoOverwrite())
		if !errors.Is(err, graft.ErrExists) {
			t.Fatalf("error = %v, want ErrExists", err)
		}
		want := "cannot overwrite existing value for 'b.c'"
		if err.Error() != want {
			t.Errorf("error = %q, want %q", err.Error(), want)
		}
		got, _ := graft.Get(m, "b.c")
		if !graft.Equal(got, graft.Number(2)) {
			t.Errorf("b.c = %v, want untouched 2", graft.ToAny(got))
		}
	})

	t.Run("custom separator", func(t *testing.T) {
		m := graft.Map{}
		if err := graft.Set(m, "x/y", graft.Bool(true), graft.Sep("/")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := graft.Get(m, "x.y")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !graft.Equal(got, graft.Bool(true)) {
			t.Errorf("x.y = %v, want true", graft.ToAny(got))
		}
	})
}

func TestSetMissing(t *testing.T) {
	m := graft.Map{"a": graft.Number(1), "b": graft.Map{"c": graft.Number(2)}}

	// Existing key is a silent no-op.
	if err := graft.SetMissing(m, "b.c", graft.Number(3)); err != nil {
		t.Fatalf("SetMissing on existing key failed: %v", err)
	}
	// Absent key is assigned.
	if err := graft.SetMissing(m, "b.d", graft.Number(4)); err != nil {
		t.Fatalf("SetMissing on absent key failed: %v", err)
	}
	want := graft.Map{"a": graft.Number(1), "b": graft.Map{"c": graft.Number(2), "d": graft.Number(4)}}
	if !graft.Equal(m, want) {
		t.Errorf("map = %v, want %v", graft.ToAny(m), graft.ToAny(want))
	}
}

func TestSetMissingIdempotent(t *testing.T) {
	once := graft.Map{}
	twice := graft.Map{}

	if err := graft.SetMissing(once, "k.v", graft.Number(1)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := graft.SetMissing(twice, "k.v", graft.Number(1)); err != nil {
			t.Fatal(err)
		}
	}
	if !graft.Equal(once, twice) {
		t.Errorf("one call = %v, two calls = %v", graft.ToAny(once), graft.ToAny(twice))
	}
}

func TestDelete(t *testing.T) {
	t.Run("removes nested and top-level keys", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1), "b": graft.Map{"c": graft.Number(2)}}
		if err := graft.Delete(m, "b.c"); err != nil {
			t.Fatalf("Delete b.c failed: %v", err)
		}
		if err := graft.Delete(m, "a"); err != nil {
			t.Fatalf("Delete a failed: %v", err)
		}
		// The emptied parent map stays; Prune is a separate concern.
		want := graft.Map{"b": graft.Map{}}
		if !graft.Equal(m, want) {
			t.Errorf("map = %v, want %v", graft.ToAny(m), graft.ToAny(want))
		}
	})

	t.Run("missing key", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1)}
		if err := graft.Delete(m, "d", graft.MissingOK()); err != nil {
			t.Errorf("Delete with MissingOK = %v, want nil", err)
		}
		if err := graft.Delete(m, "d"); !errors.Is(err, graft.ErrKeyNotFound) {
			t.Errorf("Delete without MissingOK = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("missing intermediate", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1)}
		if err := graft.Delete(m, "x.y", graft.MissingOK()); err != nil {
			t.Errorf("Delete with MissingOK = %v, want nil", err)
		}
		if err := graft.Delete(m, "x.y"); !errors.Is(err, graft.ErrKeyNotFound) {
			t.Errorf("Delete without MissingOK = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("missing-ok does not cover traversal errors", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1)}
		err := graft.Delete(m, "a.b.c", graft.MissingOK())
		if !errors.Is(err, graft.ErrNotTraversable) {
			t.Errorf("error = %v, want ErrNotTraversable", err)
		}
	})
}

func TestRename(t *testing.T) {
	t.Run("within one sub-map", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1), "b": graft.Map{"c": graft.Number(2), "d": graft.Number(3)}}
		if err := graft.Rename(m, "b.c", "b.e"); err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		want := graft.Map{"a": graft.Number(1), "b": graft.Map{"d": graft.Number(3), "e": graft.Number(2)}}
		if !graft.Equal(m, want) {
			t.Errorf("map = %v, want %v", graft.ToAny(m), graft.ToAny(want))
		}
	})

	t.Run("across sub-maps creates the destination path", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1), "b": graft.Map{"d": graft.Number(3), "e": graft.Number(2)}}
		if err := graft.Rename(m, "b.d", "f.g"); err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		want := graft.Map{
			"a": graft.Number(1),
			"b": graft.Map{"e": graft.Number(2)},
			"f": graft.Map{"g": graft.Number(3)},
		}
		if !graft.Equal(m, want) {
			t.Errorf("map = %v, want %v", graft.ToAny(m), graft.ToAny(want))
		}
	})

	t.Run("missing source", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1)}
		err := graft.Rename(m, "b.c", "d.e")
		if !errors.Is(err, graft.ErrKeyNotFound) {
			t.Errorf("error = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("custom separator", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{"c": graft.Number(2)}}
		if err := graft.Rename(m, "b/c", "b/e", graft.Sep("/")); err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		want := graft.Map{"b": graft.Map{"e": graft.Number(2)}}
		if !graft.Equal(m, want) {
			t.Errorf("map = %v, want %v", graft.ToAny(m), graft.ToAny(want))
		}
	})
}

func TestAppend(t *testing.T) {
	t.Run("appends to an existing list", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{"d": graft.List{graft.Number(3)}}}
		if err := graft.Append(m, "b.d", graft.Number(4)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		got, _ := graft.Get(m, "b.d")
		if !graft.Equal(got, graft.List{graft.Number(3), graft.Number(4)}) {
			t.Errorf("b.d = %v, want [3 4]", graft.ToAny(got))
		}
	})

	t.Run("promotes a scalar, then unique skips the duplicate", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{"c": graft.Number(2)}}
		if err := graft.Append(m, "b.c", graft.Number(2), graft.Unique()); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		// Promotion to a one-element list persists even though the
		// append itself was skipped.
		got, _ := graft.Get(m, "b.c")
		if !graft.Equal(got, graft.List{graft.Number(2)}) {
			t.Errorf("b.c = %v, want [2]", graft.ToAny(got))
		}
	})

	t.Run("unique leaves an existing list untouched", func(t *testing.T) {
		m := graft.Map{"l": graft.List{graft.Number(3)}}
		if err := graft.Append(m, "l", graft.Number(3), graft.Unique()); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		got, _ := graft.Get(m, "l")
		if !graft.Equal(got, graft.List{graft.Number(3)}) {
			t.Errorf("l = %v, want [3]", graft.ToAny(got))
		}
	})

	t.Run("create starts a fresh list behind missing intermediates", func(t *testing.T) {
		m := graft.Map{}
		if err := graft.Append(m, "e.f", graft.Number(5), graft.Create()); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		want := graft.Map{"e": graft.Map{"f": graft.List{graft.Number(5)}}}
		if !graft.Equal(m, want) {
			t.Errorf("map = %v, want %v", graft.ToAny(m), graft.ToAny(want))
		}
	})

	t.Run("absent key without create", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{}}
		err := graft.Append(m, "b.d", graft.Number(4))
		if !errors.Is(err, graft.ErrKeyNotFound) {
			t.Errorf("error = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("deep equality governs uniqueness", func(t *testing.T) {
		m := graft.Map{"l": graft.List{graft.List{graft.Number(1), graft.Number(2)}}}
		if err := graft.Append(m, "l", graft.List{graft.Number(1), graft.Number(2)}, graft.Unique()); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		got, _ := graft.Get(m, "l")
		if !graft.Equal(got, graft.List{graft.List{graft.Number(1), graft.Number(2)}}) {
			t.Errorf("l = %v, want unchanged nested list", graft.ToAny(got))
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("removes the first occurrence", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{"c": graft.List{graft.Number(1), graft.Number(2), graft.Number(3)}}}
		if err := graft.Remove(m, "b.c", graft.Number(2)); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		got, _ := graft.Get(m, "b.c")
		if !graft.Equal(got, graft.List{graft.Number(1), graft.Number(3)}) {
			t.Errorf("b.c = %v, want [1 3]", graft.ToAny(got))
		}
	})

	t.Run("absent value", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{"c": graft.List{graft.Number(1), graft.Number(3)}}}
		if err := graft.Remove(m, "b.c", graft.Number(2)); !errors.Is(err, graft.ErrValueNotFound) {
			t.Errorf("error = %v, want ErrValueNotFound", err)
		}
		if err := graft.Remove(m, "b.c", graft.Number(2), graft.MissingOK()); err != nil {
			t.Errorf("Remove with MissingOK = %v, want nil", err)
		}
	})

	t.Run("absent key", func(t *testing.T) {
		m := graft.Map{"b": graft.Map{}}
		if err := graft.Remove(m, "b.d", graft.Number(2), graft.MissingOK()); err != nil {
			t.Errorf("Remove with MissingOK = %v, want nil", err)
		}
		if err := graft.Remove(m, "b.d", graft.Number(2)); !errors.Is(err, graft.ErrKeyNotFound) {
			t.Errorf("Remove without MissingOK = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("non-list value", func(t *testing.T) {
		m := graft.Map{"a": graft.Number(1)}
		if err := graft.Remove(m, "a", graft.Number(1)); !errors.Is(err, graft.ErrValueNotFound) {
			t.Errorf("error = %v, want ErrValueNotFound", err)
		}
		if err := graft.Remove(m, "a", graft.Number(1), graft.MissingOK()); err != nil {
			t.Errorf("Remove with MissingOK = %v, want nil", err)
		}
	})

	t.Run("removes exactly one match", func(t *testing.T) {
		m := graft.Map{"l": graft.List{graft.String("x"), graft.String("y"), graft.String("x")}}
		if err := graft.Remove(m, "l", graft.String("x")); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		got, _ := graft.Get(m, "l")
		if !graft.Equal(got, graft.List{graft.String("y"), graft.String("x")}) {
			t.Errorf("l = %v, want [y x]", graft.ToAny(got))
		}
	})
}
