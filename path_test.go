package graft_test

import (
	"errors"
	"testing"

	"github.com/aretw0/graft"
)

// sample mirrors the fixture used across the operation tests.
func sample() graft.Map {
	return graft.Map{
		"a": graft.String("one"),
		"b": graft.Map{
			"c": graft.String("two"),
			"d": graft.String("three"),
		},
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		opts     []graft.Option
		wantLast string
		wantErr  error
	}{
		{name: "single segment needs no navigation", key: "a", wantLast: "a"},
		{name: "nested key", key: "b.c", wantLast: "c"},
		{name: "missing intermediate", key: "b.e.f", wantErr: graft.ErrKeyNotFound},
		{name: "missing intermediate with create", key: "b.e.f", opts: []graft.Option{graft.Create()}, wantLast: "f"},
		{name: "scalar blocks descent", key: "a.x", wantErr: graft.ErrNotTraversable},
		{name: "scalar blocks descent even with create", key: "a.x", opts: []graft.Option{graft.Create()}, wantErr: graft.ErrNotTraversable},
		{name: "empty key", key: "", wantErr: graft.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sample()
			_, last, err := graft.Expand(m, tt.key, tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expand(%q) error = %v, want %v", tt.key, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expand(%q) failed: %v", tt.key, err)
			}
			if last != tt.wantLast {
				t.Errorf("Expand(%q) last = %q, want %q", tt.key, last, tt.wantLast)
			}
		})
	}
}

func TestExpandReturnsInnermostMap(t *testing.T) {
	m := sample()
	parent, last, err := graft.Expand(m, "b.c")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if last != "c" {
		t.Errorf("last = %q, want %q", last, "c")
	}
	// Mutating the returned map must be visible through the original.
	parent["probe"] = graft.Number(1)
	inner, ok := m["b"].(graft.Map)
	if !ok {
		t.Fatal("m[\"b\"] is not a map")
	}
	if _, ok := inner["probe"]; !ok {
		t.Error("returned map is not the live inner map")
	}
}

func TestExpandCreateSideEffect(t *testing.T) {
	m := sample()
	if _, _, err := graft.Expand(m, "b.e.f", graft.Create()); err != nil {
		t.Fatalf("Expand with create failed: %v", err)
	}
	// The intermediate map persists even though nothing was assigned at f.
	want := graft.Map{
		"a": graft.String("one"),
		"b": graft.Map{
			"c": graft.String("two"),
			"d": graft.String("three"),
			"e": graft.Map{},
		},
	}
	if !graft.Equal(m, want) {
		t.Errorf("map after create expand = %v, want %v", graft.ToAny(m), graft.ToAny(want))
	}
}

func TestExpandCustomSep(t *testing.T) {
	m := sample()
	parent, last, err := graft.Expand(m, "b/c", graft.Sep("/"))
	if err != nil {
		t.Fatalf("Expand with custom sep failed: %v", err)
	}
	if last != "c" {
		t.Errorf("last = %q, want %q", last, "c")
	}
	if _, ok := parent["d"]; !ok {
		t.Error("expected the inner map containing 'd'")
	}
}

func TestExpandErrorMessage(t *testing.T) {
	m := sample()
	_, _, err := graft.Expand(m, "b.e.f")
	if err == nil {
		t.Fatal("expected error for missing intermediate")
	}
	want := "unable to find component 'e' of 'b.e.f'"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	var keyErr *graft.KeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("error is %T, want *graft.KeyError", err)
	}
	if keyErr.Segment != "e" || keyErr.Key != "b.e.f" {
		t.Errorf("KeyError = %+v, want segment 'e' of 'b.e.f'", keyErr)
	}
}
