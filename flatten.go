package graft

import (
	"iter"
	"sort"
)

// Flatten yields (composite key, value) pairs for every non-map leaf of
// the mapping, depth-first with keys sorted at each level. Nested maps
// extend the key with the separator; an empty nested map contributes no
// pairs at all. The sequence is lazy and restartable: each range walks
// the live map again, so it is not safe against concurrent mutation.
// Prefix prepends its argument verbatim to every yielded key.
func Flatten(m Map, opts ...Option) iter.Seq2[string, Value] {
	s := newSettings(settings{}, opts)
	return func(yield func(string, Value) bool) {
		flattenInto(m, s.prefix, s.sep, yield)
	}
}

func flattenInto(m Map, prefix, sep string, yield func(string, Value) bool) bool {
	for _, k := range sortedKeys(m) {
		if child, ok := m[k].(Map); ok {
			if !flattenInto(child, prefix+k+sep, sep, yield) {
				return false
			}
			continue
		}
		if !yield(prefix+k, m[k]) {
			return false
		}
	}
	return true
}

func sortedKeys(m Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Unflatten rebuilds a nested mapping from (composite key, value) pairs
// by repeated Set with create enabled. It is the inverse of Flatten for
// mappings without empty nested maps.
func Unflatten(pairs iter.Seq2[string, Value], opts ...Option) (Map, error) {
	s := newSettings(settings{}, opts)
	m := Map{}
	for k, v := range pairs {
		if err := Set(m, k, v, Sep(s.sep)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Prune removes empty nested maps, in place, bottom-up: children are
// pruned first, so a map left holding only emptied children disappears
// in the same pass. Scalars and lists, including empty lists, are never
// pruned. Prune is idempotent and returns m for chaining.
func Prune(m Map) Map {
	for k, v := range m {
		child, ok := v.(Map)
		if !ok {
			continue
		}
		Prune(child)
		if len(child) == 0 {
			delete(m, k)
		}
	}
	return m
}
