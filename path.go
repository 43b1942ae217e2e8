package graft

import "strings"

// Expand navigates all but the last segment of a composite key and
// returns the innermost map together with the final segment. With the
// Create option, missing intermediate segments are filled with empty
// maps; inserted maps persist even if the caller's follow-up mutation
// fails, so navigation is not transactional. A present segment whose
// value is not a map stops the descent with ErrNotTraversable regardless
// of Create. Single-segment keys return the input map unchanged.
func Expand(m Map, key string, opts ...Option) (Map, string, error) {
	s := newSettings(settings{}, opts)
	return expand(m, key, s.sep, s.create)
}

func expand(m Map, key, sep string, create bool) (Map, string, error) {
	if key == "" {
		return nil, "", &KeyError{Key: key, Err: ErrInvalidKey}
	}
	parts := strings.Split(key, sep)
	for _, seg := range parts[:len(parts)-1] {
		v, ok := m[seg]
		if !ok {
			if !create {
				return nil, "", &KeyError{Key: key, Segment: seg, Err: ErrKeyNotFound}
			}
			child := Map{}
			m[seg] = child
			m = child
			continue
		}
		child, ok := v.(Map)
		if !ok {
			return nil, "", &KeyError{Key: key, Segment: seg, Found: KindOf(v), Err: ErrNotTraversable}
		}
		m = child
	}
	return m, parts[len(parts)-1], nil
}
