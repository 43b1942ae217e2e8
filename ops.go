package graft

import "errors"

// Get retrieves the value at a composite key. Only the Sep option is
// honored; Get never creates anything.
func Get(m Map, key string, opts ...Option) (Value, error) {
	s := newSettings(settings{}, opts)
	parent, last, err := expand(m, key, s.sep, false)
	if err != nil {
		return nil, err
	}
	v, ok := parent[last]
	if !ok {
		return nil, &KeyError{Key: key, Segment: last, Err: ErrKeyNotFound}
	}
	return v, nil
}

// Set assigns a value at a composite key. By default missing
// intermediates are created and existing values are replaced; NoCreate
// and NoOverwrite tighten either side. A refused overwrite leaves any
// intermediates created during navigation in place.
func Set(m Map, key string, v Value, opts ...Option) error {
	s := newSettings(settings{create: true, overwrite: true}, opts)
	return set(m, key, v, s)
}

func set(m Map, key string, v Value, s settings) error {
	parent, last, err := expand(m, key, s.sep, s.create)
	if err != nil {
		return err
	}
	if _, exists := parent[last]; exists && !s.overwrite {
		return &KeyError{Key: key, Err: ErrExists}
	}
	parent[last] = v
	return nil
}

// SetMissing assigns a value only when the key is not already set. An
// existing value is a silent no-op, making repeated calls idempotent.
func SetMissing(m Map, key string, v Value, opts ...Option) error {
	s := newSettings(settings{create: true}, opts)
	err := set(m, key, v, s)
	if errors.Is(err, ErrExists) {
		return nil
	}
	return err
}

// Delete removes the value at a composite key. An absent segment, final
// or intermediate, fails with ErrKeyNotFound unless MissingOK is given.
// MissingOK does not cover ErrNotTraversable. Emptied parent maps are
// left behind; cleaning them up is Prune's job.
func Delete(m Map, key string, opts ...Option) error {
	s := newSettings(settings{}, opts)
	parent, last, err := expand(m, key, s.sep, false)
	if err != nil {
		if s.missingOK && errors.Is(err, ErrKeyNotFound) {
			return nil
		}
		return err
	}
	if _, ok := parent[last]; !ok {
		if s.missingOK {
			return nil
		}
		return &KeyError{Key: key, Segment: last, Err: ErrKeyNotFound}
	}
	delete(parent, last)
	return nil
}

// Rename moves the value at old to new: read old (propagating
// ErrKeyNotFound), delete old without pruning, then Set at new with
// default create and overwrite. Only the Sep option is honored.
func Rename(m Map, old, new string, opts ...Option) error {
	s := newSettings(settings{}, opts)
	v, err := Get(m, old, Sep(s.sep))
	if err != nil {
		return err
	}
	if err := Delete(m, old, Sep(s.sep)); err != nil {
		return err
	}
	return Set(m, new, v, Sep(s.sep))
}

// Append adds a value to the list at a composite key. An absent final
// key starts a new empty list when Create is given and fails with
// ErrKeyNotFound otherwise; Create also governs intermediate maps. An
// existing non-list value is promoted in place to a one-element list
// before the append. With Unique, a value already present (by deep
// equality) is not appended, though a promotion that already happened
// is kept.
func Append(m Map, key string, v Value, opts ...Option) error {
	s := newSettings(settings{}, opts)
	parent, last, err := expand(m, key, s.sep, s.create)
	if err != nil {
		return err
	}
	cur, ok := parent[last]
	if !ok {
		if !s.create {
			return &KeyError{Key: key, Segment: last, Err: ErrKeyNotFound}
		}
		cur = List{}
	}
	list, ok := cur.(List)
	if !ok {
		list = List{cur}
	}
	if s.unique && contains(list, v) {
		parent[last] = list
		return nil
	}
	parent[last] = append(list, v)
	return nil
}

// Remove deletes the first occurrence of a value (by deep equality) from
// the list at a composite key. MissingOK turns both an absent key and an
// absent value into silent no-ops, including the case where the key
// holds something other than a list.
func Remove(m Map, key string, v Value, opts ...Option) error {
	s := newSettings(settings{}, opts)
	parent, last, err := expand(m, key, s.sep, false)
	if err != nil {
		if s.missingOK && errors.Is(err, ErrKeyNotFound) {
			return nil
		}
		return err
	}
	cur, ok := parent[last]
	if !ok {
		if s.missingOK {
			return nil
		}
		return &KeyError{Key: key, Segment: last, Err: ErrKeyNotFound}
	}
	list, ok := cur.(List)
	if !ok {
		if s.missingOK {
			return nil
		}
		return &KeyError{Key: key, Found: KindOf(cur), Err: ErrValueNotFound}
	}
	for i, item := range list {
		if Equal(item, v) {
			parent[last] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	if s.missingOK {
		return nil
	}
	return &KeyError{Key: key, Found: KindList, Err: ErrValueNotFound}
}

func contains(list List, v Value) bool {
	for _, item := range list {
		if Equal(item, v) {
			return true
		}
	}
	return false
}
