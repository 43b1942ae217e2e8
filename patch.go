package graft

import (
	"fmt"
	"strings"

	"github.com/aretw0/graft/internal/literal"
)

// Op enumerates the patch operators. The set is closed so Apply can
// dispatch with an exhaustive switch instead of a mutable lookup table.
type Op uint8

const (
	OpInvalid Op = iota

	// OpSet assigns, creating intermediates and overwriting ("=").
	OpSet

	// OpSetMissing assigns only when the key is absent ("?=").
	OpSetMissing

	// OpAppend appends to the list at the key, creating it ("+=").
	OpAppend

	// OpRemove removes from the list at the key, tolerating absence ("-=").
	OpRemove

	// OpMove relocates the value at the key to the destination key held
	// in the patch value ("~=").
	OpMove
)

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "="
	case OpSetMissing:
		return "?="
	case OpAppend:
		return "+="
	case OpRemove:
		return "-="
	case OpMove:
		return "~="
	default:
		return "invalid"
	}
}

// ParseOp resolves an operator symbol.
func ParseOp(s string) (Op, error) {
	switch s {
	case "=":
		return OpSet, nil
	case "?=":
		return OpSetMissing, nil
	case "+=":
		return OpAppend, nil
	case "-=":
		return OpRemove, nil
	case "~=":
		return OpMove, nil
	}
	return OpInvalid, fmt.Errorf("unknown operator %q: %w", s, ErrNoOperator)
}

// Patch is a single mutation instruction: apply Op at Key with Value.
// For OpMove the value is the destination composite key.
type Patch struct {
	Key   string
	Op    Op
	Value Value
}

// ParseArgs parses patch arguments of the form <key><op><literal>, in
// input order. The operator is found at the first '=', extended to a
// two-character operator when the preceding character is one of ~ ? + -.
// The literal substring is interpreted by the literal grammar: lists and
// quoted strings must parse fully, numbers, true, false and null match
// whole, and anything else is kept verbatim as a plain string. The first
// bad argument aborts the parse.
func ParseArgs(args ...string) ([]Patch, error) {
	patches := make([]Patch, 0, len(args))
	for _, arg := range args {
		p, err := parseArg(arg)
		if err != nil {
			return nil, err
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func parseArg(arg string) (Patch, error) {
	eq := strings.IndexByte(arg, '=')
	if eq < 0 {
		return Patch{}, &ArgError{Arg: arg, Err: ErrNoOperator}
	}
	opStart := eq
	if eq > 0 {
		switch arg[eq-1] {
		case '~', '?', '+', '-':
			opStart = eq - 1
		}
	}
	op, err := ParseOp(arg[opStart : eq+1])
	if err != nil {
		return Patch{}, &ArgError{Arg: arg, Err: err}
	}
	key := arg[:opStart]
	if key == "" {
		return Patch{}, &ArgError{Arg: arg, Err: ErrInvalidKey}
	}
	raw, err := literal.Parse(arg[eq+1:])
	if err != nil {
		return Patch{}, &ArgError{Arg: arg, Err: fmt.Errorf("%w: %w", ErrBadLiteral, err)}
	}
	v, err := FromAny(raw)
	if err != nil {
		return Patch{}, &ArgError{Arg: arg, Err: err}
	}
	return Patch{Key: key, Op: op, Value: v}, nil
}

// Apply runs the patches in order against m and finishes with a full
// Prune. Application is not transactional: the first failure aborts the
// remaining patches and leaves earlier mutations in place, unpruned.
// Only the Sep option is honored; the per-operation flags are fixed by
// the operator semantics. Returns m for chaining.
func Apply(m Map, patches []Patch, opts ...Option) (Map, error) {
	s := newSettings(settings{}, opts)
	for _, p := range patches {
		if err := applyPatch(m, p, s.sep); err != nil {
			return m, err
		}
	}
	return Prune(m), nil
}

func applyPatch(m Map, p Patch, sep string) error {
	switch p.Op {
	case OpSet:
		return Set(m, p.Key, p.Value, Sep(sep))
	case OpSetMissing:
		return SetMissing(m, p.Key, p.Value, Sep(sep))
	case OpAppend:
		return Append(m, p.Key, p.Value, Sep(sep), Create())
	case OpRemove:
		return Remove(m, p.Key, p.Value, Sep(sep), MissingOK())
	case OpMove:
		dest, ok := p.Value.(String)
		if !ok {
			return fmt.Errorf("move destination for '%s' must be a string, got %s: %w",
				p.Key, KindOf(p.Value), ErrInvalidKey)
		}
		return Rename(m, p.Key, string(dest), Sep(sep))
	default:
		return fmt.Errorf("cannot apply operator to '%s': %w", p.Key, ErrNoOperator)
	}
}
