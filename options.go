package graft

// DefaultSep is the separator used to split composite keys when no Sep
// option is given.
const DefaultSep = "."

// settings holds the resolved per-call flags. Each operation starts from
// its own defaults before applying the caller's options.
type settings struct {
	sep       string
	create    bool
	overwrite bool
	unique    bool
	missingOK bool
	prefix    string
}

// Option defines a functional option configuring a single operation.
// Options an operation does not consult are ignored.
type Option func(*settings)

// Sep sets the composite-key separator. An empty separator is ignored
// and the previous (or default) separator stays in effect.
func Sep(sep string) Option {
	return func(s *settings) {
		if sep != "" {
			s.sep = sep
		}
	}
}

// Create allows the operation to insert missing intermediate maps while
// navigating, and for Append to start a new empty list at the final key.
func Create() Option {
	return func(s *settings) {
		s.create = true
	}
}

// NoCreate makes missing intermediate segments an error for operations
// that create them by default, such as Set.
func NoCreate() Option {
	return func(s *settings) {
		s.create = false
	}
}

// NoOverwrite makes Set refuse to replace an existing value.
func NoOverwrite() Option {
	return func(s *settings) {
		s.overwrite = false
	}
}

// Unique makes Append a no-op when the value is already present in the
// addressed list.
func Unique() Option {
	return func(s *settings) {
		s.unique = true
	}
}

// MissingOK turns absent-key failures in Delete and Remove (and an
// absent value in Remove) into silent no-ops.
func MissingOK() Option {
	return func(s *settings) {
		s.missingOK = true
	}
}

// Prefix prepends p verbatim to every key Flatten yields.
func Prefix(p string) Option {
	return func(s *settings) {
		s.prefix = p
	}
}

func newSettings(defaults settings, opts []Option) settings {
	s := defaults
	if s.sep == "" {
		s.sep = DefaultSep
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
