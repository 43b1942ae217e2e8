package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/muesli/termenv"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/literal"
)

// ChangeKind classifies a single path-level difference.
type ChangeKind uint8

const (
	Added ChangeKind = iota
	Removed
	Changed
)

// String returns the marker used in diff output.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "~"
	}
}

// Change is one path-level difference between two mappings. Old is set
// for Removed and Changed, New for Added and Changed.
type Change struct {
	Path string
	Kind ChangeKind
	Old  graft.Value
	New  graft.Value
}

// DiffMaps compares two mappings leaf by leaf via Flatten and reports
// the differences in path order.
func DiffMaps(old, new graft.Map, sep string) []Change {
	oldFlat := map[string]graft.Value{}
	for k, v := range graft.Flatten(old, graft.Sep(sep)) {
		oldFlat[k] = v
	}
	newFlat := map[string]graft.Value{}
	for k, v := range graft.Flatten(new, graft.Sep(sep)) {
		newFlat[k] = v
	}

	paths := make([]string, 0, len(oldFlat)+len(newFlat))
	for k := range oldFlat {
		paths = append(paths, k)
	}
	for k := range newFlat {
		if _, ok := oldFlat[k]; !ok {
			paths = append(paths, k)
		}
	}
	sort.Strings(paths)

	var changes []Change
	for _, path := range paths {
		before, hadBefore := oldFlat[path]
		after, hasAfter := newFlat[path]
		switch {
		case !hadBefore:
			changes = append(changes, Change{Path: path, Kind: Added, New: after})
		case !hasAfter:
			changes = append(changes, Change{Path: path, Kind: Removed, Old: before})
		case !graft.Equal(before, after):
			changes = append(changes, Change{Path: path, Kind: Changed, Old: before, New: after})
		}
	}
	return changes
}

// FormatValue renders a value as a patch literal. Strings that the
// literal grammar would read back unchanged are printed bare, so a
// flatten line "key=literal" is itself a valid apply argument;
// everything else is a JSON literal.
func FormatValue(v graft.Value) string {
	if s, ok := v.(graft.String); ok {
		if parsed, err := literal.Parse(string(s)); err == nil {
			if str, ok := parsed.(string); ok && str == string(s) {
				return str
			}
		}
	}
	data, err := json.Marshal(graft.ToAny(v))
	if err != nil {
		return fmt.Sprintf("%v", graft.ToAny(v))
	}
	return string(data)
}

// DiffPrinter renders path-level changes, one line per change, colored
// when the profile supports it.
type DiffPrinter struct {
	out     io.Writer
	profile termenv.Profile
}

// NewDiffPrinter creates a printer writing to out. Pass
// termenv.ColorProfile() for terminal output or termenv.Ascii for
// plain text.
func NewDiffPrinter(out io.Writer, profile termenv.Profile) *DiffPrinter {
	return &DiffPrinter{out: out, profile: profile}
}

// Print writes one line per change: "+ path = new", "- path = old" or
// "~ path = old -> new".
func (p *DiffPrinter) Print(changes []Change) {
	for _, c := range changes {
		var line string
		switch c.Kind {
		case Added:
			line = p.colorize(fmt.Sprintf("+ %s = %s", c.Path, FormatValue(c.New)), "2")
		case Removed:
			line = p.colorize(fmt.Sprintf("- %s = %s", c.Path, FormatValue(c.Old)), "1")
		case Changed:
			line = p.colorize(fmt.Sprintf("~ %s = %s -> %s",
				c.Path, FormatValue(c.Old), FormatValue(c.New)), "3")
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p *DiffPrinter) colorize(s, color string) string {
	return termenv.String(s).Foreground(p.profile.Color(color)).String()
}
