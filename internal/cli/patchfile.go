package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/graft"
)

// patchEntry is the structured form of one patch in a patch file.
type patchEntry struct {
	Key   string `mapstructure:"key"`
	Op    string `mapstructure:"op"`
	Value any    `mapstructure:"value"`
}

// ParsePatchArgs parses command-line patch arguments, collecting every
// bad argument into one aggregated error instead of stopping at the
// first, so the user can fix a whole invocation in one pass.
func ParsePatchArgs(args []string) ([]graft.Patch, error) {
	var errs *multierror.Error
	patches := make([]graft.Patch, 0, len(args))
	for _, arg := range args {
		parsed, err := graft.ParseArgs(arg)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		patches = append(patches, parsed...)
	}
	return patches, errs.ErrorOrNil()
}

// LoadPatchFile reads a YAML (or JSON) patch file: a list whose items
// are either plain "key<op>literal" strings, parsed like command-line
// arguments, or structured {key, op, value} entries. A structured entry
// without an op defaults to "=". Values in structured entries are taken
// as-is, with no literal parsing.
func LoadPatchFile(path string) ([]graft.Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch file: %w", err)
	}

	var entries []any
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode patch file %s: %w", path, err)
	}

	var errs *multierror.Error
	patches := make([]graft.Patch, 0, len(entries))
	for i, entry := range entries {
		p, err := decodePatchEntry(entry)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("patch %d: %w", i+1, err))
			continue
		}
		patches = append(patches, p...)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid patch file %s: %w", path, err)
	}
	return patches, nil
}

func decodePatchEntry(entry any) ([]graft.Patch, error) {
	if arg, ok := entry.(string); ok {
		return graft.ParseArgs(arg)
	}

	var pe patchEntry
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &pe,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(entry); err != nil {
		return nil, fmt.Errorf("bad patch entry: %w", err)
	}
	if pe.Key == "" {
		return nil, fmt.Errorf("patch entry without a key: %w", graft.ErrInvalidKey)
	}
	if pe.Op == "" {
		pe.Op = "="
	}
	op, err := graft.ParseOp(pe.Op)
	if err != nil {
		return nil, err
	}
	v, err := graft.FromAny(pe.Value)
	if err != nil {
		return nil, fmt.Errorf("bad value for %q: %w", pe.Key, err)
	}
	return []graft.Patch{{Key: pe.Key, Op: op, Value: v}}, nil
}
