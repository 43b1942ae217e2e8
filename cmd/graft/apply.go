package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/cli"
)

var applyCmd = &cobra.Command{
	Use:   "apply <file> [patches...]",
	Short: "Apply patches to a document",
	Long: `Loads a JSON, YAML or TOML document and applies patches of the form
<key><op><literal>, e.g. "server.port=8080", "tags+=[\"web\"]" or
"old.key~=new.key". Patches from --file run before the command-line
ones. Empty sub-maps left behind by moves are pruned from the result.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd, args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().String("format", "", "Document format: json, yaml or toml (default: by extension)")
	applyCmd.Flags().StringP("file", "f", "", "Read additional patches from a YAML/JSON patch file")
	applyCmd.Flags().StringP("output", "o", "", "Write the result to this file instead of stdout")
	applyCmd.Flags().BoolP("in-place", "i", false, "Write the result back to the input file")
	applyCmd.Flags().Bool("diff", false, "Print the path-level changes on stderr instead of the document")
}

func runApply(cmd *cobra.Command, path string, patchArgs []string) error {
	logger := newLogger(cmd)
	sep, _ := cmd.Flags().GetString("sep")
	explicit, _ := cmd.Flags().GetString("format")
	patchFile, _ := cmd.Flags().GetString("file")
	output, _ := cmd.Flags().GetString("output")
	inPlace, _ := cmd.Flags().GetBool("in-place")
	showDiff, _ := cmd.Flags().GetBool("diff")

	if inPlace && path == "-" {
		return fmt.Errorf("--in-place requires a file, not stdin")
	}
	if inPlace && output != "" {
		return fmt.Errorf("--in-place and --output cannot be used together")
	}

	format, err := cli.DetectFormat(path, explicit)
	if err != nil {
		return err
	}

	var patches []graft.Patch
	if patchFile != "" {
		filePatches, err := cli.LoadPatchFile(patchFile)
		if err != nil {
			return err
		}
		patches = append(patches, filePatches...)
	}
	argPatches, err := cli.ParsePatchArgs(patchArgs)
	if err != nil {
		return err
	}
	patches = append(patches, argPatches...)

	doc, err := cli.LoadDocument(path, format)
	if err != nil {
		return err
	}
	logger.Debug("applying patches", "file", path, "format", format, "count", len(patches))

	var before graft.Map
	if showDiff {
		before = graft.Clone(doc).(graft.Map)
	}

	if _, err := graft.Apply(doc, patches, graft.Sep(sep)); err != nil {
		return err
	}

	if showDiff {
		printer := cli.NewDiffPrinter(os.Stderr, termenv.ColorProfile())
		printer.Print(cli.DiffMaps(before, doc, sep))
	}

	if inPlace {
		output = path
	}
	return cli.SaveDocument(doc, format, output, os.Stdout)
}
