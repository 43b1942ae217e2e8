package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/cli"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten <file>",
	Short: "Print a document as flat key=value lines",
	Long: `Flattens a document into one "key=literal" line per leaf, keys sorted
at each level. Each line is a valid patch argument for "graft apply",
so a flattened document can be replayed onto an empty one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFlatten(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(flattenCmd)

	flattenCmd.Flags().String("format", "", "Document format: json, yaml or toml (default: by extension)")
}

func runFlatten(cmd *cobra.Command, path string) error {
	sep, _ := cmd.Flags().GetString("sep")
	explicit, _ := cmd.Flags().GetString("format")

	format, err := cli.DetectFormat(path, explicit)
	if err != nil {
		return err
	}
	doc, err := cli.LoadDocument(path, format)
	if err != nil {
		return err
	}

	for key, value := range graft.Flatten(doc, graft.Sep(sep)) {
		fmt.Printf("%s=%s\n", key, cli.FormatValue(value))
	}
	return nil
}
