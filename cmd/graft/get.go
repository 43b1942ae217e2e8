package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/cli"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print the value at a composite key",
	Long:  `Reads the value at a dotted key path from a document and prints it as a JSON literal.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().String("format", "", "Document format: json, yaml or toml (default: by extension)")
}

func runGet(cmd *cobra.Command, path, key string) error {
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

	v, err := graft.Get(doc, key, graft.Sep(sep))
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(graft.ToAny(v), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
