package main

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/cli"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Compare two documents path by path",
	Long: `Flattens both documents and prints one line per differing path:
added ("+"), removed ("-") or changed ("~"). The documents may use
different formats; each is detected from its own extension.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiff(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, oldPath, newPath string) error {
	sep, _ := cmd.Flags().GetString("sep")

	oldFormat, err := cli.DetectFormat(oldPath, "")
	if err != nil {
		return err
	}
	oldDoc, err := cli.LoadDocument(oldPath, oldFormat)
	if err != nil {
		return err
	}

	newFormat, err := cli.DetectFormat(newPath, "")
	if err != nil {
		return err
	}
	newDoc, err := cli.LoadDocument(newPath, newFormat)
	if err != nil {
		return err
	}

	printer := cli.NewDiffPrinter(os.Stdout, termenv.ColorProfile())
	printer.Print(cli.DiffMaps(oldDoc, newDoc, sep))
	return nil
}
