package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "graft",
	Short: "Graft patches nested config documents through dotted key paths",
	Long: `Graft reads JSON, YAML or TOML documents and manipulates them through
composite keys like "server.port": apply command-line patches, read
single values, flatten a document into key=value lines, or diff two
documents path by path.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("sep", ".", "Separator between composite key segments")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// newLogger builds the command logger: debug on stderr under --verbose,
// otherwise silent so stdout and stderr stay clean for output.
func newLogger(cmd *cobra.Command) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
