// Package cli implements the permsort command-line interface, a small
// consumer of lvperm/perm that canonicalizes and restores sequences.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a timestamped logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
			Prefix:          "permsort",
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "permsort",
		Short:        "Permsort computes, applies and composes permutations",
		Long:         `Permsort builds stable sorting permutations over integer sequences, applies them (or their inverses) to values, and composes permutations left to right.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.sortCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.composeCommand())

	return root
}

// printKeyValue writes one "key: value" line to w.
func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s: %v\n", key, value)
}
