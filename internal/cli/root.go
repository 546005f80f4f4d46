// Package cli provides the command-line interface for jiraplot.
package cli

import (
	"fmt"

	"github.com/runoshun/jiraplot/internal/app"
	"github.com/runoshun/jiraplot/internal/infra/logging"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupGraph = "graph"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for jiraplot.
// It receives the container for dependency injection and version for display.
// The root command itself plots an export; subcommands inspect and configure.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var logLevel string

	root := newPlotCommand(c)
	root.Use = "jiraplot <csv-path> [<epic-name>]"
	root.Short = "Plot the blocking graph of a Jira CSV export"
	root.Long = `jiraplot turns a Jira issue export (CSV) into a dependency graph.

Issues that block or are blocked by other issues of the export become
boxes connected by arrows; the remaining issues are listed in a single
summary box. The graph is written next to the export as a Graphviz .dot
file, rendered with "dot" into a PDF and opened with the default viewer.

Finished issues are painted green and issues assigned to a sprint are
painted gold. The sprint is read from the Sprint column or from a label
such as "SP_60".

Examples:
  # Plot an epic export and open the PDF
  jiraplot ~/Downloads/Jira.csv "Checkout redesign"

  # Only write Jira.dot
  jiraplot Jira.csv --no-render

  # Render an SVG without opening it
  jiraplot Jira.csv --format svg --no-open`
	root.Version = version
	// SilenceUsage prevents usage from being printed on errors
	root.SilenceUsage = true
	// SilenceErrors prevents Cobra from printing errors (we handle it in main)
	root.SilenceErrors = true
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// Skip if container is nil (e.g. in tests)
		if c == nil {
			return nil
		}

		if cmd.Flags().Changed("log-level") {
			c.LogLevel.Set(logging.ParseLevel(logLevel))
		}

		for _, w := range c.Config.Warnings {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}
		return nil
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupGraph, Title: "Graph Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	issuesCmd := newIssuesCommand(c)
	issuesCmd.GroupID = groupGraph

	normalizeCmd := newNormalizeCommand(c)
	normalizeCmd.GroupID = groupGraph

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		issuesCmd,
		normalizeCmd,
		configCmd,
	)

	return root
}
