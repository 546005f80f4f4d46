package cli

import (
	"fmt"

	"github.com/runoshun/jiraplot/internal/app"
	"github.com/runoshun/jiraplot/internal/usecase"
	"github.com/spf13/cobra"
)

// newNormalizeCommand creates the normalize command.
func newNormalizeCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "normalize <csv-path>",
		Short: "Rewrite an export with unique column headers",
		Long: `Rewrite a Jira CSV export so that repeated headers become unique.

Jira repeats the "Blocks", "Labels" and "Sprint" headers once per value.
Each of them gets a running number appended ("Blocks 1", "Blocks 2",
"Labels 3"), which lets spreadsheet tools and CSV libraries read the file.

Examples:
  # Print the normalized export
  jiraplot normalize Jira.csv

  # Write it to a file
  jiraplot normalize Jira.csv -o Jira-normalized.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NormalizeExportUseCase().Execute(cmd.Context(), usecase.NormalizeExportInput{
				CSVPath: args[0],
				OutPath: output,
			})
			if err != nil {
				return err
			}

			if out.OutPath == "" {
				_, err = cmd.OutOrStdout().Write(out.Content)
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out.OutPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of stdout")

	return cmd
}
