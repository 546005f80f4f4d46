package cli

import (
	"fmt"

	"github.com/runoshun/jiraplot/internal/app"
	"github.com/runoshun/jiraplot/internal/domain"
	"github.com/runoshun/jiraplot/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// issuesDocument is the YAML document printed by the issues command.
type issuesDocument struct {
	Linked   int             `yaml:"linked"`
	Isolated int             `yaml:"isolated"`
	Issues   []*domain.Issue `yaml:"issues"`
}

// newIssuesCommand creates the issues command.
func newIssuesCommand(c *app.Container) *cobra.Command {
	var linkedOnly bool

	cmd := &cobra.Command{
		Use:   "issues <csv-path>",
		Short: "Print the issues of an export with resolved relationships",
		Long: `Print the issues of a Jira CSV export as YAML.

Blocking references to issues outside the export are dropped and every
issue lists the issues blocking it (blocked_by), exactly as they are
drawn by jiraplot.

Examples:
  # All issues in export order
  jiraplot issues Jira.csv

  # Only issues with relationships, sorted by key
  jiraplot issues Jira.csv --linked`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ListIssuesUseCase().Execute(cmd.Context(), usecase.ListIssuesInput{
				CSVPath:    args[0],
				LinkedOnly: linkedOnly,
			})
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(issuesDocument{
				Linked:   out.Linked,
				Isolated: out.Isolated,
				Issues:   out.Issues,
			}); err != nil {
				return fmt.Errorf("encode issues: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&linkedOnly, "linked", false, "Only print issues with blocking relationships")

	return cmd
}
