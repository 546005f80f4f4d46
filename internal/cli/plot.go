package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/jiraplot/internal/app"
	"github.com/runoshun/jiraplot/internal/usecase"
	"github.com/spf13/cobra"
)

// newPlotCommand creates the command plotting an export.
// NewRootCommand turns it into the root command.
func newPlotCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output   string
		Format   string
		NoRender bool
		NoOpen   bool
	}

	cmd := &cobra.Command{
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.PlotEpicInput{
				CSVPath:  args[0],
				DotPath:  opts.Output,
				Format:   opts.Format,
				NoRender: opts.NoRender,
				NoOpen:   opts.NoOpen,
			}
			if len(args) > 1 {
				in.EpicName = args[1]
			}

			out, err := c.PlotEpicUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			printPlotSummary(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Graph description path (default: <csv-path minus extension>.dot)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Rendered format passed to dot -T (default from config, pdf)")
	cmd.Flags().BoolVar(&opts.NoRender, "no-render", false, "Only write the graph description")
	cmd.Flags().BoolVar(&opts.NoOpen, "no-open", false, "Render without opening the result")

	return cmd
}

// printPlotSummary prints what was written. Colors are dropped when w is not a terminal.
func printPlotSummary(w io.Writer, out *usecase.PlotEpicOutput) {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Width(10)
	path := r.NewStyle().Foreground(lipgloss.Color("#6C5CE7"))
	muted := r.NewStyle().Foreground(lipgloss.Color("#636E72"))

	_, _ = fmt.Fprintln(w, label.Render("Graph")+path.Render(out.DotPath))
	if out.Rendered {
		_, _ = fmt.Fprintln(w, label.Render("Rendered")+path.Render(out.RenderedPath))
	}
	_, _ = fmt.Fprintln(w, label.Render("Issues")+muted.Render(
		fmt.Sprintf("%d linked, %d isolated, %d edges", out.Linked, out.Isolated, out.Edges)))
}
