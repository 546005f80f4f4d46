// Package usecase contains the application use cases.
package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/runoshun/jiraplot/internal/domain"
)

// validFormat matches Graphviz -T values such as "pdf", "svg" or "png:cairo".
var validFormat = regexp.MustCompile(`^[a-z0-9]+(:[a-z0-9_]+)*$`)

// PlotEpicInput contains the parameters for plotting an epic.
// Fields are ordered to minimize memory padding.
type PlotEpicInput struct {
	CSVPath  string // Jira CSV export (required)
	EpicName string // Graph title
	DotPath  string // Graph description path; defaults to the export path with a .dot extension
	Format   string // Rendered format; defaults to the configured format
	NoRender bool   // Stop after writing the graph description
	NoOpen   bool   // Do not open the rendered file
}

// PlotEpicOutput contains the result of plotting an epic.
// Fields are ordered to minimize memory padding.
type PlotEpicOutput struct {
	DotPath      string // Written graph description
	RenderedPath string // Rendered document, empty when not rendered
	Linked       int    // Issues drawn as nodes
	Isolated     int    // Issues listed in the summary node
	Edges        int    // Blocking relationships drawn
	Rendered     bool
	Opened       bool
}

// PlotEpic is the use case turning a Jira export into a rendered dependency graph.
type PlotEpic struct {
	issues   domain.IssueLoader
	writer   domain.GraphWriter
	files    domain.FileStore
	renderer domain.GraphRenderer
	opener   domain.FileOpener
	logger   *slog.Logger
	format   string
}

// NewPlotEpic creates a new PlotEpic use case.
func NewPlotEpic(
	issues domain.IssueLoader,
	writer domain.GraphWriter,
	files domain.FileStore,
	renderer domain.GraphRenderer,
	opener domain.FileOpener,
	defaultFormat string,
	logger *slog.Logger,
) *PlotEpic {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PlotEpic{
		issues:   issues,
		writer:   writer,
		files:    files,
		renderer: renderer,
		opener:   opener,
		logger:   logger,
		format:   defaultFormat,
	}
}

// Execute loads the export, writes the graph description, renders it and opens the result.
func (uc *PlotEpic) Execute(ctx context.Context, in PlotEpicInput) (*PlotEpicOutput, error) {
	format := in.Format
	if format == "" {
		format = uc.format
	}
	if format == "" {
		format = domain.DefaultRenderFormat
	}
	if !validFormat.MatchString(format) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, format)
	}

	// Load and build graph
	issues, err := uc.issues.Load(ctx, in.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("load issues: %w", err)
	}
	g := domain.BuildGraph(issues)

	out := &PlotEpicOutput{
		DotPath:  in.DotPath,
		Linked:   len(g.Linked()),
		Isolated: len(g.Isolated()),
		Edges:    len(g.Edges()),
	}
	if out.DotPath == "" {
		out.DotPath = domain.DotPath(in.CSVPath)
	}
	uc.logger.Debug("graph built", "issues", g.Len(), "linked", out.Linked, "edges", out.Edges)

	// Write graph description
	var buf bytes.Buffer
	if err := uc.writer.Write(&buf, g, in.EpicName); err != nil {
		return nil, fmt.Errorf("emit graph: %w", err)
	}
	if err := uc.files.WriteFile(out.DotPath, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("write graph: %w", err)
	}
	uc.logger.Info("wrote graph", "path", out.DotPath)

	if in.NoRender {
		return out, nil
	}

	// Render
	renderedPath := domain.RenderedPath(out.DotPath, format)
	if err := uc.renderer.Render(ctx, out.DotPath, renderedPath, format); err != nil {
		return out, err
	}
	out.RenderedPath = renderedPath
	out.Rendered = true

	if in.NoOpen {
		return out, nil
	}

	// Open
	if err := uc.opener.Open(ctx, renderedPath); err != nil {
		return out, err
	}
	out.Opened = true

	return out, nil
}
