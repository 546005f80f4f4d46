package graphviz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/runoshun/jiraplot/internal/domain"
)

// Ensure Renderer implements domain.GraphRenderer interface.
var _ domain.GraphRenderer = (*Renderer)(nil)

// Renderer lays out DOT files with a Graphviz command such as dot.
type Renderer struct {
	executor domain.CommandExecutor
	logger   *slog.Logger
	program  string
}

// NewRenderer creates a new Renderer running program.
func NewRenderer(executor domain.CommandExecutor, program string, logger *slog.Logger) *Renderer {
	if program == "" {
		program = domain.DefaultRenderCommand
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		executor: executor,
		logger:   logger,
		program:  program,
	}
}

// Render runs "<program> -T<format> <dotPath> -o <outPath>" and waits for it to exit.
func (r *Renderer) Render(ctx context.Context, dotPath, outPath, format string) error {
	cmd := domain.NewRenderCommand(r.program, format, dotPath, outPath)
	r.logger.Info("running", "command", cmd.String())

	out, err := r.executor.Execute(ctx, cmd)
	if err != nil {
		return fmt.Errorf("%w: %s: %v: %s", domain.ErrRenderFailed, cmd.String(), err, strings.TrimSpace(string(out)))
	}
	return nil
}
