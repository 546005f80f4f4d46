// Package viewer opens rendered files with the desktop's default application.
package viewer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/runoshun/jiraplot/internal/domain"
)

// Ensure Client implements domain.FileOpener interface.
var _ domain.FileOpener = (*Client)(nil)

// Client opens files through an external viewer command.
type Client struct {
	executor domain.CommandExecutor
	logger   *slog.Logger
	goos     string
	viewer   string // Overrides the platform default when set
}

// NewClient creates a new Client for the current platform.
func NewClient(executor domain.CommandExecutor, viewer string, logger *slog.Logger) *Client {
	return NewClientForOS(executor, runtime.GOOS, viewer, logger)
}

// NewClientForOS creates a new Client for goos.
// This is useful for testing.
func NewClientForOS(executor domain.CommandExecutor, goos, viewer string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		executor: executor,
		logger:   logger,
		goos:     goos,
		viewer:   viewer,
	}
}

// Open runs the viewer on path and waits for the command to exit.
func (c *Client) Open(ctx context.Context, path string) error {
	cmd := domain.NewViewerCommand(c.goos, c.viewer, path)
	c.logger.Info("running", "command", cmd.String())

	out, err := c.executor.Execute(ctx, cmd)
	if err != nil {
		return fmt.Errorf("%w: %s: %v: %s", domain.ErrOpenFailed, cmd.String(), err, strings.TrimSpace(string(out)))
	}
	return nil
}
