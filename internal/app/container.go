// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/jiraplot/internal/domain"
	"github.com/runoshun/jiraplot/internal/infra/config"
	"github.com/runoshun/jiraplot/internal/infra/executor"
	"github.com/runoshun/jiraplot/internal/infra/filestore"
	"github.com/runoshun/jiraplot/internal/infra/graphviz"
	"github.com/runoshun/jiraplot/internal/infra/jiracsv"
	"github.com/runoshun/jiraplot/internal/infra/logging"
	"github.com/runoshun/jiraplot/internal/infra/viewer"
	"github.com/runoshun/jiraplot/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Issues        domain.IssueLoader
	Normalizer    domain.ExportNormalizer
	Writer        domain.GraphWriter
	Files         domain.FileStore
	Renderer      domain.GraphRenderer
	Opener        domain.FileOpener
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger   *slog.Logger
	LogLevel *slog.LevelVar
	Config   *domain.Config

	// WorkDir holds the local configuration file
	WorkDir string
}

// New creates a new Container for the given working directory.
// Logs are written to stderr.
func New(workDir string, stderr io.Writer) (*Container, error) {
	if stderr == nil {
		stderr = os.Stderr
	}

	// Load config (defaults <- global <- local)
	configLoader := config.NewLoader(workDir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Create logger
	level := new(slog.LevelVar)
	level.Set(logging.ParseLevel(cfg.Log.Level))
	logger := logging.New(stderr, level)

	exec := executor.NewClient()
	reader := jiracsv.NewReader(cfg.Columns, logger)

	return &Container{
		Issues:        reader,
		Normalizer:    reader,
		Writer:        graphviz.NewWriter(cfg),
		Files:         filestore.New(),
		Renderer:      graphviz.NewRenderer(exec, cfg.Render.Command, logger),
		Opener:        viewer.NewClient(exec, cfg.Render.Viewer, logger),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(workDir),
		Logger:        logger,
		LogLevel:      level,
		Config:        cfg,
		WorkDir:       workDir,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, issues domain.IssueLoader, renderer domain.GraphRenderer, opener domain.FileOpener, logger *slog.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Container{
		Issues:   issues,
		Writer:   graphviz.NewWriter(cfg),
		Files:    filestore.New(),
		Renderer: renderer,
		Opener:   opener,
		Logger:   logger,
		LogLevel: new(slog.LevelVar),
		Config:   cfg,
	}
}

// UseCase factory methods

// PlotEpicUseCase returns a new PlotEpic use case.
func (c *Container) PlotEpicUseCase() *usecase.PlotEpic {
	return usecase.NewPlotEpic(c.Issues, c.Writer, c.Files, c.Renderer, c.Opener, c.Config.Render.Format, c.Logger)
}

// ListIssuesUseCase returns a new ListIssues use case.
func (c *Container) ListIssuesUseCase() *usecase.ListIssues {
	return usecase.NewListIssues(c.Issues)
}

// NormalizeExportUseCase returns a new NormalizeExport use case.
func (c *Container) NormalizeExportUseCase() *usecase.NormalizeExport {
	return usecase.NewNormalizeExport(c.Normalizer, c.Files)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
