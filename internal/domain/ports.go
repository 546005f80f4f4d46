package domain

import (
	"context"
	"io"
)

// IssueLoader reads issues from a Jira export.
type IssueLoader interface {
	// Load reads every issue of the export at path.
	Load(ctx context.Context, path string) ([]*Issue, error)
}

// ExportNormalizer rewrites a Jira export with unique multi-valued headers.
type ExportNormalizer interface {
	// Normalize writes the export at path to w with its header normalized.
	Normalize(ctx context.Context, path string, w io.Writer) error
}

// GraphWriter serializes a graph into a graph description.
type GraphWriter interface {
	// Write emits g with title as the graph label.
	Write(w io.Writer, g *Graph, title string) error
}

// FileStore persists generated files.
type FileStore interface {
	// WriteFile replaces path with content.
	WriteFile(path string, content []byte) error
}

// GraphRenderer lays out a graph description into a document.
type GraphRenderer interface {
	// Render converts dotPath into outPath using format.
	Render(ctx context.Context, dotPath, outPath, format string) error
}

// FileOpener opens a file with the default application.
type FileOpener interface {
	// Open shows path to the user.
	Open(ctx context.Context, path string) error
}

// CommandExecutor executes external commands.
type CommandExecutor interface {
	// Execute runs the command until it exits and returns its combined output.
	Execute(ctx context.Context, cmd *ExecCommand) ([]byte, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local).
	Load() (*Config, error)
}

// ConfigInfo holds information about a configuration file.
type ConfigInfo struct {
	Path    string // File path
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig creates a global config file with the default template.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig creates a local config file with the default template.
	InitLocalConfig(cfg *Config) error
}
