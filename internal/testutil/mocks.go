// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"io"

	"github.com/runoshun/jiraplot/internal/domain"
)

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	Err      error
	Output   []byte
	Commands []*domain.ExecCommand
}

// Execute records the command and returns the configured output.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, cmd)
	return m.Output, m.Err
}

// MockIssueLoader is a test double for domain.IssueLoader.
type MockIssueLoader struct {
	Err    error
	Issues []*domain.Issue
	Paths  []string
}

// Load returns copies of the configured issues.
func (m *MockIssueLoader) Load(_ context.Context, path string) ([]*domain.Issue, error) {
	m.Paths = append(m.Paths, path)
	if m.Err != nil {
		return nil, m.Err
	}
	issues := make([]*domain.Issue, 0, len(m.Issues))
	for _, i := range m.Issues {
		c := *i
		c.Blocks = append([]string(nil), i.Blocks...)
		c.Labels = append([]string(nil), i.Labels...)
		issues = append(issues, &c)
	}
	return issues, nil
}

// MockExportNormalizer is a test double for domain.ExportNormalizer.
type MockExportNormalizer struct {
	Err    error
	Output string
	Paths  []string
}

// Normalize writes the configured output.
func (m *MockExportNormalizer) Normalize(_ context.Context, path string, w io.Writer) error {
	m.Paths = append(m.Paths, path)
	if m.Err != nil {
		return m.Err
	}
	_, err := io.WriteString(w, m.Output)
	return err
}

// RenderCall records one MockGraphRenderer.Render call.
type RenderCall struct {
	DotPath string
	OutPath string
	Format  string
}

// MockGraphRenderer is a test double for domain.GraphRenderer.
type MockGraphRenderer struct {
	Err   error
	Calls []RenderCall
}

// Render records the call.
func (m *MockGraphRenderer) Render(_ context.Context, dotPath, outPath, format string) error {
	m.Calls = append(m.Calls, RenderCall{DotPath: dotPath, OutPath: outPath, Format: format})
	return m.Err
}

// MockFileOpener is a test double for domain.FileOpener.
type MockFileOpener struct {
	Err    error
	Opened []string
}

// Open records the path.
func (m *MockFileOpener) Open(_ context.Context, path string) error {
	m.Opened = append(m.Opened, path)
	return m.Err
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config, or the defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitGlobalErr    error
	InitLocalErr     error
	GlobalConfigInfo domain.ConfigInfo
	LocalConfigInfo  domain.ConfigInfo
	InitGlobalCalled bool
	InitLocalCalled  bool
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(_ *domain.Config) error {
	m.InitLocalCalled = true
	return m.InitLocalErr
}

// Ensure mocks implement their interfaces.
var (
	_ domain.CommandExecutor  = (*MockCommandExecutor)(nil)
	_ domain.IssueLoader      = (*MockIssueLoader)(nil)
	_ domain.ExportNormalizer = (*MockExportNormalizer)(nil)
	_ domain.GraphRenderer    = (*MockGraphRenderer)(nil)
	_ domain.FileOpener       = (*MockFileOpener)(nil)
	_ domain.ConfigLoader     = (*MockConfigLoader)(nil)
	_ domain.ConfigManager    = (*MockConfigManager)(nil)
)
