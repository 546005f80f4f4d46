package app

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/runoshun/jiraplot/internal/domain"
	"github.com/runoshun/jiraplot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stderr bytes.Buffer

	c, err := New(t.TempDir(), &stderr)

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), c.Config)
	assert.NotNil(t, c.Issues)
	assert.NotNil(t, c.Normalizer)
	assert.NotNil(t, c.Renderer)
	assert.NotNil(t, c.Opener)
	assert.NotNil(t, c.PlotEpicUseCase())
	assert.NotNil(t, c.ListIssuesUseCase())
	assert.NotNil(t, c.NormalizeExportUseCase())
	assert.NotNil(t, c.ShowConfigUseCase())
	assert.NotNil(t, c.InitConfigUseCase())
}

func TestNew_LogLevelFromConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[log]\nlevel = \"debug\"\n"), 0644))
	var stderr bytes.Buffer

	c, err := New(workDir, &stderr)
	require.NoError(t, err)
	c.Logger.Debug("visible")

	assert.Equal(t, slog.LevelDebug, c.LogLevel.Level())
	assert.Contains(t, stderr.String(), "visible")
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[log\n"), 0644))

	_, err := New(workDir, &bytes.Buffer{})

	assert.Error(t, err)
}

func TestNewWithDeps(t *testing.T) {
	loader := &testutil.MockIssueLoader{}

	c := NewWithDeps(nil, loader, &testutil.MockGraphRenderer{}, &testutil.MockFileOpener{}, nil)

	assert.Same(t, loader, c.Issues)
	assert.Equal(t, domain.DefaultRenderFormat, c.Config.Render.Format)
	assert.NotNil(t, c.Writer)
}
