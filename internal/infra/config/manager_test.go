package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/jiraplot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetLocalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		workDir := t.TempDir()
		configContent := "[render]\nformat = \"svg\"\n"
		err := os.WriteFile(domain.LocalConfigPath(workDir), []byte(configContent), 0644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir(workDir, "")
		info := manager.GetLocalConfigInfo()

		assert.Equal(t, domain.LocalConfigPath(workDir), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		workDir := t.TempDir()

		manager := NewManagerWithGlobalDir(workDir, "")
		info := manager.GetLocalConfigInfo()

		assert.Equal(t, domain.LocalConfigPath(workDir), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("empty when no global dir", func(t *testing.T) {
		info := NewManagerWithGlobalDir(t.TempDir(), "").GetGlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})

	t.Run("path inside global dir", func(t *testing.T) {
		globalDir := t.TempDir()

		info := NewManagerWithGlobalDir(t.TempDir(), globalDir).GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitLocalConfig(t *testing.T) {
	workDir := t.TempDir()
	manager := NewManagerWithGlobalDir(workDir, "")

	require.NoError(t, manager.InitLocalConfig(domain.NewDefaultConfig()))

	content, err := os.ReadFile(domain.LocalConfigPath(workDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[render]")

	// The rendered template must load back to the defaults.
	cfg, err := NewLoaderWithGlobalDir(workDir, "").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)

	err = manager.InitLocalConfig(domain.NewDefaultConfig())
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "nested", "jiraplot")
	manager := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	require.NoError(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))

	assert.FileExists(t, filepath.Join(globalDir, domain.ConfigFileName))
}

func TestManager_InitGlobalConfig_NoDir(t *testing.T) {
	err := NewManagerWithGlobalDir(t.TempDir(), "").InitGlobalConfig(domain.NewDefaultConfig())

	assert.Error(t, err)
}
