package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/jiraplot/internal/domain"
	"github.com/runoshun/jiraplot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Open(t *testing.T) {
	tests := []struct {
		name        string
		goos        string
		viewer      string
		wantProgram string
	}{
		{"darwin", "darwin", "", "open"},
		{"linux", "linux", "", "xdg-open"},
		{"override", "darwin", "evince", "evince"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &testutil.MockCommandExecutor{}
			c := NewClientForOS(exec, tt.goos, tt.viewer, nil)

			err := c.Open(context.Background(), "/tmp/epic.pdf")

			require.NoError(t, err)
			require.Len(t, exec.Commands, 1)
			assert.Equal(t, tt.wantProgram, exec.Commands[0].Program)
			assert.Equal(t, "/tmp/epic.pdf", exec.Commands[0].Args[len(exec.Commands[0].Args)-1])
		})
	}
}

func TestClient_Open_Failure(t *testing.T) {
	exec := &testutil.MockCommandExecutor{Err: errors.New("executable file not found in $PATH")}
	c := NewClientForOS(exec, "linux", "", nil)

	err := c.Open(context.Background(), "epic.pdf")

	require.ErrorIs(t, err, domain.ErrOpenFailed)
	assert.Contains(t, err.Error(), "xdg-open epic.pdf")
}
