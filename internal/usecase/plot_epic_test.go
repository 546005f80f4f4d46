package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/jiraplot/internal/domain"
	"github.com/runoshun/jiraplot/internal/infra/filestore"
	"github.com/runoshun/jiraplot/internal/infra/graphviz"
	"github.com/runoshun/jiraplot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plotFixture struct {
	loader   *testutil.MockIssueLoader
	renderer *testutil.MockGraphRenderer
	opener   *testutil.MockFileOpener
	uc       *PlotEpic
	csvPath  string
}

func newPlotFixture(t *testing.T, issues ...*domain.Issue) *plotFixture {
	t.Helper()
	f := &plotFixture{
		loader:   &testutil.MockIssueLoader{Issues: issues},
		renderer: &testutil.MockGraphRenderer{},
		opener:   &testutil.MockFileOpener{},
		csvPath:  filepath.Join(t.TempDir(), "epic.csv"),
	}
	writer := graphviz.NewWriter(domain.NewDefaultConfig())
	f.uc = NewPlotEpic(f.loader, writer, filestore.New(), f.renderer, f.opener, "pdf", nil)
	return f
}

func sampleIssues() []*domain.Issue {
	return []*domain.Issue{
		{Key: "PROJ-1", Status: "To Do", Summary: "[A] One", Blocks: []string{"PROJ-2"}},
		{Key: "PROJ-2", Status: "Done", Summary: "[A] Two"},
		{Key: "PROJ-3", Status: "To Do", Summary: "[A] Three"},
	}
}

func TestPlotEpic_Execute_Success(t *testing.T) {
	// Setup
	f := newPlotFixture(t, sampleIssues()...)
	dir := filepath.Dir(f.csvPath)

	// Execute
	out, err := f.uc.Execute(context.Background(), PlotEpicInput{
		CSVPath:  f.csvPath,
		EpicName: "Checkout",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "epic.dot"), out.DotPath)
	assert.Equal(t, filepath.Join(dir, "epic.pdf"), out.RenderedPath)
	assert.Equal(t, 2, out.Linked)
	assert.Equal(t, 1, out.Isolated)
	assert.Equal(t, 1, out.Edges)
	assert.True(t, out.Rendered)
	assert.True(t, out.Opened)

	assert.Equal(t, []string{f.csvPath}, f.loader.Paths)
	assert.Equal(t, []testutil.RenderCall{{
		DotPath: out.DotPath,
		OutPath: out.RenderedPath,
		Format:  "pdf",
	}}, f.renderer.Calls)
	assert.Equal(t, []string{out.RenderedPath}, f.opener.Opened)

	content, err := os.ReadFile(out.DotPath)
	require.NoError(t, err)
	dot := string(content)
	assert.Contains(t, dot, `label="Checkout";`)
	assert.Equal(t, 1, strings.Count(dot, "->"))
	assert.Contains(t, dot, "\t1 -> 2\n")
	assert.Contains(t, dot, "PROJ-3\"]")
	assert.NotContains(t, dot, "\\nPROJ-1")
}

func TestPlotEpic_Execute_NoRender(t *testing.T) {
	f := newPlotFixture(t, sampleIssues()...)

	out, err := f.uc.Execute(context.Background(), PlotEpicInput{CSVPath: f.csvPath, NoRender: true})

	require.NoError(t, err)
	assert.FileExists(t, out.DotPath)
	assert.False(t, out.Rendered)
	assert.Empty(t, out.RenderedPath)
	assert.Empty(t, f.renderer.Calls)
	assert.Empty(t, f.opener.Opened)
}

func TestPlotEpic_Execute_NoOpen(t *testing.T) {
	f := newPlotFixture(t, sampleIssues()...)

	out, err := f.uc.Execute(context.Background(), PlotEpicInput{CSVPath: f.csvPath, NoOpen: true})

	require.NoError(t, err)
	assert.True(t, out.Rendered)
	assert.False(t, out.Opened)
	assert.Len(t, f.renderer.Calls, 1)
	assert.Empty(t, f.opener.Opened)
}

func TestPlotEpic_Execute_CustomOutputAndFormat(t *testing.T) {
	f := newPlotFixture(t, sampleIssues()...)
	dotPath := filepath.Join(t.TempDir(), "graph.gv")

	out, err := f.uc.Execute(context.Background(), PlotEpicInput{
		CSVPath: f.csvPath,
		DotPath: dotPath,
		Format:  "svg",
	})

	require.NoError(t, err)
	assert.Equal(t, dotPath, out.DotPath)
	assert.Equal(t, strings.TrimSuffix(dotPath, ".gv")+".svg", out.RenderedPath)
	assert.Equal(t, "svg", f.renderer.Calls[0].Format)
}

func TestPlotEpic_Execute_RendererVariantFormat(t *testing.T) {
	f := newPlotFixture(t, sampleIssues()...)
	dir := filepath.Dir(f.csvPath)

	out, err := f.uc.Execute(context.Background(), PlotEpicInput{
		CSVPath: f.csvPath,
		Format:  "png:cairo",
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "epic.png"), out.RenderedPath)
	assert.Equal(t, "png:cairo", f.renderer.Calls[0].Format)
	assert.Equal(t, []string{filepath.Join(dir, "epic.png")}, f.opener.Opened)
}

func TestPlotEpic_Execute_InvalidFormat(t *testing.T) {
	f := newPlotFixture(t, sampleIssues()...)

	_, err := f.uc.Execute(context.Background(), PlotEpicInput{CSVPath: f.csvPath, Format: "pdf -o /etc/passwd"})

	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Empty(t, f.loader.Paths)
}

func TestPlotEpic_Execute_LoadError(t *testing.T) {
	f := newPlotFixture(t)
	f.loader.Err = domain.ErrMissingColumn

	_, err := f.uc.Execute(context.Background(), PlotEpicInput{CSVPath: f.csvPath})

	require.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.NoFileExists(t, domain.DotPath(f.csvPath))
}

func TestPlotEpic_Execute_RenderError(t *testing.T) {
	f := newPlotFixture(t, sampleIssues()...)
	f.renderer.Err = errors.Join(domain.ErrRenderFailed, errors.New("dot not found"))

	out, err := f.uc.Execute(context.Background(), PlotEpicInput{CSVPath: f.csvPath})

	require.ErrorIs(t, err, domain.ErrRenderFailed)
	require.NotNil(t, out)
	assert.FileExists(t, out.DotPath)
	assert.False(t, out.Rendered)
	assert.Empty(t, f.opener.Opened)
}

func TestPlotEpic_Execute_OpenError(t *testing.T) {
	f := newPlotFixture(t, sampleIssues()...)
	f.opener.Err = domain.ErrOpenFailed

	out, err := f.uc.Execute(context.Background(), PlotEpicInput{CSVPath: f.csvPath})

	require.ErrorIs(t, err, domain.ErrOpenFailed)
	assert.True(t, out.Rendered)
	assert.False(t, out.Opened)
}
