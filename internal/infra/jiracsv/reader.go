package jiracsv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/jiraplot/internal/domain"
)

// Ensure Reader implements the domain export interfaces.
var (
	_ domain.IssueLoader      = (*Reader)(nil)
	_ domain.ExportNormalizer = (*Reader)(nil)
)

// Column kinds, in the order of domain.ColumnsConfig.Markers.
const (
	kindBlocks = iota
	kindLabels
	kindSprint
)

// Reader maps rows of a Jira CSV export to issues.
type Reader struct {
	logger  *slog.Logger
	columns domain.ColumnsConfig
}

// NewReader creates a new Reader reading the given columns.
func NewReader(columns domain.ColumnsConfig, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{
		logger:  logger,
		columns: columns,
	}
}

// Load reads the export at path.
func (r *Reader) Load(ctx context.Context, path string) ([]*domain.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer func() { _ = f.Close() }()

	issues, err := r.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	r.logger.Debug("loaded issues", "path", path, "count", len(issues))
	return issues, nil
}

// Normalize writes the export at path to w with its header normalized.
func (r *Reader) Normalize(ctx context.Context, path string, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open export: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := Normalize(f, w, r.columns.Markers()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// layout holds the column positions resolved from a header.
type layout struct {
	kinds     []int // Column kind per position, -1 for plain columns
	key       int
	issueType int
	status    int
	summary   int
}

// Parse reads issues from a CSV document.
func (r *Reader) Parse(in io.Reader) ([]*domain.Issue, error) {
	cr := newCSVReader(in)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	l, err := r.resolve(NormalizeHeader(cleanHeader(header), r.columns.Markers()))
	if err != nil {
		return nil, err
	}

	var issues []*domain.Issue
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		issue, err := r.issueFromRecord(l, record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		issues = append(issues, issue)
	}

	return issues, nil
}

// resolve locates the required and multi-valued columns in a normalized header.
func (r *Reader) resolve(header []string) (layout, error) {
	l := layout{kinds: make([]int, len(header))}

	positions := make(map[string]int, len(header))
	markers := r.columns.Markers()
	for i, h := range header {
		if _, ok := positions[h]; !ok {
			positions[h] = i
		}
		l.kinds[i] = matchMarker(h, markers)
	}

	required := []struct {
		name string
		dst  *int
	}{
		{r.columns.Key, &l.key},
		{r.columns.Type, &l.issueType},
		{r.columns.Status, &l.status},
		{r.columns.Summary, &l.summary},
	}
	for _, col := range required {
		pos, ok := positions[col.name]
		if !ok {
			return layout{}, fmt.Errorf("%w: %q", domain.ErrMissingColumn, col.name)
		}
		*col.dst = pos
	}

	return l, nil
}

// issueFromRecord builds an issue from one data row.
// Multi-valued columns are read in header order; the first non-empty sprint wins.
func (r *Reader) issueFromRecord(l layout, record []string) (*domain.Issue, error) {
	field := func(pos int, name string) (string, error) {
		if pos >= len(record) {
			return "", fmt.Errorf("%w: %q", domain.ErrMissingField, name)
		}
		return record[pos], nil
	}

	key, err := field(l.key, r.columns.Key)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrMissingField, r.columns.Key)
	}
	issueType, err := field(l.issueType, r.columns.Type)
	if err != nil {
		return nil, err
	}
	status, err := field(l.status, r.columns.Status)
	if err != nil {
		return nil, err
	}
	summary, err := field(l.summary, r.columns.Summary)
	if err != nil {
		return nil, err
	}

	issue := &domain.Issue{
		Key:       key,
		IssueType: issueType,
		Status:    status,
		Summary:   summary,
	}

	for pos, value := range record {
		if value == "" || pos >= len(l.kinds) {
			continue
		}
		switch l.kinds[pos] {
		case kindBlocks:
			issue.Blocks = append(issue.Blocks, value)
		case kindLabels:
			issue.Labels = append(issue.Labels, value)
		case kindSprint:
			if issue.Sprint == "" {
				issue.Sprint = value
			}
		}
	}

	return issue, nil
}
