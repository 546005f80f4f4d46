package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/runoshun/jiraplot/internal/domain"
)

// NormalizeExportInput contains the parameters for normalizing an export.
type NormalizeExportInput struct {
	CSVPath string // Jira CSV export (required)
	OutPath string // Destination; empty returns the content instead
}

// NormalizeExportOutput contains the result of normalizing an export.
type NormalizeExportOutput struct {
	OutPath string // Written file, empty when Content is set
	Content []byte // Normalized document when no OutPath was given
}

// NormalizeExport rewrites an export so that every multi-valued header is unique.
type NormalizeExport struct {
	normalizer domain.ExportNormalizer
	files      domain.FileStore
}

// NewNormalizeExport creates a new NormalizeExport use case.
func NewNormalizeExport(normalizer domain.ExportNormalizer, files domain.FileStore) *NormalizeExport {
	return &NormalizeExport{
		normalizer: normalizer,
		files:      files,
	}
}

// Execute normalizes the export and writes it to OutPath when one is given.
func (uc *NormalizeExport) Execute(ctx context.Context, in NormalizeExportInput) (*NormalizeExportOutput, error) {
	var buf bytes.Buffer
	if err := uc.normalizer.Normalize(ctx, in.CSVPath, &buf); err != nil {
		return nil, fmt.Errorf("normalize export: %w", err)
	}

	if in.OutPath == "" {
		return &NormalizeExportOutput{Content: buf.Bytes()}, nil
	}
	if err := uc.files.WriteFile(in.OutPath, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("write export: %w", err)
	}
	return &NormalizeExportOutput{OutPath: in.OutPath}, nil
}
