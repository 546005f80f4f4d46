package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/jiraplot/internal/domain"
)

// ListIssuesInput contains the parameters for listing issues.
type ListIssuesInput struct {
	CSVPath    string // Jira CSV export (required)
	LinkedOnly bool   // Only issues with blocking relationships
}

// ListIssuesOutput contains the result of listing issues.
type ListIssuesOutput struct {
	Issues   []*domain.Issue // Issues with relationships resolved
	Linked   int
	Isolated int
}

// ListIssues is the use case for inspecting the resolved issue graph.
type ListIssues struct {
	issues domain.IssueLoader
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(issues domain.IssueLoader) *ListIssues {
	return &ListIssues{
		issues: issues,
	}
}

// Execute loads the export and resolves blocking relationships.
// Issues keep their export order unless LinkedOnly is set, which sorts by key.
func (uc *ListIssues) Execute(ctx context.Context, in ListIssuesInput) (*ListIssuesOutput, error) {
	issues, err := uc.issues.Load(ctx, in.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("load issues: %w", err)
	}
	g := domain.BuildGraph(issues)

	linked := g.Linked()
	out := &ListIssuesOutput{
		Issues:   g.Issues(),
		Linked:   len(linked),
		Isolated: g.Len() - len(linked),
	}
	if in.LinkedOnly {
		out.Issues = linked
	}
	return out, nil
}
