// Package domain contains core business entities and interfaces.
package domain

import "strings"

// Issue is a single row of a Jira export.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Key       string   `yaml:"key"`
	IssueType string   `yaml:"type"`
	Status    string   `yaml:"status"`
	Summary   string   `yaml:"summary"`
	Sprint    string   `yaml:"sprint,omitempty"` // Raw sprint field, empty when absent
	Blocks    []string `yaml:"blocks,omitempty"`
	BlockedBy []string `yaml:"blocked_by,omitempty"` // Derived by BuildGraph, never loaded
	Labels    []string `yaml:"labels,omitempty"`
}

// HasRelations reports whether the issue blocks or is blocked by another issue.
func (i *Issue) HasRelations() bool {
	return len(i.Blocks) > 0 || len(i.BlockedBy) > 0
}

// RawSprint returns the free-text sprint of the issue.
// The Sprint field wins; otherwise the first label starting with labelPrefix is used.
func (i *Issue) RawSprint(labelPrefix string) (string, bool) {
	if i.Sprint != "" {
		return i.Sprint, true
	}
	if labelPrefix == "" {
		return "", false
	}
	for _, l := range i.Labels {
		if strings.HasPrefix(l, labelPrefix) {
			return l, true
		}
	}
	return "", false
}

// SprintNumber returns the sprint number of the issue, if one can be resolved.
func (i *Issue) SprintNumber(labelPrefix string) (string, bool) {
	raw, ok := i.RawSprint(labelPrefix)
	if !ok {
		return "", false
	}
	return ExtractSprint(raw)
}

// IsDone reports whether the issue status is one of doneStatuses.
func (i *Issue) IsDone(doneStatuses []string) bool {
	for _, s := range doneStatuses {
		if i.Status == s {
			return true
		}
	}
	return false
}
