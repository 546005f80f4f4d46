package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSprint(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"sprint field", "Sprint 60 | Evolução", "60", true},
		{"sprint label", "SP_60", "60", true},
		{"prefixed sprint field", "NOW | Sprint 61 | Evolução", "61", true},
		{"number at end", "Sprint 7", "7", true},
		{"only digits", "42", "42", true},
		{"first run wins", "Sprint 12 - 2024", "12", true},
		{"no digits", "NOW | BL Técnico | Evolução", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSprint(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIssue_RawSprint(t *testing.T) {
	tests := []struct {
		name   string
		issue  Issue
		want   string
		wantOK bool
	}{
		{
			name:   "sprint field wins over labels",
			issue:  Issue{Sprint: "Sprint 60", Labels: []string{"SP_59"}},
			want:   "Sprint 60",
			wantOK: true,
		},
		{
			name:   "first matching label",
			issue:  Issue{Labels: []string{"backend", "SP_61", "SP_62"}},
			want:   "SP_61",
			wantOK: true,
		},
		{
			name:  "no sprint",
			issue: Issue{Labels: []string{"backend"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.issue.RawSprint(DefaultSprintPrefix)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIssue_SprintNumber_NoDigits(t *testing.T) {
	issue := Issue{Sprint: "NOW | BL Técnico | Evolução"}

	_, ok := issue.SprintNumber(DefaultSprintPrefix)

	assert.False(t, ok)
}
