package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultLabelOptions() LabelOptions {
	return NewDefaultConfig().LabelOptions()
}

func TestNewNode_Style(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  NodeStyle
	}{
		{"done", Issue{Key: "ABC-1", Status: "Done"}, NodeStyleDone},
		{"fechado", Issue{Key: "ABC-1", Status: "Fechado"}, NodeStyleDone},
		{"done wins over sprint", Issue{Key: "ABC-1", Status: "Done", Sprint: "Sprint 3"}, NodeStyleDone},
		{"in progress with sprint", Issue{Key: "ABC-1", Status: "In Progress", Sprint: "Sprint 60 | Evolução"}, NodeStyleScheduled},
		{"in progress with sprint label", Issue{Key: "ABC-1", Status: "In Progress", Labels: []string{"SP_60"}}, NodeStyleScheduled},
		{"in progress without sprint", Issue{Key: "ABC-1", Status: "In Progress"}, NodeStylePlain},
		{"sprint without number", Issue{Key: "ABC-1", Status: "To Do", Sprint: "NOW | BL Técnico"}, NodeStylePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := NewNode(&tt.issue, defaultLabelOptions())
			assert.Equal(t, tt.want, node.Style)
		})
	}
}

func TestNewNode_Label(t *testing.T) {
	issue := &Issue{
		Key:     "PROJ-12",
		Status:  "In Progress",
		Sprint:  "Sprint 60 | Evolução",
		Summary: "[API] Create endpoint | Validate input",
	}

	node := NewNode(issue, defaultLabelOptions())

	assert.Equal(t, "12", node.ID)
	assert.Equal(t, []string{"PROJ-12", "Sprint 60", "[API]", "", "Create endpoint", "Validate input"}, node.Lines)
}

func TestNewNode_NoSprintLine(t *testing.T) {
	node := NewNode(&Issue{Key: "ABC-1", Summary: "[WEB] Page"}, defaultLabelOptions())

	assert.Equal(t, []string{"ABC-1", "[WEB]", "", "Page"}, node.Lines)
	assert.Equal(t, NodeStylePlain, node.Style)
}

func TestNodeID(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		prefixLen int
		want      string
	}{
		{"project code", "PROJ-123", 0, "123"},
		{"three letter project", "ABC-123", 0, "123"},
		{"fixed prefix", "ABC-123", 4, "123"},
		{"fixed prefix on longer code", "PROJ-123", 4, "-123"},
		{"no hyphen", "KEY", 0, "KEY"},
		{"trailing hyphen", "KEY-", 0, "KEY-"},
		{"short key", "AB", 4, "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NodeID(tt.key, tt.prefixLen))
		})
	}
}

func TestNodeStyle_String(t *testing.T) {
	assert.Equal(t, "plain", NodeStylePlain.String())
	assert.Equal(t, "done", NodeStyleDone.String())
	assert.Equal(t, "scheduled", NodeStyleScheduled.String())
}
