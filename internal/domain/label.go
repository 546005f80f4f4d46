package domain

import (
	"strings"
)

// NodeStyle selects how an issue node is painted.
type NodeStyle int

// Node styles.
const (
	NodeStylePlain     NodeStyle = iota // Unfilled, default font
	NodeStyleDone                       // Finished issue
	NodeStyleScheduled                  // Issue assigned to a sprint
)

// String returns the style name.
func (s NodeStyle) String() string {
	switch s {
	case NodeStyleDone:
		return "done"
	case NodeStyleScheduled:
		return "scheduled"
	default:
		return "plain"
	}
}

// LabelOptions controls how node labels are derived from issues.
// Fields are ordered to minimize memory padding.
type LabelOptions struct {
	SprintLabelPrefix string   // Label prefix that carries a sprint, e.g. "SP_"
	DoneStatuses      []string // Statuses painted as done
	WrapWidth         int      // Soft column limit for the summary
	KeyPrefixLength   int      // Fixed prefix stripped from keys; 0 strips the project code
}

// Node is the display form of an issue.
type Node struct {
	ID    string   // Graph node identifier derived from the issue key
	Lines []string // Label lines, unescaped
	Style NodeStyle
}

// NewNode derives the display node of an issue.
func NewNode(issue *Issue, opts LabelOptions) Node {
	width := opts.WrapWidth
	if width <= 0 {
		width = DefaultWrapWidth
	}

	lines := []string{issue.Key}
	sprint, hasSprint := issue.SprintNumber(opts.SprintLabelPrefix)
	if hasSprint {
		lines = append(lines, "Sprint "+sprint)
	}
	lines = append(lines, WrapSummaryLines(issue.Summary, width)...)

	style := NodeStylePlain
	switch {
	case issue.IsDone(opts.DoneStatuses):
		style = NodeStyleDone
	case hasSprint:
		style = NodeStyleScheduled
	}

	return Node{
		ID:    NodeID(issue.Key, opts.KeyPrefixLength),
		Lines: lines,
		Style: style,
	}
}

// NodeID derives a short graph identifier from an issue key.
// With prefixLen > 0 that many leading bytes are dropped. Otherwise the
// project code up to and including the first "-" is dropped ("PROJ-12" -> "12").
// Keys that would become empty are returned unchanged.
func NodeID(key string, prefixLen int) string {
	if prefixLen > 0 {
		if len(key) <= prefixLen {
			return key
		}
		return key[prefixLen:]
	}
	_, rest, found := strings.Cut(key, "-")
	if !found || rest == "" {
		return key
	}
	return rest
}
