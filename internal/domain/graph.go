package domain

import (
	"cmp"
	"slices"
)

// Edge is a single blocking relationship: From blocks To.
type Edge struct {
	From string
	To   string
}

// Graph is the set of loaded issues with their blocking relationships resolved.
type Graph struct {
	issues []*Issue // Unique issues in input order
}

// BuildGraph indexes issues by key and resolves blocking relationships.
//
// For every issue, each key in Blocks that names a loaded issue gets the
// blocking issue appended to its BlockedBy. Blocks is then filtered to loaded
// keys, so references to issues outside the export are dropped. A later row
// with a duplicate key replaces the earlier one. Cycles are kept as-is.
func BuildGraph(issues []*Issue) *Graph {
	g := &Graph{issues: make([]*Issue, 0, len(issues))}
	byKey := make(map[string]*Issue, len(issues))

	position := make(map[string]int, len(issues))
	for _, issue := range issues {
		if idx, ok := position[issue.Key]; ok {
			g.issues[idx] = issue
		} else {
			position[issue.Key] = len(g.issues)
			g.issues = append(g.issues, issue)
		}
		byKey[issue.Key] = issue
	}

	for _, issue := range g.issues {
		issue.BlockedBy = nil
	}

	for _, issue := range g.issues {
		kept := issue.Blocks[:0]
		for _, key := range issue.Blocks {
			target, ok := byKey[key]
			if !ok {
				continue
			}
			target.BlockedBy = append(target.BlockedBy, issue.Key)
			kept = append(kept, key)
		}
		issue.Blocks = kept
	}

	return g
}

// Len returns the number of unique issues.
func (g *Graph) Len() int {
	return len(g.issues)
}

// Issues returns all issues in input order.
func (g *Graph) Issues() []*Issue {
	return slices.Clone(g.issues)
}

// Linked returns the issues taking part in at least one blocking relationship,
// sorted by key. Ties are broken by ascending number of blocked issues.
func (g *Graph) Linked() []*Issue {
	var linked []*Issue
	for _, issue := range g.issues {
		if issue.HasRelations() {
			linked = append(linked, issue)
		}
	}
	slices.SortStableFunc(linked, func(a, b *Issue) int {
		if c := cmp.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return cmp.Compare(len(a.Blocks), len(b.Blocks))
	})
	return linked
}

// Isolated returns the issues without any blocking relationship, sorted by key.
func (g *Graph) Isolated() []*Issue {
	var isolated []*Issue
	for _, issue := range g.issues {
		if !issue.HasRelations() {
			isolated = append(isolated, issue)
		}
	}
	slices.SortStableFunc(isolated, func(a, b *Issue) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return isolated
}

// Edges returns every blocking relationship, ordered by the blocking issue key
// and then by the order of its Blocks list.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, issue := range g.Linked() {
		for _, key := range issue.Blocks {
			edges = append(edges, Edge{From: issue.Key, To: key})
		}
	}
	return edges
}
