// Package graphviz emits issue graphs in the DOT language and renders them
// with the Graphviz command-line tools.
package graphviz

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/runoshun/jiraplot/internal/domain"
)

// Ensure Writer implements domain.GraphWriter interface.
var _ domain.GraphWriter = (*Writer)(nil)

// isolatedNodeID is the id of the node summarizing issues without relationships.
// An issue node can claim the same id ("ABC-0"); see summaryNodeID.
const isolatedNodeID = "0"

var (
	bareID   = regexp.MustCompile(`^[A-Za-z_\x{80}-\x{10FFFF}][A-Za-z0-9_\x{80}-\x{10FFFF}]*$`)
	numeral  = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
	keywords = map[string]bool{"node": true, "edge": true, "graph": true, "digraph": true, "subgraph": true, "strict": true}
)

// Writer serializes issue graphs into DOT.
type Writer struct {
	style domain.StyleConfig
	label domain.LabelConfig
	opts  domain.LabelOptions
}

// NewWriter creates a new Writer from the style and label settings of cfg.
func NewWriter(cfg *domain.Config) *Writer {
	return &Writer{
		style: cfg.Style,
		label: cfg.Label,
		opts:  cfg.LabelOptions(),
	}
}

// Write emits the graph: a title, one node per linked issue sorted by key, a
// summary node listing isolated issues, then one edge per blocking relationship.
func (w *Writer) Write(out io.Writer, g *domain.Graph, title string) error {
	bw := bufio.NewWriter(out)

	_, _ = fmt.Fprintf(bw, "digraph D {\n")
	_, _ = fmt.Fprintf(bw, "    graph [ranksep=%s];\n\n", Quote(w.style.RankSep))
	_, _ = fmt.Fprintf(bw, "    labelloc=\"t\";\n")
	_, _ = fmt.Fprintf(bw, "    label=%s;\n", Quote(title))
	_, _ = fmt.Fprintf(bw, "    fontsize = %d\n\n\n", w.style.TitleFontSize)

	linked := g.Linked()
	taken := make(map[string]bool, len(linked))
	for _, issue := range linked {
		node := domain.NewNode(issue, w.opts)
		taken[ID(node.ID)] = true
		_, _ = fmt.Fprintf(bw, "\t%s\n", w.nodeStatement(node))
	}

	_, _ = fmt.Fprintf(bw, "\t%s [shape=box,label=%s]\n\n", summaryNodeID(taken), Quote(w.isolatedLabel(g.Isolated())))

	for _, e := range g.Edges() {
		_, _ = fmt.Fprintf(bw, "\t%s -> %s\n",
			ID(domain.NodeID(e.From, w.opts.KeyPrefixLength)),
			ID(domain.NodeID(e.To, w.opts.KeyPrefixLength)))
	}

	_, _ = fmt.Fprintf(bw, "\n}\n")
	return bw.Flush()
}

// nodeStatement formats a node with its label and colors.
func (w *Writer) nodeStatement(n domain.Node) string {
	label := quoteLines(n.Lines)
	switch n.Style {
	case domain.NodeStyleDone:
		return fmt.Sprintf("%s [shape=box,style=filled,label=%s,fillcolor=%s,fontcolor=%s]",
			ID(n.ID), label, ID(w.style.DoneColor), ID(w.style.FontColor))
	case domain.NodeStyleScheduled:
		return fmt.Sprintf("%s [shape=box,style=filled,label=%s,fillcolor=%s,fontcolor=%s]",
			ID(n.ID), label, ID(w.style.ScheduledColor), ID(w.style.FontColor))
	default:
		return fmt.Sprintf("%s [shape=box,label=%s]", ID(n.ID), label)
	}
}

// summaryNodeID returns isolatedNodeID, prefixed with underscores while an
// issue node already uses it.
func summaryNodeID(taken map[string]bool) string {
	id := isolatedNodeID
	for taken[id] {
		id = "_" + id
	}
	return id
}

// isolatedLabel lists isolated issue keys under the configured title.
func (w *Writer) isolatedLabel(isolated []*domain.Issue) string {
	perLine := w.label.IsolatedPerLine
	if perLine <= 0 {
		perLine = domain.DefaultIsolatedPerLine
	}

	var sb strings.Builder
	sb.WriteString(w.label.IsolatedTitle)
	for i, issue := range isolated {
		if i%perLine == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(issue.Key)
	}
	return sb.String()
}

// ID returns s as a DOT identifier, quoting it unless it is a bare id or numeral.
func ID(s string) string {
	if (bareID.MatchString(s) && !keywords[strings.ToLower(s)]) || numeral.MatchString(s) {
		return s
	}
	return Quote(s)
}

// Quote returns s as a double-quoted DOT string. Newlines become DOT line breaks.
func Quote(s string) string {
	return quoteLines(strings.Split(s, "\n"))
}

// quoteLines escapes every line and joins them with DOT line breaks.
func quoteLines(lines []string) string {
	escaped := make([]string, len(lines))
	for i, l := range lines {
		escaped[i] = escape(l)
	}
	return `"` + strings.Join(escaped, domain.LineBreak) + `"`
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", domain.LineBreak)

func escape(s string) string {
	return escaper.Replace(s)
}
