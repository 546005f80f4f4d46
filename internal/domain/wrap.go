package domain

import (
	"strings"
	"unicode/utf8"
)

// LineBreak is the line break escape understood inside Graphviz labels.
const LineBreak = `\n`

// DefaultWrapWidth is the soft column limit for wrapped summaries.
const DefaultWrapWidth = 30

// WrapLines splits s into lines of roughly limit characters.
// Each word adds its length plus one separator to a running count; the word
// that pushes the count past limit still ends the current line and the count
// restarts at zero. Words are never split, so a line may overflow by one word.
func WrapLines(s string, limit int) []string {
	var lines []string
	var current []string
	count := 0
	for _, word := range strings.Split(s, " ") {
		if word == "" {
			continue
		}
		count += utf8.RuneCountInString(word) + 1
		current = append(current, word)
		if count > limit {
			lines = append(lines, strings.Join(current, " "))
			current = nil
			count = 0
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// SplitSummary splits a summary into its leading "[TAG]" and the description.
// The tag keeps its closing bracket; later brackets stay in the description.
// A summary without "]" has no tag.
func SplitSummary(summary string) (tag, description string) {
	before, after, found := strings.Cut(summary, "]")
	if !found {
		return "", summary
	}
	return before + "]", after
}

// WrapSummaryLines returns the display lines for a summary: the tag, a blank
// line, then every "|"-separated description segment wrapped at limit.
func WrapSummaryLines(summary string, limit int) []string {
	tag, description := SplitSummary(summary)

	var body []string
	for _, segment := range strings.Split(description, "|") {
		segment = strings.Trim(segment, " -")
		if segment == "" {
			continue
		}
		body = append(body, WrapLines(segment, limit)...)
	}

	if tag == "" {
		return body
	}
	if len(body) == 0 {
		return []string{tag}
	}
	return append([]string{tag, ""}, body...)
}
