package domain

import (
	"path/filepath"
	"strings"
)

// DotExt is the extension of graph description files.
const DotExt = ".dot"

// OutputBase returns csvPath without its last four characters ("epic.csv" -> "epic").
// Paths of four characters or fewer are returned unchanged.
func OutputBase(csvPath string) string {
	if len(csvPath) <= 4 {
		return csvPath
	}
	return csvPath[:len(csvPath)-4]
}

// DotPath returns the graph description path written next to csvPath.
func DotPath(csvPath string) string {
	return OutputBase(csvPath) + DotExt
}

// RenderedPath returns the path of the file rendered from dotPath in format.
// A renderer suffix such as ":cairo" in "png:cairo" is not part of the extension.
func RenderedPath(dotPath, format string) string {
	ext, _, _ := strings.Cut(format, ":")
	return strings.TrimSuffix(dotPath, filepath.Ext(dotPath)) + "." + ext
}
