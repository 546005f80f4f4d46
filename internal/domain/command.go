package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// String returns the command line for display.
func (c *ExecCommand) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// NewRenderCommand builds the Graphviz invocation converting dotPath into outPath.
func NewRenderCommand(program, format, dotPath, outPath string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    []string{"-T" + format, dotPath, "-o", outPath},
	}
}

// NewViewerCommand builds the command opening path with the default application.
// A non-empty viewer overrides the platform default and is split on spaces.
func NewViewerCommand(goos, viewer, path string) *ExecCommand {
	if fields := strings.Fields(viewer); len(fields) > 0 {
		return &ExecCommand{
			Program: fields[0],
			Args:    append(fields[1:], path),
		}
	}
	switch goos {
	case "darwin":
		return &ExecCommand{Program: "open", Args: []string{path}}
	case "windows":
		return &ExecCommand{Program: "cmd", Args: []string{"/c", "start", "", path}}
	default:
		return &ExecCommand{Program: "xdg-open", Args: []string{path}}
	}
}
