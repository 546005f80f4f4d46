// Package main is the entry point for the jiraplot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/jiraplot/internal/app"
	"github.com/runoshun/jiraplot/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd, os.Stderr)
	if err != nil {
		return runWithoutContainer(fmt.Errorf("failed to initialize: %w", err))
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles a broken configuration file.
// Help, version and the config template still work so the file can be fixed.
func runWithoutContainer(configErr error) error {
	if canRunWithoutConfig(os.Args[1:]) {
		return cli.NewRootCommand(nil, version).Execute()
	}
	return configErr
}

func canRunWithoutConfig(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help":
		return true
	case "config":
		return len(args) > 1 && args[1] == "template"
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
