// Package main provides the entry point for weekplan.
//
// weekplan is a terminal weekly planner: a seven-column board of timed
// tasks with keyboard and mouse editing, plus subcommands for scripting
// the same task store.
//
// Usage:
//
//	weekplan [command] [flags]
package main

import (
	"os"

	"github.com/riordanpawley/weekplan/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
