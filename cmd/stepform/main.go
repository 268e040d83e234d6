// Package main is the entry point for the stepform CLI.
//
// stepform collects a professional profile through a three-step wizard
// (personal information, professional details, review) and delivers each
// submission to the configured sinks: the log, a directory of YAML files,
// or an S3-compatible bucket.
//
// Commands: run, submit, version, completion.
//
// For detailed usage information, run:
//
//	stepform --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/stepform/cmd/stepform/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
