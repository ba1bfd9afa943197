package main

import (
	"os"

	"genftype/internal/cli/commands"
)

// Set by goreleaser ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	os.Exit(commands.Main(os.Args[1:], os.Stdout, os.Stderr))
}
