// cmd/distilreport/main.go
package main

import (
	cmd "github.com/mwiater/distilreport/internal/commands"
)

// Set by the release build with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the distilreport CLI by delegating to the cobra root command.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
