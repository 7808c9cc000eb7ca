// cmd/benchcharts/main.go
package main

import (
	cmd "github.com/mwiater/benchcharts/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the benchcharts CLI by delegating to the cobra root command.
// Build-time version variables are handed over first.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
