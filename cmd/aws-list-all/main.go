package main

import (
	"os"

	"github.com/regression-io/aws-list-all/internal/cmd"
	"github.com/regression-io/aws-list-all/internal/observability"
)

// Build metadata, injected via -ldflags at release time.
var (
	version   = "dev"
	commit    = "HEAD"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)
	defer observability.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
