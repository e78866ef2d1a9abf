package main

import (
	"fmt"
	"os"
	"runtime"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(Execute())
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("pomdot %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}

// banner returns the line printed before status output and timer runs.
func banner() string {
	if version == "dev" {
		return "Pomdot dev"
	}
	return "Pomdot v" + version
}
