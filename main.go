// Package main implements a converter from NES background pixel
// coordinates to nametable addresses.
package main

import (
	"os"

	"github.com/retroenv/ntcoord/internal/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	build := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, build))
}
