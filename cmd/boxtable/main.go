package main

import (
	"os"

	"github.com/bjaus/boxtable/console"
	"github.com/bjaus/boxtable/internal/cli"
)

var version = "dev" // Will be set by ldflags during build

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		_ = console.Stderr(console.DefaultLevel).Error(err.Error())
		os.Exit(1)
	}
}
