package main

import (
	"github.com/talknet-go/talknetcfg/internal/cli"
)

// Version is injected at build time through ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
