package main

import "github.com/releasekit/releasekit/pkg/cli"

// Overridden at build time:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/releasekit
var version = "dev"

func main() {
	cli.SetVersionInfo(version)
	cli.Execute()
}
