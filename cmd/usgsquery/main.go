package main

import (
	"os"

	"github.com/couchcryptid/usgs-quake-query/internal/cli"
)

var (
	version   string
	buildTime string
)

func main() {
	cli.Version = version
	cli.BuildTime = buildTime
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
