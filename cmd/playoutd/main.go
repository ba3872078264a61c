// Package main is the entry point for the playoutd daemon.
package main

import (
	"os"

	"github.com/fernwood/playoutd/cmd/playoutd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
