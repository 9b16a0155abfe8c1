package main

import (
	"os"

	"github.com/wonny/gridsight/cmd/gridsight/commands"
)

// main is the entry point for the Gridsight CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
