// Package main is the entry point for the deckctl CLI tool.
package main

import (
	"os"

	"github.com/bright-coral-crab/tooldeck/cmd/deckctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
