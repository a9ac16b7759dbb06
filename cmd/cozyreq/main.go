// Package main is the entry point for the cozyreq CLI/TUI.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/cozycrafters/cozyreq/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
