// This is the main entry point for the elemid CLI.
// Build with: go build -o bin/elemid ./cmd/elemid
// Usage: elemid <command> <document.yaml> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
