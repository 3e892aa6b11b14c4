// Package main provides the wordseq CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/wordseq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
