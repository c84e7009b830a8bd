// Package main provides the pgvet CLI.
package main

import (
	"os"

	"github.com/pgvet/pgvet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
