// Package main is the entry point for the mnconnect CLI.
package main

import (
	"os"

	"github.com/bochaco/mn-wallet-connect/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
