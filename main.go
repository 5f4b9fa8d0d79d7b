package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/jobtrack/cmd"
	"github.com/thenoetrevino/jobtrack/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
