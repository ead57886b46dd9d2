// ABOUTME: Entry point for roadmap CLI
// ABOUTME: Command-line tool for roadmap calculations and CI/CD integration

package main

import (
	"fmt"
	"os"

	"github.com/furnaceworks/automation-roadmap/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
