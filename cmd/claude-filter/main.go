package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "claude-filter",
		Short:   "Filter Claude conversation exports down to a single user",
		Version: version,
	}

	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(filterCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
