package main

import (
	"fmt"
	"os"

	"github.com/aretw0/holdfast/internal/cli"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scenario catalog in run order",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.List(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
