package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the holdfast version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("holdfast %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
