package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "holdfast",
	Short: "Holdfast demonstrates ownership, borrowing and slicing rules",
	Long:  `Holdfast runs a fixed catalog of scenarios, each narrating one ownership rule, and checks annotation scripts against the same rules.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
