package main

import (
	"fmt"
	"os"

	"github.com/aretw0/holdfast/internal/cli"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <script>",
	Short: "Check an annotation script against the ownership rules",
	Long:  `Parses an annotation script and reports every ownership, borrowing or slicing violation with its line number. Exits 1 when any violation is found.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := cli.Check(os.Stdout, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if n > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
