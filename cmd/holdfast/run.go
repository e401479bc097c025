package main

import (
	"fmt"
	"os"

	"github.com/aretw0/holdfast/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [scenario...]",
	Short: "Run the scenario catalog",
	Long:  `Runs every scenario in declaration order, or only the named ones. Each scenario prints its narration and result values.`,
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		verbose, _ := cmd.Flags().GetBool("verbose")

		err := cli.Run(cmd.Context(), cli.RunOptions{
			Names:   args,
			Plain:   plain,
			Verbose: verbose,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("plain", false, "Disable the banner and markdown rendering")
	runCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	// Bare `holdfast` runs the full catalog.
	rootCmd.Run = runCmd.Run
}
