package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plastron",
	Short: "A CLI and API for generating optimal UMD class schedules",
	Long: `plastron scrapes the Testudo Schedule of Classes and searches for the
conflict-free section combinations with the least idle time between classes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
