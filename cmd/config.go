package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iterary/plastron/pkg/config"
	"github.com/iterary/plastron/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage plastron configuration",
	Long:  "View or edit your local configuration settings (like saved courses and default filters).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false

		if cmd.Flags().Changed("set-courses") {
			courses, _ := cmd.Flags().GetStringSlice("set-courses")
			for i, id := range courses {
				courses[i] = strings.ToUpper(strings.TrimSpace(id))
			}
			cfg.SavedCourses = courses
			changed = true
		}

		if cmd.Flags().Changed("set-top") {
			top, _ := cmd.Flags().GetInt("set-top")
			if top < 1 {
				return fmt.Errorf("--set-top must be a positive integer")
			}
			cfg.DefaultTop = top
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringSlice("set-courses", nil, "Set your saved course list (e.g. INST314,MATH141)")
	configCmd.Flags().Int("set-top", 0, "Set the default number of schedules to generate")
}
