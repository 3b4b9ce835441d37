package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/iterary/plastron/pkg/exporter"
	"github.com/iterary/plastron/pkg/schedule"
	"github.com/iterary/plastron/pkg/soc"
)

var exportCmd = &cobra.Command{
	Use:   "export COURSE_ID...",
	Short: "Directly export the best schedule to an ICS file",
	Long:  `Generate the lowest-cost schedule for the given courses and write it to an ICS file without using the interactive TUI.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > schedule.MaxCourses {
			return fmt.Errorf("maximum of %d courses allowed", schedule.MaxCourses)
		}

		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		filters, err := resolveFilters(cmd)
		if err != nil {
			return err
		}

		gen := schedule.NewGenerator(soc.NewClient(), args, filters, schedule.DefaultParams())

		var schedules []schedule.Schedule
		var genErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Building a schedule for %d courses...", len(args))).
			Action(func() {
				schedules, genErr = gen.Generate(1)
			}).
			Run()

		if genErr != nil {
			return fmt.Errorf("failed to generate schedule: %w", genErr)
		}

		if len(schedules) == 0 {
			return fmt.Errorf("no conflict-free schedule found for %s", strings.Join(args, ", "))
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(schedules[0], file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d sections to %s\n", len(schedules[0].Sections), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	addFilterFlags(exportCmd)
}
