package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/iterary/plastron/pkg/config"
	"github.com/iterary/plastron/pkg/course"
	"github.com/iterary/plastron/pkg/grid"
	"github.com/iterary/plastron/pkg/schedule"
	"github.com/iterary/plastron/pkg/soc"
)

var generateCmd = &cobra.Command{
	Use:   "generate COURSE_ID...",
	Short: "Generate optimal schedules for a set of courses",
	Long:  `Scrape sections for the given courses and print the lowest-cost conflict-free schedules as a weekly grid.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > schedule.MaxCourses {
			return fmt.Errorf("maximum of %d courses allowed", schedule.MaxCourses)
		}

		top, _ := cmd.Flags().GetInt("num")
		if top <= 0 {
			return fmt.Errorf("--num must be a positive integer")
		}

		filters, err := resolveFilters(cmd)
		if err != nil {
			return err
		}

		gen := schedule.NewGenerator(soc.NewClient(), args, filters, schedule.DefaultParams())

		var schedules []schedule.Schedule
		var genErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Scraping sections for %d courses...", len(args))).
			Action(func() {
				schedules, genErr = gen.Generate(top)
			}).
			Run()

		if genErr != nil {
			return fmt.Errorf("failed to generate schedules: %w", genErr)
		}

		if len(schedules) == 0 {
			fmt.Println("No conflict-free schedules found.")
			if empty := gen.EmptyCourses(); len(empty) > 0 {
				fmt.Printf("These courses had no sections left after filtering: %s\n", strings.Join(empty, ", "))
			}
			return nil
		}

		plain, _ := cmd.Flags().GetBool("plain")
		fmt.Print(grid.RenderAll(schedules, !plain))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("num", "n", 1, "Number of schedules to generate")
	generateCmd.Flags().Bool("plain", false, "Disable colored output")
	addFilterFlags(generateCmd)
}

// addFilterFlags registers the section-filter flags shared by generate and export.
func addFilterFlags(cmd *cobra.Command) {
	defaults := course.DefaultFilters()
	cmd.Flags().Bool("esg", !defaults.NoESG, "Include ESG sections")
	cmd.Flags().Bool("fc", !defaults.NoFC, "Include Freshman Connection sections")
	cmd.Flags().Bool("open-seats", defaults.OpenSeats, "Only include sections with open seats")
	cmd.Flags().String("earliest", defaults.EarliestStart, "Earliest acceptable start time (e.g. 7:30am)")
	cmd.Flags().String("latest", defaults.LatestEnd, "Latest acceptable end time (e.g. 6:30pm)")
	cmd.Flags().StringSlice("avoid", nil, "Instructors to avoid")
	cmd.Flags().Int("max-waitlist", -1, "Maximum acceptable waitlist length (-1 for no limit)")
	cmd.Flags().StringSlice("exclude-days", nil, "Days to keep free (e.g. F)")
}

// resolveFilters merges the config file's saved filter overrides with any
// flags set on the command line. Flags win.
func resolveFilters(cmd *cobra.Command) (course.Filters, error) {
	filters := course.DefaultFilters()

	cfg, err := config.Load()
	if err == nil && cfg != nil && len(cfg.DefaultFilters) > 0 {
		filters, err = course.DecodeFilters(cfg.DefaultFilters)
		if err != nil {
			return filters, fmt.Errorf("invalid default_filters in config: %w", err)
		}
	}

	if cmd.Flags().Changed("esg") {
		include, _ := cmd.Flags().GetBool("esg")
		filters.NoESG = !include
	}
	if cmd.Flags().Changed("fc") {
		include, _ := cmd.Flags().GetBool("fc")
		filters.NoFC = !include
	}
	if cmd.Flags().Changed("open-seats") {
		filters.OpenSeats, _ = cmd.Flags().GetBool("open-seats")
	}
	if cmd.Flags().Changed("earliest") {
		filters.EarliestStart, _ = cmd.Flags().GetString("earliest")
	}
	if cmd.Flags().Changed("latest") {
		filters.LatestEnd, _ = cmd.Flags().GetString("latest")
	}
	if cmd.Flags().Changed("avoid") {
		filters.AvoidInstructors, _ = cmd.Flags().GetStringSlice("avoid")
	}
	if cmd.Flags().Changed("max-waitlist") {
		limit, _ := cmd.Flags().GetInt("max-waitlist")
		if limit >= 0 {
			filters.MaxWaitlist = &limit
		}
	}
	if cmd.Flags().Changed("exclude-days") {
		filters.ExcludeDays, _ = cmd.Flags().GetStringSlice("exclude-days")
	}

	for _, clock := range []string{filters.EarliestStart, filters.LatestEnd} {
		if _, ok := course.ParseClock(clock); clock != "" && !ok {
			return filters, fmt.Errorf("invalid time %q, use a 12-hour time like 7:30am", clock)
		}
	}

	return filters, nil
}
