package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/iterary/plastron/pkg/config"
	"github.com/iterary/plastron/pkg/course"
	"github.com/iterary/plastron/pkg/exporter"
	"github.com/iterary/plastron/pkg/grid"
	"github.com/iterary/plastron/pkg/schedule"
	"github.com/iterary/plastron/pkg/soc"
)

// RunGenerateTUI runs the interactive flow for generating optimal schedules
func RunGenerateTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the Plastron Schedule Generator!"))

	cfg, _ := config.Load()

	var coursesInput string
	var topStr string

	filters := course.DefaultFilters()
	if cfg != nil && len(cfg.DefaultFilters) > 0 {
		if decoded, err := course.DecodeFilters(cfg.DefaultFilters); err == nil {
			filters = decoded
		}
	}
	if cfg != nil && len(cfg.SavedCourses) > 0 {
		coursesInput = strings.Join(cfg.SavedCourses, " ")
	}

	courseForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which courses are you taking?").
				Description("Space-separated course IDs, e.g. INST314 MATH240").
				Placeholder("INST314 MATH240").
				Value(&coursesInput).
				Validate(func(s string) error {
					ids := strings.Fields(s)
					if len(ids) == 0 {
						return fmt.Errorf("enter at least one course ID")
					}
					if len(ids) > schedule.MaxCourses {
						return fmt.Errorf("maximum of %d courses allowed", schedule.MaxCourses)
					}
					return nil
				}),

			huh.NewInput().
				Title("How many schedules do you want?").
				Placeholder("1").
				Value(&topStr).
				Validate(func(s string) error {
					if s == "" {
						return nil // Default to 1
					}
					val, err := strconv.Atoi(s)
					if err != nil || val <= 0 {
						return fmt.Errorf("please enter a positive number")
					}
					return nil
				}),

			huh.NewConfirm().
				Title("Only sections with open seats?").
				Value(&filters.OpenSeats),

			huh.NewInput().
				Title("Earliest acceptable start time").
				Placeholder("7:30am").
				Value(&filters.EarliestStart).
				Validate(validateClock),

			huh.NewInput().
				Title("Latest acceptable end time").
				Placeholder("6:30pm").
				Value(&filters.LatestEnd).
				Validate(validateClock),
		),
	).WithTheme(GetTheme())

	if err := courseForm.Run(); err != nil {
		return err
	}

	courseIDs := strings.Fields(coursesInput)
	top := 1
	if topStr != "" {
		top, _ = strconv.Atoi(topStr)
	}

	gen := schedule.NewGenerator(soc.NewClient(), courseIDs, filters, schedule.DefaultParams())

	var schedules []schedule.Schedule
	var genErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Scraping sections for %d courses...", len(courseIDs))).
		Action(func() {
			schedules, genErr = gen.Generate(top)
		}).
		Run()

	if genErr != nil {
		return fmt.Errorf("failed to generate schedules: %w", genErr)
	}

	if len(schedules) == 0 {
		fmt.Println(errorStyle.Render("No conflict-free schedules found!"))
		if empty := gen.EmptyCourses(); len(empty) > 0 {
			fmt.Printf("These courses had no sections left after filtering: %s\n", strings.Join(empty, ", "))
		}
		return nil
	}

	fmt.Print(grid.RenderAll(schedules, true))

	// Offer to export the best schedule
	var exportIt bool
	var outputFile string

	exportForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export the top schedule to an ICS calendar?").
				Value(&exportIt),
		),
	).WithTheme(GetTheme())

	if err := exportForm.Run(); err != nil {
		return err
	}

	if !exportIt {
		return nil
	}

	outputFile = "schedule.ics"
	nameForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := nameForm.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(schedules[0], file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported top schedule to %s", outputFile)))
	return nil
}

func validateClock(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := course.ParseClock(s); !ok {
		return fmt.Errorf("use a 12-hour time like 7:30am")
	}
	return nil
}
