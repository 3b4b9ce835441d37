package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/iterary/plastron/pkg/config"
	"github.com/iterary/plastron/pkg/schedule"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Saved Courses", "courses"),
						huh.NewOption("Set Default Schedule Count", "top"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "courses" {
			err = runSetSavedCoursesTUI(cfg)
		} else if action == "top" {
			err = runSetDefaultTopTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.plastron.json) ---"))
			if len(cfg.SavedCourses) == 0 {
				fmt.Println("Saved Courses: Not set")
			} else {
				fmt.Printf("Saved Courses: %s\n", strings.Join(cfg.SavedCourses, ", "))
			}
			fmt.Printf("Default Schedule Count: %d\n", cfg.DefaultTop)
			fmt.Printf("Filter Overrides: %d\n", len(cfg.DefaultFilters))
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetSavedCoursesTUI(cfg *config.AppConfig) error {
	var input string
	if len(cfg.SavedCourses) > 0 {
		input = strings.Join(cfg.SavedCourses, " ")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter your usual courses").
				Description("Space-separated course IDs. These pre-fill the generator.").
				Placeholder("INST314 MATH240").
				Value(&input).
				Validate(func(s string) error {
					if len(strings.Fields(s)) > schedule.MaxCourses {
						return fmt.Errorf("maximum of %d courses allowed", schedule.MaxCourses)
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedCourses = nil
	for _, id := range strings.Fields(input) {
		cfg.SavedCourses = append(cfg.SavedCourses, strings.ToUpper(id))
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d courses.\n", len(cfg.SavedCourses))))
	return nil
}

func runSetDefaultTopTUI(cfg *config.AppConfig) error {
	var input string
	if cfg.DefaultTop > 0 {
		input = strconv.Itoa(cfg.DefaultTop)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many schedules should be generated by default?").
				Placeholder("1").
				Value(&input).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					val, err := strconv.Atoi(s)
					if err != nil || val <= 0 {
						return fmt.Errorf("please enter a positive number")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultTop = 1
	if input != "" {
		cfg.DefaultTop, _ = strconv.Atoi(input)
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default schedule count set to %d.\n", cfg.DefaultTop)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for plastron").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Plastron Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Terrapin Red", colorBlock("196")), "196"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
