// Package grid renders a schedule as a weekly terminal grid: one column per
// weekday, one row per 30-minute block, each section colored from a fixed
// palette.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iterary/plastron/pkg/course"
	"github.com/iterary/plastron/pkg/schedule"
)

// Days shown as grid columns. Weekend meetings are rare enough that the
// grid sticks to the workweek, like the site's own planner.
var Days = []string{"M", "Tu", "W", "Th", "F"}

// palette cycles per section, in course order.
var palette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // cyan
	lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // gray
}

const (
	blockMinutes = 30
	cellWidth    = 9
)

// TimeBlocks returns the block start times from start up to (excluding) end.
func TimeBlocks(start, end course.Clock) []course.Clock {
	var blocks []course.Clock
	for t := start; t < end; t += blockMinutes {
		blocks = append(blocks, t)
	}
	return blocks
}

// ColorMap assigns each section a palette style keyed by section ID.
func ColorMap(sections []course.Section) map[string]lipgloss.Style {
	colors := make(map[string]lipgloss.Style)
	for i, s := range sections {
		colors[s.SectionID] = palette[i%len(palette)]
	}
	return colors
}

// Render draws one schedule: the weekly grid, the gap summary, and one line
// per section with seats and instructors. With colored false the output is
// plain text suitable for logs or API responses.
func Render(s schedule.Schedule, colored bool) string {
	var b strings.Builder

	colors := ColorMap(s.Sections)
	paint := func(sectionID, text string) string {
		if !colored {
			return text
		}
		return colors[sectionID].Render(text)
	}

	earliest, latest, timed := timeSpan(s.Sections)
	if timed {
		blocks := TimeBlocks(earliest, latest)

		// cell[block][day] -> (label, owning section)
		type cell struct{ label, sectionID string }
		cells := make(map[course.Clock]map[string]cell)
		for _, block := range blocks {
			cells[block] = make(map[string]cell)
		}

		for _, section := range s.Sections {
			label := section.SectionID
			if len(label) > 4 {
				label = label[4:] // trim the department prefix to fit the cell
			}
			if len(label) > cellWidth {
				label = label[:cellWidth]
			}
			for _, m := range section.Meetings {
				if !m.Scheduled() {
					continue
				}
				for _, block := range blocks {
					if m.Start <= block && block < m.End {
						if _, shown := cells[block][m.Day]; !shown {
							cells[block][m.Day] = cell{label: label, sectionID: section.SectionID}
						}
					}
				}
			}
		}

		b.WriteString("\nTime    | ")
		headers := make([]string, len(Days))
		for i, day := range Days {
			headers[i] = fmt.Sprintf("%-*s", cellWidth, day)
		}
		b.WriteString(strings.Join(headers, " | "))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("-", 8+len(Days)*(cellWidth+3)))
		b.WriteByte('\n')

		for _, block := range blocks {
			row := make([]string, len(Days))
			for i, day := range Days {
				c := cells[block][day]
				pad := strings.Repeat(" ", cellWidth-len(c.label))
				row[i] = paint(c.sectionID, c.label) + pad
			}
			b.WriteString(block.String())
			b.WriteString(" | ")
			b.WriteString(strings.Join(row, " | "))
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "Gap minutes: %d\n", s.TotalGapMinutes)

	for _, section := range s.Sections {
		meetings := make([]string, len(section.Meetings))
		for i, m := range section.Meetings {
			meetings[i] = m.String()
		}
		line := fmt.Sprintf("%s (%s/%s): [%s]",
			paint(section.SectionID, section.SectionID),
			section.Raw.OpenSeats, section.Raw.Seats,
			strings.Join(meetings, ", "))
		if len(section.Raw.Instructors) > 0 {
			line += ", " + strings.Join(section.Raw.Instructors, ", ")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderAll renders each schedule in rank order, numbered.
func RenderAll(schedules []schedule.Schedule, colored bool) string {
	var b strings.Builder
	for i, s := range schedules {
		fmt.Fprintf(&b, "\n=== Schedule %d (cost %.2f) ===\n", i+1, s.Cost)
		b.WriteString(Render(s, colored))
	}
	return b.String()
}

// timeSpan finds the earliest start and latest end across all scheduled
// meetings. timed is false when every meeting is online/asynchronous.
func timeSpan(sections []course.Section) (earliest, latest course.Clock, timed bool) {
	for _, s := range sections {
		for _, m := range s.Meetings {
			if !m.Scheduled() {
				continue
			}
			if !timed || m.Start < earliest {
				earliest = m.Start
			}
			if !timed || m.End > latest {
				latest = m.End
			}
			timed = true
		}
	}
	return earliest, latest, timed
}
