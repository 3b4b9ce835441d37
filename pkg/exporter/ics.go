package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/iterary/plastron/pkg/course"
	"github.com/iterary/plastron/pkg/schedule"
)

var weekdays = map[string]time.Weekday{
	"M":  time.Monday,
	"Tu": time.Tuesday,
	"W":  time.Wednesday,
	"Th": time.Thursday,
	"F":  time.Friday,
	"Sa": time.Saturday,
	"Su": time.Sunday,
}

// GenerateICS writes a schedule as an ICS calendar of weekly recurring
// events, one per meeting, anchored on each meeting's next occurrence.
// Online meetings have no time slot and are skipped.
func GenerateICS(s schedule.Schedule, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// Timezone location for campus
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}
	now := time.Now().In(loc)

	eventID := 0
	for _, section := range s.Sections {
		for _, m := range section.Meetings {
			if !m.Scheduled() {
				continue
			}

			day, ok := weekdays[m.Day]
			if !ok {
				continue // Skip malformed day codes
			}

			start := nextOccurrence(now, day, m.Start, loc)
			end := start.Add(time.Duration(m.End-m.Start) * time.Minute)

			eventID++
			event := cal.AddEvent(fmt.Sprintf("%s-%d@plastron", start.Format("20060102T150405"), eventID))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.AddRrule("FREQ=WEEKLY")
			event.SetSummary(section.SectionID)
			event.SetLocation(fmt.Sprintf("%s %s", m.Building, m.Room))

			description := fmt.Sprintf("Course: %s\nSeats: %s/%s", section.CourseID, section.Raw.OpenSeats, section.Raw.Seats)
			if len(section.Raw.Instructors) > 0 {
				description += "\nInstructors: " + strings.Join(section.Raw.Instructors, ", ")
			}
			event.SetDescription(description)
		}
	}

	return cal.SerializeTo(w)
}

// nextOccurrence finds the first date on or after now that falls on day,
// at the given time of day.
func nextOccurrence(now time.Time, day time.Weekday, at course.Clock, loc *time.Location) time.Time {
	daysAhead := (int(day) - int(now.Weekday()) + 7) % 7
	date := now.AddDate(0, 0, daysAhead)
	return time.Date(date.Year(), date.Month(), date.Day(), int(at)/60, int(at)%60, 0, 0, loc)
}
