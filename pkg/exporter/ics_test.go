package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iterary/plastron/pkg/course"
	"github.com/iterary/plastron/pkg/schedule"
	"github.com/iterary/plastron/pkg/soc"
)

func TestGenerateICS(t *testing.T) {
	s := schedule.Schedule{
		Cost:             25,
		TotalGapMinutes:  10,
		DaysWithMeetings: 1,
		Sections: []course.Section{
			{
				CourseID:  "INST314",
				SectionID: "INST314-0101",
				Meetings: []course.Meeting{
					{Day: "M", Start: 660, End: 710, Building: "HJP", Room: "0226"},
					{Day: "W", Start: 660, End: 710, Building: "HJP", Room: "0226"},
				},
				Raw: soc.RawSection{
					Seats:       "44",
					OpenSeats:   "37",
					Instructors: []string{"Samantha Kemper"},
				},
			},
		},
	}

	var buf bytes.Buffer
	err := GenerateICS(s, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:INST314-0101") {
		t.Errorf("Expected ICS to contain section summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:HJP 0226") {
		t.Errorf("Expected ICS to contain room location")
	}

	if !strings.Contains(output, "RRULE:FREQ=WEEKLY") {
		t.Errorf("Expected weekly recurrence rule in ICS, got: \n%s", output)
	}

	// One event per weekday meeting
	if got := strings.Count(output, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("Expected 2 events, got %d", got)
	}
}

func TestGenerateICS_SkipsOnlineMeetings(t *testing.T) {
	s := schedule.Schedule{
		Sections: []course.Section{
			{
				CourseID:  "INST314",
				SectionID: "INST314-ESG1",
				Meetings:  []course.Meeting{{Day: "", Start: 0, End: 0, Room: "ONLINE"}},
			},
		},
	}

	var buf bytes.Buffer
	if err := GenerateICS(s, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("Expected no events for an online-only schedule, got: \n%s", buf.String())
	}
}
