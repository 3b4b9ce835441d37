package course

import (
	"strings"
	"testing"

	"github.com/iterary/plastron/pkg/soc"
)

// A small slice of a real INST314 listing: a normal section, an ESG section,
// a full section, and an early-morning section.
func testSections() []soc.RawSection {
	return []soc.RawSection{
		{
			SectionID: "INST314-0101", OpenSeats: "12",
			Instructors: []string{"Samantha Kemper"},
			Meetings:    []soc.RawMeeting{{Days: "TuTh", StartTime: "11:00am", EndTime: "12:15pm"}},
		},
		{
			SectionID: "INST314-ESG1", OpenSeats: "5",
			Meetings: []soc.RawMeeting{{Days: "MW", StartTime: "2:00pm", EndTime: "3:15pm"}},
		},
		{
			SectionID: "INST314-0102", OpenSeats: "0", Waitlist: "14",
			Meetings: []soc.RawMeeting{{Days: "TuTh", StartTime: "2:00pm", EndTime: "3:15pm"}},
		},
		{
			SectionID: "INST314-0103", OpenSeats: "8",
			Instructors: []string{"John Smith"},
			Meetings:    []soc.RawMeeting{{Days: "MWF", StartTime: "7:00am", EndTime: "7:50am"}},
		},
	}
}

func TestDefaultFiltersApply(t *testing.T) {
	got := DefaultFilters().Apply(testSections())

	// The ESG section, the full section and the 7:00am section all fall out.
	if len(got) != 1 {
		t.Fatalf("Expected 1 surviving section, got %d", len(got))
	}
	if got[0].SectionID != "INST314-0101" {
		t.Errorf("Expected INST314-0101 to survive, got %s", got[0].SectionID)
	}
}

func TestFiltersAvoidInstructors(t *testing.T) {
	filters := Filters{AvoidInstructors: []string{"John Smith"}}
	got := filters.Apply(testSections())

	for _, s := range got {
		if s.SectionID == "INST314-0103" {
			t.Errorf("Expected John Smith's section to be filtered out")
		}
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 surviving sections, got %d", len(got))
	}
}

func TestFiltersMaxWaitlist(t *testing.T) {
	limit := 5
	filters := Filters{MaxWaitlist: &limit}
	got := filters.Apply(testSections())

	for _, s := range got {
		if s.SectionID == "INST314-0102" {
			t.Errorf("Expected the 14-person waitlist section to be filtered out")
		}
	}
}

func TestFiltersExcludeDays(t *testing.T) {
	filters := Filters{ExcludeDays: []string{"F"}}
	got := filters.Apply(testSections())

	for _, s := range got {
		if s.SectionID == "INST314-0103" {
			t.Errorf("Expected the MWF section to be filtered out")
		}
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 surviving sections, got %d", len(got))
	}
}

func TestDecodeFiltersOverridesDefaults(t *testing.T) {
	filters, err := DecodeFilters(map[string]any{
		"open_seats":     false,
		"earliest_start": "9:00am",
	})
	if err != nil {
		t.Fatalf("DecodeFilters failed: %v", err)
	}

	if filters.OpenSeats {
		t.Errorf("Expected open_seats override to stick")
	}
	if filters.EarliestStart != "9:00am" {
		t.Errorf("Expected earliest_start override, got %q", filters.EarliestStart)
	}
	// Untouched keys keep their defaults
	if !filters.NoESG || filters.LatestEnd != "6:30pm" {
		t.Errorf("Expected untouched defaults to survive, got %+v", filters)
	}
}

func TestDecodeFiltersRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeFilters(map[string]any{"no_early_mornings": true})
	if err == nil {
		t.Fatalf("Expected an error for an unknown filter key")
	}
	if !strings.Contains(err.Error(), "no_early_mornings") {
		t.Errorf("Expected the error to name the unknown key, got: %v", err)
	}
}

func TestDecodeFiltersRejectsBadClock(t *testing.T) {
	_, err := DecodeFilters(map[string]any{"earliest_start": "25:00"})
	if err == nil {
		t.Fatalf("Expected an error for an unparseable time")
	}
}

func TestHydrateReversesSections(t *testing.T) {
	c := New("inst314")
	if c.CourseID != "INST314" {
		t.Fatalf("Expected the course ID to be uppercased, got %s", c.CourseID)
	}

	c.Hydrate(testSections(), Filters{})

	if len(c.Sections) != 4 {
		t.Fatalf("Expected all 4 sections with no filters, got %d", len(c.Sections))
	}
	// Later listings come first so ties favor later-in-day sections
	if c.Sections[0].SectionID != "INST314-0103" || c.Sections[3].SectionID != "INST314-0101" {
		t.Errorf("Expected hydrated sections in reverse listing order, got %s ... %s",
			c.Sections[0].SectionID, c.Sections[3].SectionID)
	}
}
