package schedule

import (
	"errors"
	"strings"
	"testing"

	"github.com/iterary/plastron/pkg/course"
	"github.com/iterary/plastron/pkg/soc"
)

// stubSource serves canned sections per course ID without touching the network.
type stubSource struct {
	sections map[string][]soc.RawSection
	err      error
}

func (s *stubSource) FetchSections(courseID string) ([]soc.RawSection, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sections[courseID], nil
}

func rawSection(id, days, start, end string) soc.RawSection {
	return soc.RawSection{
		SectionID: id,
		OpenSeats: "10",
		Meetings:  []soc.RawMeeting{{Days: days, StartTime: start, EndTime: end}},
	}
}

func TestGeneratorGenerate(t *testing.T) {
	source := &stubSource{sections: map[string][]soc.RawSection{
		"INST314": {rawSection("INST314-0101", "TuTh", "11:00am", "12:15pm")},
		"MATH141": {rawSection("MATH141-0101", "MWF", "9:00am", "9:50am")},
	}}

	gen := NewGenerator(source, []string{"inst314", "math141"}, course.DefaultFilters(), DefaultParams())

	schedules, err := gen.Generate(1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(schedules) != 1 {
		t.Fatalf("Expected 1 schedule, got %d", len(schedules))
	}
	if len(schedules[0].Sections) != 2 {
		t.Errorf("Expected 2 sections, got %d", len(schedules[0].Sections))
	}
	if schedules[0].DaysWithMeetings != 5 {
		t.Errorf("Expected meetings on 5 days, got %d", schedules[0].DaysWithMeetings)
	}
}

func TestGeneratorFetchFailure(t *testing.T) {
	source := &stubSource{err: errors.New("testudo is down")}
	gen := NewGenerator(source, []string{"INST314"}, course.DefaultFilters(), DefaultParams())

	_, err := gen.Generate(1)
	if err == nil {
		t.Fatalf("Expected an error when fetching fails")
	}
	if !strings.Contains(err.Error(), "INST314") {
		t.Errorf("Expected the error to name the course, got: %v", err)
	}
}

func TestGeneratorValidation(t *testing.T) {
	source := &stubSource{}

	gen := NewGenerator(source, []string{"INST314"}, course.DefaultFilters(), DefaultParams())
	if _, err := gen.Generate(0); err == nil {
		t.Errorf("Expected an error for top = 0")
	}

	tooMany := make([]string, MaxCourses+1)
	for i := range tooMany {
		tooMany[i] = "INST314"
	}
	gen = NewGenerator(source, tooMany, course.DefaultFilters(), DefaultParams())
	if _, err := gen.Generate(1); err == nil {
		t.Errorf("Expected an error for more than %d courses", MaxCourses)
	}
}

func TestGeneratorEmptyCourses(t *testing.T) {
	// MATH141's only section is full, so open_seats filters it to nothing.
	full := rawSection("MATH141-0101", "MWF", "9:00am", "9:50am")
	full.OpenSeats = "0"

	source := &stubSource{sections: map[string][]soc.RawSection{
		"INST314": {rawSection("INST314-0101", "TuTh", "11:00am", "12:15pm")},
		"MATH141": {full},
	}}

	gen := NewGenerator(source, []string{"INST314", "MATH141"}, course.DefaultFilters(), DefaultParams())

	schedules, err := gen.Generate(1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(schedules) != 0 {
		t.Fatalf("Expected no schedules, got %d", len(schedules))
	}

	empty := gen.EmptyCourses()
	if len(empty) != 1 || empty[0] != "MATH141" {
		t.Errorf("Expected MATH141 to be reported empty, got %v", empty)
	}
}
