package schedule

import (
	"math"
	"testing"

	"github.com/iterary/plastron/pkg/course"
)

func TestAdjustedGap(t *testing.T) {
	p := DefaultParams()

	// The bell curve peaks at the midpoint: a 50-minute gap costs the full
	// extra multiplier.
	if got := p.AdjustedGap(50); math.Abs(got-80) > 1e-9 {
		t.Errorf("AdjustedGap(50) = %f, want 80", got)
	}

	if got := p.AdjustedGap(45); math.Abs(got-73.379) > 0.01 {
		t.Errorf("AdjustedGap(45) = %f, want ~73.379", got)
	}

	// Far from the midpoint the penalty vanishes
	if got := p.AdjustedGap(300); math.Abs(got-300) > 0.01 {
		t.Errorf("AdjustedGap(300) = %f, want ~300", got)
	}
}

func meeting(day string, start, end course.Clock) course.Meeting {
	return course.Meeting{Day: day, Start: start, End: end}
}

func section(id string, meetings ...course.Meeting) course.Section {
	return course.Section{SectionID: id, Meetings: meetings}
}

func TestWeighGapAndDays(t *testing.T) {
	p := DefaultParams()

	path := []course.Section{section("A-0101", meeting("M", 600, 660))}
	candidate := section("B-0101", meeting("M", 670, 730))

	cost, stats, ok := p.Weigh(path, candidate)
	if !ok {
		t.Fatalf("Expected no conflict")
	}
	if stats.TotalGapMinutes != 10 {
		t.Errorf("Expected a 10 minute gap, got %d", stats.TotalGapMinutes)
	}
	if stats.DaysWithMeetings != 1 {
		t.Errorf("Expected 1 day with meetings, got %d", stats.DaysWithMeetings)
	}

	want := math.Pow(p.AdjustedGap(10), p.GapExponent) + p.DayWeight
	if math.Abs(cost-want) > 1e-9 {
		t.Errorf("Weigh cost = %f, want %f", cost, want)
	}
}

func TestWeighConflict(t *testing.T) {
	p := DefaultParams()

	path := []course.Section{section("A-0101", meeting("Tu", 600, 675))}
	candidate := section("B-0101", meeting("Tu", 660, 735))

	if _, _, ok := p.Weigh(path, candidate); ok {
		t.Errorf("Expected overlapping meetings to conflict")
	}
}

func TestWeighBackToBackIsNotAConflict(t *testing.T) {
	p := DefaultParams()

	path := []course.Section{section("A-0101", meeting("W", 600, 660))}
	candidate := section("B-0101", meeting("W", 660, 720))

	cost, stats, ok := p.Weigh(path, candidate)
	if !ok {
		t.Fatalf("Expected touching meetings to be allowed")
	}
	if stats.TotalGapMinutes != 0 {
		t.Errorf("Expected no gap, got %d", stats.TotalGapMinutes)
	}
	if math.Abs(cost-p.DayWeight) > 1e-9 {
		t.Errorf("Expected only the day weight, got %f", cost)
	}
}

func TestWeighIgnoresOnlineMeetings(t *testing.T) {
	p := DefaultParams()

	path := []course.Section{section("A-0101", meeting("M", 600, 660))}
	candidate := section("B-ESG1", course.Meeting{Day: ""})

	cost, stats, ok := p.Weigh(path, candidate)
	if !ok {
		t.Fatalf("Expected no conflict with an online section")
	}
	if stats.DaysWithMeetings != 1 || math.Abs(cost-p.DayWeight) > 1e-9 {
		t.Errorf("Expected the online meeting to add nothing, got cost %f stats %+v", cost, stats)
	}
}

func TestWeighSpreadAcrossDays(t *testing.T) {
	p := DefaultParams()

	path := []course.Section{section("A-0101", meeting("M", 600, 660))}
	candidate := section("B-0101", meeting("Th", 600, 660))

	cost, stats, ok := p.Weigh(path, candidate)
	if !ok {
		t.Fatalf("Expected no conflict across days")
	}
	if stats.DaysWithMeetings != 2 || stats.TotalGapMinutes != 0 {
		t.Errorf("Expected 2 gapless days, got %+v", stats)
	}
	if math.Abs(cost-2*p.DayWeight) > 1e-9 {
		t.Errorf("Expected two day weights, got %f", cost)
	}
}
