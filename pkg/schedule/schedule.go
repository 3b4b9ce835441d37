package schedule

import "github.com/iterary/plastron/pkg/course"

// Schedule is a complete, conflict-free combination: one section per course,
// in course order. Immutable once emitted by the search.
type Schedule struct {
	Cost             float64          `json:"cost"`
	TotalGapMinutes  int              `json:"total_gap_minutes"`
	DaysWithMeetings int              `json:"num_days_with_meetings"`
	Sections         []course.Section `json:"sections"`
}
