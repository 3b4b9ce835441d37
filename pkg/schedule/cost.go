package schedule

import (
	"math"
	"sort"

	"github.com/iterary/plastron/pkg/course"
)

// Params holds the cost-model and pruning constants. Every search receives
// its own copy, so concurrent searches with different tuning can coexist.
type Params struct {
	// GapMultiplier, GapMidpoint and GapRange shape the bell-curve penalty
	// added on top of a raw gap: mid-length gaps (~50 minutes) are too
	// short to leave campus but too long to be idle, so they cost extra.
	GapMultiplier float64 `json:"gap_multiplier"`
	GapMidpoint   float64 `json:"gap_midpoint"`
	GapRange      float64 `json:"gap_range"`
	// GapExponent compresses sensitivity to very large gaps.
	GapExponent float64 `json:"gap_exponent"`
	// DayWeight is the fixed cost per distinct day with meetings.
	DayWeight float64 `json:"day_weight"`
	// PruneSlack is the branch-and-bound margin: branches costing more
	// than the best complete schedule plus this slack are discarded. An
	// empirically chosen heuristic, not a proven admissible bound.
	PruneSlack float64 `json:"prune_slack"`
}

// DefaultParams returns the stock tuning constants.
func DefaultParams() Params {
	return Params{
		GapMultiplier: 30,
		GapMidpoint:   50,
		GapRange:      15,
		GapExponent:   0.75,
		DayWeight:     15,
		PruneSlack:    60,
	}
}

// AdjustedGap penalizes less usable gaps: a 45-minute gap is too short to do
// anything between classes, but still a long time to wait.
func (p Params) AdjustedGap(gap float64) float64 {
	penalty := p.GapMultiplier * math.Exp(
		-((gap-p.GapMidpoint)*(gap-p.GapMidpoint))/(2*p.GapRange*p.GapRange))

	return gap + penalty
}

// Stats summarizes a weighed path.
type Stats struct {
	TotalGapMinutes  int `json:"total_gap_minutes"`
	DaysWithMeetings int `json:"num_days_with_meetings"`
}

type interval struct {
	start, end course.Clock
}

// Weigh computes the total weight of the path after adding candidate, plus
// summary stats. Returns ok=false when the candidate's meetings overlap the
// path on any day; meetings that merely touch (one ends when the next
// starts) do not conflict.
//
// The per-day interval lists are rebuilt from scratch on every call. That is
// fine at the scale involved (at most ten courses, tens of sections each)
// and keeps the numeric results independent of evaluation history.
func (p Params) Weigh(path []course.Section, candidate course.Section) (float64, Stats, bool) {
	dayMeetings := make(map[string][]interval)

	collect := func(s course.Section) {
		for _, m := range s.Meetings {
			if !m.Scheduled() {
				continue // online meetings constrain nothing
			}
			dayMeetings[m.Day] = append(dayMeetings[m.Day], interval{m.Start, m.End})
		}
	}
	for _, s := range path {
		collect(s)
	}
	collect(candidate)

	var cost float64
	stats := Stats{}

	// Fixed day order keeps float accumulation deterministic
	for _, day := range course.Weekdays {
		meetings := dayMeetings[day]
		if len(meetings) == 0 {
			continue
		}
		stats.DaysWithMeetings++

		sort.Slice(meetings, func(i, j int) bool {
			if meetings[i].start != meetings[j].start {
				return meetings[i].start < meetings[j].start
			}
			return meetings[i].end < meetings[j].end
		})

		for i := 0; i < len(meetings)-1; i++ {
			if meetings[i].end > meetings[i+1].start {
				return math.Inf(1), Stats{}, false
			}

			gap := int(meetings[i+1].start - meetings[i].end)
			if gap > 0 {
				stats.TotalGapMinutes += gap
				cost += math.Pow(p.AdjustedGap(float64(gap)), p.GapExponent)
			}
		}
	}

	cost += float64(stats.DaysWithMeetings) * p.DayWeight

	return cost, stats, true
}
