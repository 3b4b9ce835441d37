package course

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/iterary/plastron/pkg/soc"
)

// RuleKind enumerates the section filters the system knows about. Filters
// are a closed set: settings that name anything else are rejected at decode
// time instead of silently matching everything.
type RuleKind int

const (
	// ExcludeSectionCode drops sections whose ID contains a program code
	// such as "ESG" or "FC".
	ExcludeSectionCode RuleKind = iota
	// RequireOpenSeats drops sections with zero open seats.
	RequireOpenSeats
	// EarliestStart drops sections with any meeting starting before a
	// time of day.
	EarliestStart
	// LatestEnd drops sections with any meeting ending after a time of day.
	LatestEnd
	// AvoidInstructors drops sections taught by any listed instructor.
	AvoidInstructors
	// MaxWaitlist drops sections whose waitlist exceeds a limit.
	MaxWaitlist
	// ExcludeDays drops sections with any meeting on a listed day.
	ExcludeDays
)

// Rule is one filter with its typed parameter. Only the field matching Kind
// is meaningful.
type Rule struct {
	Kind        RuleKind
	Code        string
	Clock       Clock
	Instructors []string
	Limit       int
	Days        []string
}

// Allows reports whether the section passes this rule.
func (r Rule) Allows(s soc.RawSection) bool {
	switch r.Kind {
	case ExcludeSectionCode:
		return !strings.Contains(s.SectionID, r.Code)
	case RequireOpenSeats:
		return s.OpenSeats != "0"
	case EarliestStart:
		for _, m := range s.Meetings {
			if start, ok := ParseClock(m.StartTime); ok && start < r.Clock {
				return false
			}
		}
		return true
	case LatestEnd:
		for _, m := range s.Meetings {
			if end, ok := ParseClock(m.EndTime); ok && end > r.Clock {
				return false
			}
		}
		return true
	case AvoidInstructors:
		for _, avoid := range r.Instructors {
			if lo.Contains(s.Instructors, avoid) {
				return false
			}
		}
		return true
	case MaxWaitlist:
		waitlist, err := strconv.Atoi(s.Waitlist)
		if err != nil {
			waitlist = 0 // No waitlist shown means nobody is waiting
		}
		return waitlist <= r.Limit
	case ExcludeDays:
		for _, m := range s.Meetings {
			for _, day := range ExpandDays(m.Days) {
				if lo.Contains(r.Days, day) {
					return false
				}
			}
		}
		return true
	}
	return true
}

// Filters holds the user-facing filter settings. The zero value disables
// everything; DefaultFilters matches the defaults the service has always
// shipped with.
type Filters struct {
	NoESG            bool     `json:"no_esg" mapstructure:"no_esg"`
	NoFC             bool     `json:"no_fc" mapstructure:"no_fc"`
	OpenSeats        bool     `json:"open_seats" mapstructure:"open_seats"`
	EarliestStart    string   `json:"earliest_start" mapstructure:"earliest_start"`
	LatestEnd        string   `json:"latest_end" mapstructure:"latest_end"`
	AvoidInstructors []string `json:"avoid_instructors,omitempty" mapstructure:"avoid_instructors"`
	MaxWaitlist      *int     `json:"max_waitlist,omitempty" mapstructure:"max_waitlist"`
	ExcludeDays      []string `json:"exclude_days,omitempty" mapstructure:"exclude_days"`
}

// DefaultFilters returns the stock filter settings.
func DefaultFilters() Filters {
	return Filters{
		NoESG:         true,
		NoFC:          true,
		OpenSeats:     true,
		EarliestStart: "7:30am",
		LatestEnd:     "6:30pm",
	}
}

// DecodeFilters merges loosely-typed overrides (e.g. a JSON filters object)
// onto the defaults. Unrecognized keys are an error rather than a silently
// ignored filter.
func DecodeFilters(overrides map[string]any) (Filters, error) {
	filters := DefaultFilters()
	if len(overrides) == 0 {
		return filters, nil
	}

	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &filters,
		Metadata:         &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return filters, err
	}
	if err := decoder.Decode(overrides); err != nil {
		return filters, fmt.Errorf("failed to decode filters: %w", err)
	}
	if len(md.Unused) > 0 {
		return filters, fmt.Errorf("unknown filter keys: %s", strings.Join(md.Unused, ", "))
	}

	for _, clock := range []string{filters.EarliestStart, filters.LatestEnd} {
		if _, ok := ParseClock(clock); clock != "" && !ok {
			return filters, fmt.Errorf("invalid filter time %q", clock)
		}
	}

	return filters, nil
}

// Rules expands the settings into the concrete rule list.
func (f Filters) Rules() []Rule {
	var rules []Rule

	if f.NoESG {
		rules = append(rules, Rule{Kind: ExcludeSectionCode, Code: "ESG"})
	}
	if f.NoFC {
		rules = append(rules, Rule{Kind: ExcludeSectionCode, Code: "FC"})
	}
	if f.OpenSeats {
		rules = append(rules, Rule{Kind: RequireOpenSeats})
	}
	if clock, ok := ParseClock(f.EarliestStart); ok {
		rules = append(rules, Rule{Kind: EarliestStart, Clock: clock})
	}
	if clock, ok := ParseClock(f.LatestEnd); ok {
		rules = append(rules, Rule{Kind: LatestEnd, Clock: clock})
	}
	if len(f.AvoidInstructors) > 0 {
		rules = append(rules, Rule{Kind: AvoidInstructors, Instructors: f.AvoidInstructors})
	}
	if f.MaxWaitlist != nil {
		rules = append(rules, Rule{Kind: MaxWaitlist, Limit: *f.MaxWaitlist})
	}
	if len(f.ExcludeDays) > 0 {
		rules = append(rules, Rule{Kind: ExcludeDays, Days: f.ExcludeDays})
	}

	return rules
}

// Apply filters raw sections down to the ones passing every rule.
func (f Filters) Apply(raws []soc.RawSection) []soc.RawSection {
	rules := f.Rules()
	return lo.Filter(raws, func(s soc.RawSection, _ int) bool {
		for _, rule := range rules {
			if !rule.Allows(s) {
				return false
			}
		}
		return true
	})
}
