package course

import (
	"fmt"
	"strings"
	"time"

	"github.com/iterary/plastron/pkg/soc"
)

// Weekdays lists the day codes used by the SOC, in calendar order.
// Scanning day-by-day in this order keeps cost accumulation deterministic.
var Weekdays = []string{"M", "Tu", "W", "Th", "F", "Sa", "Su"}

// Clock is a time of day expressed as minutes past midnight.
type Clock int

// ParseClock converts an SOC time string like "11:00am" into a Clock.
// The second return value is false for empty strings (online/asynchronous
// meetings have no times).
func ParseClock(s string) (Clock, bool) {
	if s == "" {
		return 0, false
	}
	t, err := time.Parse("3:04pm", strings.ToLower(s))
	if err != nil {
		return 0, false
	}
	return Clock(t.Hour()*60 + t.Minute()), true
}

// String formats the clock back into the SOC's 12-hour style, e.g. "11:00AM".
func (c Clock) String() string {
	h := int(c) / 60
	m := int(c) % 60
	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d%s", h, m, suffix)
}

// ExpandDays splits a compact day code like "MWF" or "TuTh" into individual
// day codes. A capital letter starts a new code.
func ExpandDays(days string) []string {
	var out []string
	for _, r := range days {
		if r >= 'A' && r <= 'Z' {
			out = append(out, string(r))
		} else if len(out) > 0 {
			out[len(out)-1] += string(r)
		}
	}
	return out
}

// Meeting is a single weekly occurrence of a section on one day. Multi-day
// codes are expanded before construction, so Day always holds one code.
type Meeting struct {
	Day      string `json:"day"`
	Start    Clock  `json:"start"`
	End      Clock  `json:"end"`
	Building string `json:"building"`
	Room     string `json:"room"`
	Type     string `json:"classtype,omitempty"`
}

// Scheduled reports whether the meeting occupies calendar time. Online and
// asynchronous meetings carry no times and constrain nothing.
func (m Meeting) Scheduled() bool {
	return m.End > m.Start
}

func (m Meeting) String() string {
	if !m.Scheduled() {
		return fmt.Sprintf("%s ONLINE", m.Day)
	}
	return fmt.Sprintf("%s %s - %s %s%s", m.Day, m.Start, m.End, m.Building, m.Room)
}

// Section is one offered instance of a course. Seat and instructor data is
// carried through for presentation but never inspected by the search.
type Section struct {
	CourseID  string         `json:"course_id"`
	SectionID string         `json:"section_id"`
	Meetings  []Meeting      `json:"meetings"`
	Raw       soc.RawSection `json:"raw"`
}

// NewSection builds a Section from scraped data, expanding compact day codes
// into one Meeting per day.
func NewSection(courseID string, raw soc.RawSection) Section {
	s := Section{
		CourseID:  courseID,
		SectionID: raw.SectionID,
		Raw:       raw,
	}
	for _, rm := range raw.Meetings {
		start, _ := ParseClock(rm.StartTime)
		end, _ := ParseClock(rm.EndTime)
		for _, day := range ExpandDays(rm.Days) {
			s.Meetings = append(s.Meetings, Meeting{
				Day:      day,
				Start:    start,
				End:      end,
				Building: rm.Building,
				Room:     rm.Room,
				Type:     rm.ClassType,
			})
		}
	}
	return s
}
