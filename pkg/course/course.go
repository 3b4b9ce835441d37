package course

import (
	"strings"

	"github.com/samber/lo"

	"github.com/iterary/plastron/pkg/soc"
)

// Course is a required course with its candidate sections, in search order.
type Course struct {
	CourseID string    `json:"course_id"`
	Sections []Section `json:"sections"`
}

// New creates a Course with no sections yet.
func New(courseID string) *Course {
	return &Course{CourseID: strings.ToUpper(courseID)}
}

// Hydrate filters the scraped sections and installs the survivors as the
// course's candidates. The filtered list is reversed: scanning candidates
// from the end of the listing favors later-in-day sections on cost ties.
func (c *Course) Hydrate(raws []soc.RawSection, filters Filters) {
	sections := lo.Map(filters.Apply(raws), func(raw soc.RawSection, _ int) Section {
		return NewSection(c.CourseID, raw)
	})
	c.Sections = lo.Reverse(sections)
}
