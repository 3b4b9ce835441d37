package schedule

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/iterary/plastron/pkg/course"
	"github.com/iterary/plastron/pkg/soc"
)

// MaxCourses bounds a single generation request; beyond this the cross
// product gets unreasonable for an interactive service.
const MaxCourses = 10

// SectionSource supplies the raw scraped sections for a course. Implemented
// by soc.Client; tests substitute a stub.
type SectionSource interface {
	FetchSections(courseID string) ([]soc.RawSection, error)
}

// Generator ties hydration and search together for one request: it fetches
// and filters every course's sections, then runs the engine over them.
type Generator struct {
	Courses []*course.Course

	source   SectionSource
	filters  course.Filters
	engine   *Engine
	hydrated bool
}

// NewGenerator prepares a generator for the given course IDs.
func NewGenerator(source SectionSource, courseIDs []string, filters course.Filters, params Params) *Generator {
	g := &Generator{
		source:  source,
		filters: filters,
		engine:  NewEngine(params),
	}
	for _, id := range courseIDs {
		g.Courses = append(g.Courses, course.New(id))
	}
	return g
}

// Hydrate fetches and filters sections for every course, one task per
// course. All tasks are joined before returning; if any course fails the
// whole request fails, since a search over partially hydrated courses would
// rank schedules against the wrong candidate pool.
func (g *Generator) Hydrate() error {
	var eg errgroup.Group

	for _, c := range g.Courses {
		c := c
		eg.Go(func() error {
			raws, err := g.source.FetchSections(c.CourseID)
			if err != nil {
				return fmt.Errorf("failed to hydrate course %s: %w", c.CourseID, err)
			}
			c.Hydrate(raws, g.filters)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	g.hydrated = true
	return nil
}

// Generate returns the top schedules for the hydrated courses, hydrating
// first if the caller has not.
func (g *Generator) Generate(top int) ([]Schedule, error) {
	if top < 1 {
		return nil, fmt.Errorf("top must be a positive integer, got %d", top)
	}
	if len(g.Courses) > MaxCourses {
		return nil, fmt.Errorf("maximum of %d courses allowed", MaxCourses)
	}

	if !g.hydrated {
		if err := g.Hydrate(); err != nil {
			return nil, err
		}
	}

	return g.engine.Search(g.Courses, top), nil
}

// CourseIDs returns the generator's course IDs in request order.
func (g *Generator) CourseIDs() []string {
	ids := make([]string, len(g.Courses))
	for i, c := range g.Courses {
		ids[i] = c.CourseID
	}
	return ids
}

// EmptyCourses lists hydrated courses left with zero candidate sections,
// for diagnostics when a search comes back empty.
func (g *Generator) EmptyCourses() []string {
	var empty []string
	for _, c := range g.Courses {
		if len(c.Sections) == 0 {
			empty = append(empty, c.CourseID)
		}
	}
	return empty
}
