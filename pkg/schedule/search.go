package schedule

import (
	"container/heap"
	"sort"
	"strconv"
	"strings"

	"github.com/iterary/plastron/pkg/course"
)

// state is one node of the search: a partial schedule covering the first
// next courses, with the full weight of its sections. seq is a monotonically
// increasing counter assigned at creation; it breaks ties when two states
// carry exactly the same floating-point cost, so pop order never depends on
// container internals.
type state struct {
	cost  float64
	seq   int
	path  []course.Section
	next  int
	stats Stats
}

// frontier is a min-heap of states ordered by (cost, seq).
type frontier []*state

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*state)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	st := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return st
}

// Engine runs best-first schedule searches with a fixed set of cost
// parameters. Each Search call owns its frontier and visited set, so a
// single Engine may serve concurrent searches.
type Engine struct {
	params Params
}

// NewEngine creates a search engine with the given cost parameters.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Params returns the engine's cost parameters.
func (e *Engine) Params() Params {
	return e.params
}

// Search explores the course-by-course cross product of sections best-first
// and returns up to top complete conflict-free schedules, ascending by cost,
// ties broken by completion order.
//
// A course with no candidate sections is never reachable past its index, so
// the search drains naturally with zero results; that is not an error.
func (e *Engine) Search(courses []*course.Course, top int) []Schedule {
	if len(courses) == 0 || top < 1 {
		return nil
	}

	front := frontier{&state{}}
	heap.Init(&front)

	seq := 0
	visited := make(map[string]bool)

	type completion struct {
		order    int
		schedule Schedule
	}
	var complete []completion
	bestComplete := -1 // index into complete, -1 until the first completion

	for front.Len() > 0 {
		st := heap.Pop(&front).(*state)

		if st.next == len(courses) {
			complete = append(complete, completion{
				order: len(complete),
				schedule: Schedule{
					Cost:             st.cost,
					TotalGapMinutes:  st.stats.TotalGapMinutes,
					DaysWithMeetings: st.stats.DaysWithMeetings,
					Sections:         st.path,
				},
			})
			if bestComplete < 0 || st.cost < complete[bestComplete].schedule.Cost {
				bestComplete = len(complete) - 1
			}
			continue
		}

		for _, section := range courses[st.next].Sections {
			cost, stats, ok := e.params.Weigh(st.path, section)
			if !ok {
				continue // conflict
			}
			if bestComplete >= 0 && cost > complete[bestComplete].schedule.Cost+e.params.PruneSlack {
				continue // cannot improve on known completions within the slack
			}

			newPath := make([]course.Section, len(st.path)+1)
			copy(newPath, st.path)
			newPath[len(st.path)] = section

			key := stateKey(st.next+1, newPath)
			if visited[key] {
				continue
			}
			visited[key] = true

			seq++
			heap.Push(&front, &state{
				cost:  cost,
				seq:   seq,
				path:  newPath,
				next:  st.next + 1,
				stats: stats,
			})
		}
	}

	sort.SliceStable(complete, func(i, j int) bool {
		if complete[i].schedule.Cost != complete[j].schedule.Cost {
			return complete[i].schedule.Cost < complete[j].schedule.Cost
		}
		return complete[i].order < complete[j].order
	})

	if top > len(complete) {
		top = len(complete)
	}
	results := make([]Schedule, 0, top)
	for _, c := range complete[:top] {
		results = append(results, c.schedule)
	}
	return results
}

// stateKey identifies a search state by its depth and the ordered section
// IDs chosen so far, for visited-state deduplication.
func stateKey(next int, path []course.Section) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(next))
	for _, s := range path {
		b.WriteByte('|')
		b.WriteString(s.SectionID)
	}
	return b.String()
}
