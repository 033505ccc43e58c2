package model

import (
	"context"
	"sync/atomic"
)

// Context cancellation is polled once every contextPollInterval explored options
const contextPollInterval = 256

// search holds the state of one depth-first traversal over courses. Branches of a parallel search each
// own a search but share the explored counter, so the node budget bounds the whole traversal
type search struct {
	ctx        context.Context
	courses    []Course
	limit      int
	nodeBudget uint64
	explored   *atomic.Uint64
	partial    bool
	timetables []Timetable
}

func newSearch(ctx context.Context, courses []Course, config generatorConfig, explored *atomic.Uint64) *search {
	return &search{
		ctx:        ctx,
		courses:    courses,
		limit:      config.limit,
		nodeBudget: config.nodeBudget,
		explored:   explored,
		timetables: make([]Timetable, 0, config.limit),
	}
}

func (s *search) done() bool {
	return s.partial || len(s.timetables) >= s.limit
}

// Reserves one node of the budget. Returns false (and flags the search as partial) if the budget is
// exhausted or the context is done
func (s *search) visit() bool {
	explored := s.explored.Add(1)
	if s.nodeBudget > 0 && explored > s.nodeBudget {
		s.explored.Add(^uint64(0)) // The node was not explored after all
		s.partial = true
		return false
	}
	if explored%contextPollInterval == 0 && s.ctx.Err() != nil {
		s.partial = true
		return false
	}
	return true
}

// Decides the course at index given the options already chosen for the previous courses.
// accumulated must have capacity for every course: its backing array is reused across sibling branches
// and only copied once a timetable is complete
func (s *search) combinations(index int, accumulated []Assignment) {
	if index == len(s.courses) {
		timetable := make(Timetable, len(accumulated))
		copy(timetable, accumulated)
		s.timetables = append(s.timetables, timetable)
		return
	}

	course := s.courses[index]
	for _, option := range course.Options {
		if s.done() || !s.visit() {
			return
		}

		// One colliding slot invalidates the whole option for this branch
		if conflictsWithAssignments(option, accumulated) {
			continue
		}

		s.combinations(index+1, append(accumulated, Assignment{Course: course, Chosen: option}))
	}
}

func (s *search) result() SearchResult {
	return SearchResult{
		Timetables: s.timetables,
		Partial:    s.partial,
		Explored:   s.explored.Load(),
	}
}
