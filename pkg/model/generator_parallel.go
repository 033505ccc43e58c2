package model

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

type parallelGenerator struct {
	config generatorConfig
}

// Returns a generator that explores every option of the first course on its own goroutine. Branch results
// are merged in option order before the cap is applied, so the output matches the sequential generator
func NewParallelGenerator(options ...GeneratorOption) Generator {
	return &parallelGenerator{
		config: newGeneratorConfig(options),
	}
}

func (generator *parallelGenerator) Generate(ctx context.Context, courses []Course) SearchResult {
	if len(courses) == 0 {
		return SearchResult{Timetables: []Timetable{}}
	} else if ctx.Err() != nil {
		return SearchResult{Timetables: []Timetable{}, Partial: true}
	}

	first := courses[0]
	explored := &atomic.Uint64{}
	branches := make([]*search, len(first.Options))

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, option := range first.Options {
		branch := newSearch(ctx, courses, generator.config, explored)
		branches[i] = branch

		group.Go(func() error {
			if !branch.visit() {
				return nil
			}
			accumulated := make([]Assignment, 1, len(courses))
			accumulated[0] = Assignment{Course: first, Chosen: option}
			branch.combinations(1, accumulated)
			return nil
		})
	}
	group.Wait() // Branches never fail

	return mergeBranches(branches, generator.config.limit, explored.Load())
}

func (generator *parallelGenerator) Verify(timetable Timetable) bool {
	return verify(timetable)
}

// Concatenates branch results in branch order and truncates them to limit. Merging stops at the first
// partial branch that is needed to reach limit, since timetables of later branches would skip the ones
// that branch never found
func mergeBranches(branches []*search, limit int, explored uint64) SearchResult {
	result := SearchResult{
		Timetables: make([]Timetable, 0, limit),
		Explored:   explored,
	}

	for _, branch := range branches {
		for _, timetable := range branch.timetables {
			if len(result.Timetables) == limit {
				return result
			}
			result.Timetables = append(result.Timetables, timetable)
		}

		if len(result.Timetables) < limit && branch.partial {
			result.Partial = true
			return result
		}
	}
	return result
}
