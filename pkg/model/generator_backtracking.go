package model

import (
	"context"
	"sync/atomic"
)

type backtrackingGenerator struct {
	config generatorConfig
}

func NewBacktrackingGenerator(options ...GeneratorOption) Generator {
	return &backtrackingGenerator{
		config: newGeneratorConfig(options),
	}
}

func (generator *backtrackingGenerator) Generate(ctx context.Context, courses []Course) SearchResult {
	if len(courses) == 0 {
		return SearchResult{Timetables: []Timetable{}}
	} else if ctx.Err() != nil {
		return SearchResult{Timetables: []Timetable{}, Partial: true}
	}

	search := newSearch(ctx, courses, generator.config, &atomic.Uint64{})
	search.combinations(0, make([]Assignment, 0, len(courses)))
	return search.result()
}

func (generator *backtrackingGenerator) Verify(timetable Timetable) bool {
	return verify(timetable)
}
