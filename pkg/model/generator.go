package model

import "context"

// Maximum number of timetables a search returns unless configured otherwise
const MaxTimetables = 10

type Generator interface {
	// Returns the first timetables (in depth-first, left-to-right order) that pick one option per course
	// without collisions. It never fails: no courses, no valid combination or an exhausted budget all
	// yield a (possibly empty) result, the latter flagged as partial
	Generate(ctx context.Context, courses []Course) SearchResult

	// Checks whether no two assignments of timetable share a slot
	Verify(timetable Timetable) bool
}

type GeneratorOption func(config *generatorConfig)

type generatorConfig struct {
	limit      int
	nodeBudget uint64 // Zero means unlimited
}

// Sets the maximum number of timetables returned. Non-positive values keep the default
func WithCap(limit int) GeneratorOption {
	return func(config *generatorConfig) {
		if limit > 0 {
			config.limit = limit
		}
	}
}

// Bounds the number of options the search may test before it gives up and reports a partial result
func WithNodeBudget(nodes uint64) GeneratorOption {
	return func(config *generatorConfig) {
		config.nodeBudget = nodes
	}
}

func newGeneratorConfig(options []GeneratorOption) generatorConfig {
	config := generatorConfig{limit: MaxTimetables}
	for _, option := range options {
		option(&config)
	}
	return config
}

func verify(timetable Timetable) bool {
	for i := range len(timetable) - 1 {
		for j := i + 1; j < len(timetable); j++ {
			if timetable[i].Chosen.ConflictsWith(timetable[j].Chosen) {
				return false
			}
		}
	}
	return true
}
