package config

import (
	"context"

	"github.com/limaJavier/coursetable/pkg/model"
)

// Builds the timetable generator these settings describe
func (c SearchConfig) Generator() model.Generator {
	options := []model.GeneratorOption{model.WithCap(c.Cap), model.WithNodeBudget(c.NodeBudget)}
	if c.Parallel {
		return model.NewParallelGenerator(options...)
	}
	return model.NewBacktrackingGenerator(options...)
}

// Derives the context a search runs under, bounded by Timeout when it is set
func (c SearchConfig) Context(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(parent, c.Timeout)
	}
	return context.WithCancel(parent)
}
