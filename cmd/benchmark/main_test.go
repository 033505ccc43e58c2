package main

import (
	"testing"

	"github.com/limaJavier/coursetable/pkg/catalog"
	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/limaJavier/coursetable/pkg/planner"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("00:01:01.12"))
	assert.Equal(t, int64(60*60*1000+60*1000+1000+120), parseDuration("01:01:01.12"))
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("1:01.12"))
	assert.Equal(t, int64(120), parseDuration("0:00.12"))
	assert.Equal(t, int64(120), parseDuration("00:00:00.12"))
}

func TestParseTimeLines(t *testing.T) {
	assert.Equal(t, float32(2), parseMemoryLine("\tMaximum resident set size (kbytes): 2048"))
	assert.Equal(t, int64(99), parseCpuPercentageLine("\tPercent of CPU this job got: 99%"))
	assert.Equal(t, int64(1500), parseDurationLine("\tElapsed (wall clock) time (h:mm:ss or m:ss): 0:01.50"))
}

func TestGeneratePlan(t *testing.T) {
	//** Arrange
	instance := InstanceMetadata{Courses: 5, OptionsPerCourse: 4, SlotsPerOption: 3, Seed: 42}

	//** Act
	plan := generatePlan(instance)
	workspace := planner.NewWorkspace(zap.NewNop())
	courses, err := plan.Apply(workspace, catalog.Catalog{})

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, plan, generatePlan(instance))
	require.Len(t, courses, instance.Courses)
	for _, course := range courses {
		require.Len(t, course.Options, instance.OptionsPerCourse)
		for _, option := range course.Options {
			assert.Len(t, option, instance.SlotsPerOption)
			assert.Len(t, lo.Uniq(option), instance.SlotsPerOption)
			assert.True(t, lo.EveryBy(option, model.TimeSlot.Valid))
		}
	}
}
