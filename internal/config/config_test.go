package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		//** Arrange
		t.Chdir(t.TempDir())

		//** Act
		cfg, err := Load("")

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, 10, cfg.Search.Cap)
		assert.Zero(t, cfg.Search.NodeBudget)
		assert.Equal(t, 10*time.Second, cfg.Search.Timeout)
		assert.False(t, cfg.Search.Parallel)
		assert.Equal(t, LogConfig{Level: "info", Format: "json"}, cfg.Log)
	})

	t.Run("File and environment", func(t *testing.T) {
		//** Arrange
		path := writeConfig(t, `
server:
  port: 9090
catalog:
  path: testdata/catalog.json
search:
  cap: 5
  node_budget: 1000
  timeout: 2s
log:
  format: console
`)
		t.Setenv("TIMETABLE_SEARCH_PARALLEL", "true")
		t.Setenv("TIMETABLE_LOG_LEVEL", "debug")

		//** Act
		cfg, err := Load(path)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "testdata/catalog.json", cfg.Catalog.Path)
		assert.Equal(t, SearchConfig{Cap: 5, NodeBudget: 1000, Timeout: 2 * time.Second, Parallel: true}, cfg.Search)
		assert.Equal(t, LogConfig{Level: "debug", Format: "console"}, cfg.Log)
	})

	t.Run("Error flow", func(t *testing.T) {
		scenarios := map[string]string{
			"port out of range": "server:\n  port: 70000\n",
			"zero cap":          "search:\n  cap: 0\n",
			"negative timeout":  "search:\n  timeout: -1s\n",
			"malformed yaml":    "search: [",
		}

		for scenario, content := range scenarios {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err, scenario)
		}

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestSearchConfig(t *testing.T) {
	courses := []model.Course{
		{Code: "A", Options: []model.SlotOption{{{Day: 0, Hour: 1}}, {{Day: 0, Hour: 2}}, {{Day: 0, Hour: 3}}}},
		{Code: "B", Options: []model.SlotOption{{{Day: 1, Hour: 1}}, {{Day: 1, Hour: 2}}}},
	}

	t.Run("Generator honours cap", func(t *testing.T) {
		for _, parallel := range []bool{false, true} {
			//** Arrange
			generator := SearchConfig{Cap: 4, Parallel: parallel}.Generator()

			//** Act
			result := generator.Generate(context.Background(), courses)

			//** Assert
			assert.Len(t, result.Timetables, 4)
			assert.False(t, result.Partial)
		}
	})

	t.Run("Expired deadline yields partial result", func(t *testing.T) {
		//** Arrange
		search := SearchConfig{Cap: 10, Timeout: time.Nanosecond}
		ctx, cancel := search.Context(context.Background())
		defer cancel()
		<-ctx.Done()

		//** Act
		result := search.Generator().Generate(ctx, courses)

		//** Assert
		assert.True(t, result.Partial)
		assert.Empty(t, result.Timetables)
	})

	t.Run("Context deadline", func(t *testing.T) {
		ctx, cancel := SearchConfig{Timeout: time.Minute}.Context(context.Background())
		defer cancel()
		_, ok := ctx.Deadline()
		assert.True(t, ok)

		ctx, cancel = SearchConfig{}.Context(context.Background())
		_, ok = ctx.Deadline()
		assert.False(t, ok)
		cancel()
		assert.Error(t, ctx.Err())
	})
}
