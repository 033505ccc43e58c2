package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() model.SearchResult {
	courses := []model.Course{
		{ID: "1", Code: "CS F407", Title: "Artificial Intelligence", Options: []model.SlotOption{
			model.ParseDayHourGroups("thu-6 7, fri-8"),
			model.ParseDayHourGroups("mon-1 2"),
		}},
		{ID: "2", Code: "CS F211", Title: "Data Structures", Options: []model.SlotOption{
			model.ParseDaysHours("M W F 2"),
			model.ParseDaysHours("T TH 6"),
		}},
	}
	return model.NewBacktrackingGenerator().Generate(context.Background(), courses)
}

func TestViews(t *testing.T) {
	//** Arrange
	result := sampleResult()

	//** Act
	view := Views(result)

	//** Assert
	require.Len(t, view.Timetables, 2)
	first := view.Timetables[0]
	require.Len(t, first.Assignments, 2)
	assert.Equal(t, AssignmentView{
		CourseID: "1",
		Code:     "CS F407",
		Title:    "Artificial Intelligence",
		Slots:    model.SlotOption{{Day: 3, Hour: 6}, {Day: 3, Hour: 7}, {Day: 4, Hour: 8}},
		Summary:  "Thu-6 7, Fri-8",
	}, first.Assignments[0])
	require.Len(t, first.Grid, model.Hours)
	for _, row := range first.Grid {
		assert.Len(t, row, model.Days)
	}
	assert.Equal(t, "CS F407", first.Grid[5][3].Code)
	assert.Equal(t, "CS F211", first.Grid[1][0].Code)
	assert.Nil(t, first.Grid[0][0])
}

func TestWorkbook(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Arrange
		result := sampleResult()
		result.Partial = true

		//** Act
		buffer, err := Workbook(result)
		require.NoError(t, err)

		//** Assert
		f, err := excelize.OpenReader(bytes.NewReader(buffer.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Summary", "Timetable 1", "Timetable 2"}, f.GetSheetList())

		value, _ := f.GetCellValue("Timetable 1", "B1")
		assert.Equal(t, "Monday", value)
		value, _ = f.GetCellValue("Timetable 1", "E7") // Thursday, hour 6
		assert.Equal(t, "CS F407\nArtificial Intelligence", value)
		value, _ = f.GetCellValue("Timetable 2", "B2") // Monday, hour 1
		assert.Equal(t, "CS F407\nArtificial Intelligence", value)
		value, _ = f.GetCellValue("Timetable 2", "B3")
		assert.Equal(t, "CS F407\nArtificial Intelligence", value)
		value, _ = f.GetCellValue("Timetable 2", "C7") // Tuesday, hour 6
		assert.Equal(t, "CS F211\nData Structures", value)

		rows, err := f.GetRows("Summary")
		require.NoError(t, err)
		assert.Equal(t, []string{"Timetable", "Code", "Title", "Slots"}, rows[0])
		assert.Equal(t, []string{"1", "CS F211", "Data Structures", "Mon-2, Wed-2, Fri-2"}, rows[2])
		assert.Equal(t, []string{"2", "CS F407", "Artificial Intelligence", "Mon-1 2"}, rows[3])
		assert.Contains(t, rows[len(rows)-1][0], "stopped early")
	})

	t.Run("Empty result", func(t *testing.T) {
		_, err := Workbook(model.SearchResult{})
		assert.True(t, errors.Is(err, ErrNoTimetables))
	})
}
