package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Arrange
		a := newCourse("A", SlotOption{{Day: 3, Hour: 6}, {Day: 3, Hour: 7}, {Day: 4, Hour: 8}})
		b := newCourse("B", SlotOption{{Day: 0, Hour: 1}, {Day: 5, Hour: 10}})
		timetable := Timetable{{Course: a, Chosen: a.Options[0]}, {Course: b, Chosen: b.Options[0]}}

		//** Act
		grid := Project(timetable)

		//** Assert
		assert.Equal(t, &Cell{Code: "A", Title: "Title of A"}, grid.At(3, 6))
		assert.Equal(t, &Cell{Code: "A", Title: "Title of A"}, grid[6][3])
		assert.Equal(t, &Cell{Code: "B", Title: "Title of B"}, grid.At(5, 10))
		occupied := 0
		for hour := 1; hour <= Hours; hour++ {
			for day := range Days {
				if grid.At(day, hour) != nil {
					occupied++
				}
			}
		}
		assert.Equal(t, 5, occupied)
		assert.Nil(t, grid.At(6, 1))
		assert.Nil(t, grid.At(0, 0))
		assert.Nil(t, grid.At(0, 11))
	})

	t.Run("Repeated slot within an option", func(t *testing.T) {
		a := newCourse("A", SlotOption{{Day: 1, Hour: 1}, {Day: 1, Hour: 1}})

		assert.NotPanics(t, func() {
			grid := Project(Timetable{{Course: a, Chosen: a.Options[0]}})
			assert.Equal(t, "A", grid.At(1, 1).Code)
		})
	})

	t.Run("Panic flow", func(t *testing.T) {
		a := newCourse("A", SlotOption{{Day: 1, Hour: 1}})
		b := newCourse("B", SlotOption{{Day: 2, Hour: 2}, {Day: 1, Hour: 1}})
		scenarios := []Timetable{
			{{Course: a, Chosen: a.Options[0]}, {Course: b, Chosen: b.Options[0]}},
			{{Course: a, Chosen: SlotOption{{Day: 6, Hour: 1}}}},
			{{Course: a, Chosen: SlotOption{{Day: 0, Hour: 0}}}},
		}

		for _, timetable := range scenarios {
			assert.Panics(t, func() {
				Project(timetable)
			})
		}
	})
}

func TestFormatOption(t *testing.T) {
	scenarios := map[string]SlotOption{
		"Mon-1 2, Wed-5":      {{Day: 2, Hour: 5}, {Day: 0, Hour: 2}, {Day: 0, Hour: 1}},
		"Thu-6 7, Fri-8":      ParseDayHourGroups("thu-6 7, fri-8"),
		"Mon-2, Wed-2":        ParseDaysHours("M W 2"),
		"Tue-3 3":             {{Day: 1, Hour: 3}, {Day: 1, Hour: 3}},
		"Fri-2 10, Sat-1 4 9": {{Day: 5, Hour: 9}, {Day: 4, Hour: 10}, {Day: 5, Hour: 1}, {Day: 4, Hour: 2}, {Day: 5, Hour: 4}},
		"":                    {},
	}

	for expected, option := range scenarios {
		assert.Equal(t, expected, FormatOption(option))
	}
}
