package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDayHourGroups(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		scenarios := map[string]SlotOption{
			"thu-6 7, fri-8":      {{Day: 3, Hour: 6}, {Day: 3, Hour: 7}, {Day: 4, Hour: 8}},
			"tu-6 wed-7 thu-8":    {{Day: 1, Hour: 6}, {Day: 2, Hour: 7}, {Day: 3, Hour: 8}},
			"mon-1 2, wed-5":      {{Day: 0, Hour: 1}, {Day: 0, Hour: 2}, {Day: 2, Hour: 5}},
			"MON-1 Saturday-10":   {{Day: 0, Hour: 1}, {Day: 5, Hour: 10}},
			"  th-3   4 ,  s-9  ": {{Day: 3, Hour: 3}, {Day: 3, Hour: 4}, {Day: 5, Hour: 9}},
			"w 3 4":               {{Day: 2, Hour: 3}, {Day: 2, Hour: 4}},
			"mon-1 1":             {{Day: 0, Hour: 1}, {Day: 0, Hour: 1}},
		}

		for text, expected := range scenarios {
			//** Act
			option := ParseDayHourGroups(text)

			//** Assert
			assert.Equal(t, expected, option, text)
		}
	})

	t.Run("Current day resets at every group", func(t *testing.T) {
		//** Act
		option := ParseDayHourGroups("thu-6, 7, fri-8 9")

		//** Assert
		assert.Equal(t, SlotOption{{Day: 3, Hour: 6}, {Day: 4, Hour: 8}, {Day: 4, Hour: 9}}, option)
	})

	t.Run("Malformed input degrades", func(t *testing.T) {
		scenarios := map[string]SlotOption{
			"":                  {},
			"   ,, ":            {},
			"hello world":       {},
			"3 4 mon-2":         {{Day: 0, Hour: 2}},
			"sun-3 4":           {},
			"mon-1 xyz-2 3":     {{Day: 0, Hour: 1}},
			"mon-0 11 12 2":     {{Day: 0, Hour: 2}},
			"fri-x 5":           {{Day: 4, Hour: 5}},
			"mon-2abc 3":        {{Day: 0, Hour: 3}},
			"tue-1 -4 wed-2":    {{Day: 1, Hour: 1}, {Day: 2, Hour: 2}},
			"mon-1-2 3, tue 4x": {{Day: 0, Hour: 3}},
		}

		for text, expected := range scenarios {
			//** Act
			option := ParseDayHourGroups(text)

			//** Assert
			assert.Equal(t, expected, option, text)
		}
	})
}

func TestParseDaysHours(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		scenarios := map[string]SlotOption{
			"M W 2":     {{Day: 0, Hour: 2}, {Day: 2, Hour: 2}},
			"T TH 2":    {{Day: 1, Hour: 2}, {Day: 3, Hour: 2}},
			"F 2":       {{Day: 4, Hour: 2}},
			"M 2 3":     {{Day: 0, Hour: 2}, {Day: 0, Hour: 3}},
			"M W F 9":   {{Day: 0, Hour: 9}, {Day: 2, Hour: 9}, {Day: 4, Hour: 9}},
			"M 2 W 3":   {{Day: 0, Hour: 2}, {Day: 0, Hour: 3}, {Day: 2, Hour: 3}},
			"s 10":      {{Day: 5, Hour: 10}},
			"  tu   4 ": {{Day: 1, Hour: 4}},
		}

		for text, expected := range scenarios {
			//** Act
			option := ParseDaysHours(text)

			//** Assert
			assert.Equal(t, expected, option, text)
		}
	})

	t.Run("Malformed input degrades", func(t *testing.T) {
		scenarios := map[string]SlotOption{
			"":        {},
			"2 3":     {},
			"M W":     {},
			"M x 2":   {{Day: 0, Hour: 2}},
			"M 0 11":  {},
			"M-2 W 4": {{Day: 2, Hour: 4}},
		}

		for text, expected := range scenarios {
			//** Act
			option := ParseDaysHours(text)

			//** Assert
			assert.Equal(t, expected, option, text)
		}
	})
}

func TestDayIndex(t *testing.T) {
	expected := map[int][]string{
		0: {"mon", "monday", "m", "MON", "Monday", "M"},
		1: {"tue", "tu", "tuesday", "t", "T", "Tu"},
		2: {"wed", "wednesday", "w", "W"},
		3: {"thu", "th", "thursday", "TH"},
		4: {"fri", "friday", "f", "F"},
		5: {"sat", "saturday", "s", "S"},
	}

	for day, tokens := range expected {
		for _, token := range tokens {
			index, ok := DayIndex(token)
			assert.True(t, ok, token)
			assert.Equal(t, day, index, token)
		}
	}

	for _, token := range []string{"", "sun", "sunday", "x", "1", "mo-"} {
		_, ok := DayIndex(token)
		assert.False(t, ok, token)
	}
}
