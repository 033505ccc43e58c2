package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	Days  = 6  // Monday through Saturday
	Hours = 10 // Fixed daily periods, numbered from 1
)

var (
	DayNames         = [Days]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	DayAbbreviations = [Days]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// TimeSlot is one cell of the weekly grid. Day 0 is Monday and Hour is 1-based
type TimeSlot struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

func (slot TimeSlot) Valid() bool {
	return slot.Day >= 0 && slot.Day < Days && slot.Hour >= 1 && slot.Hour <= Hours
}

func (slot TimeSlot) String() string {
	if slot.Day < 0 || slot.Day >= Days {
		return fmt.Sprintf("?%d-%d", slot.Day, slot.Hour)
	}
	return fmt.Sprintf("%v-%d", DayAbbreviations[slot.Day], slot.Hour)
}

// SlotOption is the set of cells occupied by one way of taking a course. Order is preserved and
// duplicates are kept as they were entered
type SlotOption []TimeSlot

// Checks whether any slot of option collides with any slot of other
func (option SlotOption) ConflictsWith(other SlotOption) bool {
	return lo.SomeBy(option, func(slot TimeSlot) bool {
		return lo.SomeBy(other, func(otherSlot TimeSlot) bool {
			return Conflicts(slot, otherSlot)
		})
	})
}

// Returns a copy of option without repeated (day, hour) pairs, keeping first occurrences
func (option SlotOption) Dedupe() SlotOption {
	return lo.Uniq(option)
}

func (option SlotOption) String() string {
	return strings.Join(lo.Map(option, func(slot TimeSlot, _ int) string { return slot.String() }), " ")
}

// Course is a named unit of which exactly one option must be chosen when it takes part in generation
type Course struct {
	ID      string       `json:"id"`
	Code    string       `json:"code"`
	Title   string       `json:"title"`
	Options []SlotOption `json:"options"`
}

// Assignment records which option of a course was picked in a timetable
type Assignment struct {
	Course Course     `json:"course"`
	Chosen SlotOption `json:"chosen"`
}

// Timetable holds exactly one assignment per searched course and no two assignments share a slot
type Timetable []Assignment

type SearchResult struct {
	Timetables []Timetable `json:"timetables"`
	Partial    bool        `json:"partial"`  // The search was cut by a budget or a cancelled context
	Explored   uint64      `json:"explored"` // Number of options tested against the accumulated assignments
}
