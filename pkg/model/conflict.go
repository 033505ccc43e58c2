package model

import "github.com/samber/lo"

// Checks whether two slots occupy the same cell of the weekly grid
func Conflicts(a, b TimeSlot) bool {
	return a.Day == b.Day && a.Hour == b.Hour
}

// Checks whether option collides with any option already chosen in accumulated
func conflictsWithAssignments(option SlotOption, accumulated []Assignment) bool {
	return lo.SomeBy(accumulated, func(assignment Assignment) bool {
		return option.ConflictsWith(assignment.Chosen)
	})
}
