package model

import "log"

// Cell is the content of an occupied grid position
type Cell struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Grid is the weekly table of one timetable: rows are hours 1..10 and columns are days 0..5
type Grid [Hours][Days]*Cell

// Returns the cell at day and hour, or nil if the position is free or out of range
func (grid Grid) At(day, hour int) *Cell {
	if !(TimeSlot{Day: day, Hour: hour}).Valid() {
		return nil
	}
	return grid[hour-1][day]
}

// Maps a timetable onto the weekly grid.
// It panics if two assignments claim the same cell, which only happens if the timetable was not produced
// by a Generator. Repeated slots within one option are written once
func Project(timetable Timetable) Grid {
	var grid Grid
	owners := [Hours][Days]int{}

	for i, assignment := range timetable {
		cell := &Cell{Code: assignment.Course.Code, Title: assignment.Course.Title}
		for _, slot := range assignment.Chosen {
			if !slot.Valid() {
				log.Panicf("slot %v of course \"%v\" is outside the weekly grid", slot, assignment.Course.Code)
			}

			row, column := slot.Hour-1, slot.Day
			if owner := owners[row][column]; owner != 0 && owner != i+1 {
				log.Panicf("cell %v is claimed by both \"%v\" and \"%v\"", slot, timetable[owner-1].Course.Code, assignment.Course.Code)
			}
			owners[row][column] = i + 1 // Zero stands for a free cell
			grid[row][column] = cell
		}
	}
	return grid
}
