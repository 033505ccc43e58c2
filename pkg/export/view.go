package export

import (
	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/samber/lo"
)

type AssignmentView struct {
	CourseID string           `json:"course_id"`
	Code     string           `json:"code"`
	Title    string           `json:"title"`
	Slots    model.SlotOption `json:"slots"`
	Summary  string           `json:"summary"`
}

type TimetableView struct {
	Assignments []AssignmentView `json:"assignments"`
	Grid        [][]*model.Cell  `json:"grid"` // Rows are hours 1..10, columns are Monday..Saturday
}

type ResultView struct {
	Timetables []TimetableView `json:"timetables"`
	Partial    bool            `json:"partial"`
	Explored   uint64          `json:"explored"`
}

func View(timetable model.Timetable) TimetableView {
	grid := model.Project(timetable)
	return TimetableView{
		Assignments: lo.Map(timetable, func(assignment model.Assignment, _ int) AssignmentView {
			return AssignmentView{
				CourseID: assignment.Course.ID,
				Code:     assignment.Course.Code,
				Title:    assignment.Course.Title,
				Slots:    assignment.Chosen,
				Summary:  model.FormatOption(assignment.Chosen),
			}
		}),
		Grid: lo.Map(grid[:], func(row [model.Days]*model.Cell, _ int) []*model.Cell {
			return row[:]
		}),
	}
}

func Views(result model.SearchResult) ResultView {
	return ResultView{
		Timetables: lo.Map(result.Timetables, func(timetable model.Timetable, _ int) TimetableView { return View(timetable) }),
		Partial:    result.Partial,
		Explored:   result.Explored,
	}
}
