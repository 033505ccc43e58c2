package planner

import (
	"fmt"

	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/samber/lo"
)

// Draft is a course being entered by hand. Options are added either as free text or by picking cells of
// the weekly grid
type Draft struct {
	Code    string
	Title   string
	options []model.SlotOption
	cells   []model.TimeSlot
}

// Parses text with model.ParseDayHourGroups and adds it as an option. Text that yields no slot is
// ignored and false is returned
func (draft *Draft) AddSlotText(text string) bool {
	option := model.ParseDayHourGroups(text)
	if len(option) == 0 {
		return false
	}
	draft.options = append(draft.options, option)
	return true
}

// Picks or unpicks a grid cell and returns whether it is picked afterwards. Cells outside the grid are
// never picked
func (draft *Draft) ToggleCell(day, hour int) bool {
	cell := model.TimeSlot{Day: day, Hour: hour}
	if !cell.Valid() {
		return false
	}

	if lo.Contains(draft.cells, cell) {
		draft.cells = lo.Without(draft.cells, cell)
		return false
	}
	draft.cells = append(draft.cells, cell)
	return true
}

func (draft *Draft) Cells() []model.TimeSlot {
	return append([]model.TimeSlot{}, draft.cells...)
}

func (draft *Draft) ClearCells() {
	draft.cells = nil
}

// Adds the picked cells, in picking order, as an option and clears the picking
func (draft *Draft) CommitCells() bool {
	if len(draft.cells) == 0 {
		return false
	}
	draft.options = append(draft.options, model.SlotOption(draft.cells))
	draft.cells = nil
	return true
}

func (draft *Draft) RemoveOption(index int) error {
	if index < 0 || index >= len(draft.options) {
		return fmt.Errorf("option %d does not exist", index)
	}
	draft.options = append(draft.options[:index], draft.options[index+1:]...)
	return nil
}

func (draft *Draft) Options() []model.SlotOption {
	return append([]model.SlotOption{}, draft.options...)
}

func (draft *Draft) Reset() {
	*draft = Draft{}
}

// Adds the drafted course to workspace and resets the draft. On error the draft is left untouched
func (draft *Draft) Submit(workspace *Workspace) (model.Course, error) {
	course, err := workspace.AddCourse(draft.Code, draft.Title, draft.options)
	if err != nil {
		return model.Course{}, err
	}
	draft.Reset()
	return course, nil
}
