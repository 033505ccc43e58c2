package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrIncompleteCourse = errors.New("a course needs a code, a title and at least one slot option")
	ErrCourseNotFound   = errors.New("course not found")
)

// Workspace holds the courses a user is planning with and which of them take part in generation.
// It is owned by a single caller and is not safe for concurrent use
type Workspace struct {
	courses  []model.Course
	selected map[string]bool
	logger   *zap.Logger
}

func NewWorkspace(logger *zap.Logger) *Workspace {
	return &Workspace{
		courses:  make([]model.Course, 0),
		selected: make(map[string]bool),
		logger:   logger,
	}
}

func newCourseID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func withoutEmptyOptions(options []model.SlotOption) []model.SlotOption {
	return lo.Filter(options, func(option model.SlotOption, _ int) bool { return len(option) > 0 })
}

// Trims and checks the fields of a manual course without storing it
func newManualCourse(code, title string, options []model.SlotOption) (model.Course, error) {
	code, title = strings.TrimSpace(code), strings.TrimSpace(title)
	options = withoutEmptyOptions(options)
	if code == "" || title == "" || len(options) == 0 {
		return model.Course{}, ErrIncompleteCourse
	}
	return model.Course{Code: code, Title: title, Options: options}, nil
}

// Creates a course with a fresh, time-ordered identifier. Empty options are discarded
func (workspace *Workspace) AddCourse(code, title string, options []model.SlotOption) (model.Course, error) {
	course, err := newManualCourse(code, title, options)
	if err != nil {
		return model.Course{}, err
	}
	return workspace.AddCourseValue(course), nil
}

// Stores a course built elsewhere (e.g. from a catalog offering), assigning an identifier if it has none.
// Empty options occupy no cell, so they are discarded; a course left without options is stored but never
// takes part in generation
func (workspace *Workspace) AddCourseValue(course model.Course) model.Course {
	if course.ID == "" {
		course.ID = newCourseID()
	}
	course.Options = lo.Map(withoutEmptyOptions(course.Options), func(option model.SlotOption, _ int) model.SlotOption {
		return append(model.SlotOption{}, option...)
	})

	workspace.courses = append(workspace.courses, course)
	workspace.logger.Debug("course added",
		zap.String("id", course.ID),
		zap.String("code", course.Code),
		zap.Int("options", len(course.Options)),
	)
	return course
}

// Deletes a course and drops it from the selection
func (workspace *Workspace) RemoveCourse(id string) error {
	_, index, ok := lo.FindIndexOf(workspace.courses, func(course model.Course) bool { return course.ID == id })
	if !ok {
		return fmt.Errorf("%w: %v", ErrCourseNotFound, id)
	}

	workspace.courses = append(workspace.courses[:index], workspace.courses[index+1:]...)
	delete(workspace.selected, id)
	return nil
}

func (workspace *Workspace) Course(id string) (model.Course, bool) {
	return lo.Find(workspace.courses, func(course model.Course) bool { return course.ID == id })
}

func (workspace *Workspace) Courses() []model.Course {
	return append([]model.Course{}, workspace.courses...)
}

// Flips whether the course takes part in generation and returns the new state
func (workspace *Workspace) Toggle(id string) (bool, error) {
	if _, ok := workspace.Course(id); !ok {
		return false, fmt.Errorf("%w: %v", ErrCourseNotFound, id)
	}

	if workspace.selected[id] {
		delete(workspace.selected, id)
		return false, nil
	}
	workspace.selected[id] = true
	return true, nil
}

func (workspace *Workspace) Select(id string) error {
	if _, ok := workspace.Course(id); !ok {
		return fmt.Errorf("%w: %v", ErrCourseNotFound, id)
	}
	workspace.selected[id] = true
	return nil
}

func (workspace *Workspace) SelectAll() {
	for _, course := range workspace.courses {
		workspace.selected[course.ID] = true
	}
}

func (workspace *Workspace) DeselectAll() {
	clear(workspace.selected)
}

func (workspace *Workspace) IsSelected(id string) bool {
	return workspace.selected[id]
}

// Returns the selected courses in creation order
func (workspace *Workspace) Selected() []model.Course {
	return lo.Filter(workspace.courses, func(course model.Course, _ int) bool {
		return workspace.selected[course.ID]
	})
}

// Runs generator over a snapshot of the selected courses. Courses without options cannot be scheduled and
// are left out; when nothing remains the generator is not invoked and the result is empty
func (workspace *Workspace) Generate(ctx context.Context, generator model.Generator) model.SearchResult {
	courses, unschedulable := lo.FilterReject(workspace.Selected(), func(course model.Course, _ int) bool {
		return len(course.Options) > 0
	})
	for _, course := range unschedulable {
		workspace.logger.Warn("course without slot options left out of generation", zap.String("code", course.Code))
	}

	if len(courses) == 0 {
		workspace.logger.Info("no selected courses to generate timetables for")
		return model.SearchResult{Timetables: []model.Timetable{}}
	}

	result := generator.Generate(ctx, courses)
	workspace.logger.Info("timetables generated",
		zap.Int("courses", len(courses)),
		zap.Int("timetables", len(result.Timetables)),
		zap.Uint64("explored", result.Explored),
		zap.Bool("partial", result.Partial),
	)
	return result
}
