package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/coursetable/pkg/catalog"
	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrEmptyPlan = errors.New("plan has no courses")

// PlanCourse describes one course of a plan: either entered by hand (code, title and slot texts) or
// picked from the catalog (course number and section keys)
type PlanCourse struct {
	Code     string   `mapstructure:"code" json:"code,omitempty"`
	Title    string   `mapstructure:"title" json:"title,omitempty"`
	Slots    []string `mapstructure:"slots" json:"slots,omitempty"`
	Grammar  string   `mapstructure:"grammar" json:"grammar,omitempty"`
	Catalog  string   `mapstructure:"catalog" json:"catalog,omitempty"`
	Sections []string `mapstructure:"sections" json:"sections,omitempty"`
	Mode     string   `mapstructure:"mode" json:"mode,omitempty"`
	Include  *bool    `mapstructure:"include" json:"include,omitempty"` // Defaults to true
}

// Plan is a declarative list of courses, read from a file by the CLI or received by the HTTP API
type Plan struct {
	Courses []PlanCourse `mapstructure:"courses" json:"courses"`
}

func LoadPlan(path string) (Plan, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("cannot read plan: %w", err)
	}

	var document map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &document)
	default:
		err = json.Unmarshal(bytes, &document)
	}
	if err != nil {
		return Plan{}, fmt.Errorf("cannot parse plan %v: %w", path, err)
	}

	var plan Plan
	if err := mapstructure.Decode(document, &plan); err != nil {
		return Plan{}, fmt.Errorf("cannot decode plan: %w", err)
	}
	return plan, nil
}

func (entry PlanCourse) included() bool {
	return entry.Include == nil || *entry.Include
}

func (entry PlanCourse) course(offerings catalog.Catalog) (model.Course, error) {
	if entry.Catalog == "" {
		grammar, err := ParseGrammar(entry.Grammar)
		if err != nil {
			return model.Course{}, err
		}
		options := lo.Map(entry.Slots, func(text string, _ int) model.SlotOption { return grammar.Parse(text) })
		return model.Course{Code: entry.Code, Title: entry.Title, Options: options}, nil
	}

	offering, ok := offerings.Find(entry.Catalog)
	if !ok {
		return model.Course{}, fmt.Errorf("%w: %v", catalog.ErrUnknownCourse, entry.Catalog)
	}
	mode, err := catalog.ParseMode(entry.Mode)
	if err != nil {
		return model.Course{}, err
	}
	return offering.ToCourse(mode, entry.Sections...)
}

// Adds every course of the plan to workspace and selects the included ones. Returns the added courses
// in plan order. Every entry is checked before any is added, so on error workspace is left unchanged
func (plan Plan) Apply(workspace *Workspace, offerings catalog.Catalog) ([]model.Course, error) {
	if len(plan.Courses) == 0 {
		return nil, ErrEmptyPlan
	}

	courses := make([]model.Course, 0, len(plan.Courses))
	for i, entry := range plan.Courses {
		course, err := entry.course(offerings)
		if err != nil {
			return nil, fmt.Errorf("course %d: %w", i+1, err)
		}

		if entry.Catalog == "" {
			course, err = newManualCourse(course.Code, course.Title, course.Options)
			if err != nil {
				return nil, fmt.Errorf("course %d (%v): %w", i+1, entry.Code, err)
			}
		}
		courses = append(courses, course)
	}

	added := make([]model.Course, 0, len(courses))
	for i, course := range courses {
		course = workspace.AddCourseValue(course)
		if plan.Courses[i].included() {
			workspace.selected[course.ID] = true
		}
		added = append(added, course)
	}
	return added, nil
}
