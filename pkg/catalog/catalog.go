package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no courses")
	ErrUnknownCourse  = errors.New("course is not offered in the catalog")
	ErrUnknownSection = errors.New("section is not offered for the course")
	ErrNoSections     = errors.New("at least one section must be selected")
	ErrNoTimings      = errors.New("none of the selected sections has a valid timing")
)

type Section struct {
	Sec         string   `mapstructure:"sec" json:"sec"`
	Instructors []string `mapstructure:"instructor" json:"instructors"`
	Room        string   `mapstructure:"room" json:"room,omitempty"`
	DaysHr      string   `mapstructure:"days_hr" json:"days_hr"`
}

// Record is one entry of the raw catalog: the sections of a course that share a kind (lecture, tutorial...)
type Record struct {
	CourseNo    string    `mapstructure:"course_no"`
	CourseTitle string    `mapstructure:"course_title"`
	Stat        string    `mapstructure:"stat"`
	Sections    []Section `mapstructure:"sections"`
}

type Block struct {
	Stat     string    `json:"stat"`
	Sections []Section `json:"sections"`
}

// Offering gathers every record of a course number and title
type Offering struct {
	CourseNo    string  `json:"course_no"`
	CourseTitle string  `json:"course_title"`
	Blocks      []Block `json:"sections"`
}

type Catalog struct {
	offerings []Offering
}

// Reads a catalog from a JSON or YAML file (chosen by extension) shaped as {"courses": [Record...]}
func Load(path string) (Catalog, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("cannot read catalog: %w", err)
	}

	var document map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &document)
	default:
		err = json.Unmarshal(bytes, &document)
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("cannot parse catalog %v: %w", path, err)
	}

	return Decode(document)
}

// Decodes an already unmarshalled catalog document. Input is weakly typed so numeric section numbers and
// single instructors are accepted
func Decode(document map[string]any) (Catalog, error) {
	var raw struct {
		Courses []Record `mapstructure:"courses"`
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return Catalog{}, err
	}
	if err := decoder.Decode(document); err != nil {
		return Catalog{}, fmt.Errorf("cannot decode catalog: %w", err)
	}
	if len(raw.Courses) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	return FromRecords(raw.Courses), nil
}

// Groups records by course number and title. Offerings keep the order in which they first appear and
// every record becomes a block of its offering
func FromRecords(records []Record) Catalog {
	offerings := make([]Offering, 0)
	indices := make(map[string]int)

	for _, record := range records {
		key := record.CourseNo + "__" + record.CourseTitle
		index, ok := indices[key]
		if !ok {
			index = len(offerings)
			indices[key] = index
			offerings = append(offerings, Offering{
				CourseNo:    record.CourseNo,
				CourseTitle: record.CourseTitle,
				Blocks:      make([]Block, 0),
			})
		}

		offerings[index].Blocks = append(offerings[index].Blocks, Block{
			Stat:     record.Stat,
			Sections: record.Sections,
		})
	}

	return Catalog{offerings: offerings}
}

func (catalog Catalog) Offerings() []Offering {
	return catalog.offerings
}

// Returns the offerings whose course number or title contains query (case-insensitive). A blank query
// matches nothing
func (catalog Catalog) Search(query string) []Offering {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	return lo.Filter(catalog.offerings, func(offering Offering, _ int) bool {
		return strings.Contains(strings.ToLower(offering.CourseNo), query) ||
			strings.Contains(strings.ToLower(offering.CourseTitle), query)
	})
}

// Returns the first offering with the given course number (case-insensitive, surrounding spaces ignored)
func (catalog Catalog) Find(courseNo string) (Offering, bool) {
	courseNo = strings.TrimSpace(courseNo)
	return lo.Find(catalog.offerings, func(offering Offering) bool {
		return strings.EqualFold(offering.CourseNo, courseNo)
	})
}

func StatLabel(stat string) string {
	switch stat {
	case "L":
		return "Lecture"
	case "T":
		return "Tutorial"
	default:
		return "Practical"
	}
}
