package catalog

import (
	"fmt"
	"strings"

	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/samber/lo"
)

// Mode decides how selected sections become course options
type Mode string

const (
	// Every selected section is an option of its own
	Separate Mode = "separate"
	// One selected section of every block is taken together; options are the product across blocks
	Combined Mode = "combined"
)

func ParseMode(mode string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(mode))) {
	case "", Separate:
		return Separate, nil
	case Combined:
		return Combined, nil
	default:
		return "", fmt.Errorf("unknown section mode \"%v\"", mode)
	}
}

// Identifies a section within its offering, e.g. "L1" or "T3"
func SectionKey(stat string, section Section) string {
	return strings.ToUpper(stat + section.Sec)
}

type selectedSection struct {
	block   int
	section Section
}

func (offering Offering) selectSections(keys []string) ([]selectedSection, error) {
	if len(keys) == 0 {
		return nil, ErrNoSections
	}

	selected := make([]selectedSection, 0, len(keys))
	for _, key := range lo.Uniq(lo.Map(keys, func(key string, _ int) string { return strings.ToUpper(strings.TrimSpace(key)) })) {
		found := false
		for i, block := range offering.Blocks {
			section, ok := lo.Find(block.Sections, func(section Section) bool {
				return SectionKey(block.Stat, section) == key
			})
			if ok {
				selected = append(selected, selectedSection{block: i, section: section})
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: \"%v\" in %v", ErrUnknownSection, key, offering.CourseNo)
		}
	}
	return selected, nil
}

// Builds a course from the sections identified by keys, parsing their timings with model.ParseDaysHours
func (offering Offering) ToCourse(mode Mode, keys ...string) (model.Course, error) {
	selected, err := offering.selectSections(keys)
	if err != nil {
		return model.Course{}, err
	}

	// Sections whose timing has no valid slot (e.g. "TBA") cannot be scheduled
	selected = lo.Filter(selected, func(choice selectedSection, _ int) bool {
		return len(model.ParseDaysHours(choice.section.DaysHr)) > 0
	})
	if len(selected) == 0 {
		return model.Course{}, fmt.Errorf("%w: %v", ErrNoTimings, offering.CourseNo)
	}

	var options []model.SlotOption
	if mode == Combined {
		options = combine(selected, len(offering.Blocks))
	} else {
		options = lo.Map(selected, func(choice selectedSection, _ int) model.SlotOption {
			return model.ParseDaysHours(choice.section.DaysHr)
		})
	}

	return model.Course{
		Code:    offering.CourseNo,
		Title:   offering.CourseTitle,
		Options: options,
	}, nil
}

// Returns one option per way of picking a selected section from every block that has any, enumerated with
// earlier blocks varying slowest
func combine(selected []selectedSection, blocks int) []model.SlotOption {
	perBlock := make([][]model.SlotOption, blocks)
	for _, choice := range selected {
		perBlock[choice.block] = append(perBlock[choice.block], model.ParseDaysHours(choice.section.DaysHr))
	}

	options := []model.SlotOption{{}}
	for _, blockOptions := range perBlock {
		if len(blockOptions) == 0 {
			continue
		}
		options = lo.FlatMap(options, func(prefix model.SlotOption, _ int) []model.SlotOption {
			return lo.Map(blockOptions, func(option model.SlotOption, _ int) model.SlotOption {
				return append(append(model.SlotOption{}, prefix...), option...)
			})
		})
	}
	return options
}
