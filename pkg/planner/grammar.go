package planner

import (
	"fmt"
	"strings"

	"github.com/limaJavier/coursetable/pkg/model"
)

// Grammar names one of the slot description formats
type Grammar string

const (
	// "thu-6 7, fri-8", as typed by hand
	DayHour Grammar = "day-hour"
	// "M W 2", as found in catalog timings
	DaysHours Grammar = "days-hours"
)

func ParseGrammar(grammar string) (Grammar, error) {
	switch Grammar(strings.ToLower(strings.TrimSpace(grammar))) {
	case "", DayHour:
		return DayHour, nil
	case DaysHours:
		return DaysHours, nil
	default:
		return "", fmt.Errorf("unknown slot grammar \"%v\"", grammar)
	}
}

func (grammar Grammar) Parse(text string) model.SlotOption {
	if grammar == DaysHours {
		return model.ParseDaysHours(text)
	}
	return model.ParseDayHourGroups(text)
}
