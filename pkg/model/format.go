package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type dayHours struct {
	day   int
	hours []int
}

// Groups the hours of option by day, scanning days in weekly order and sorting hours within a day
func groupByDay(option SlotOption) []dayHours {
	groups := make([]dayHours, 0, Days)
	for day := range Days {
		hours := lo.FilterMap(option, func(slot TimeSlot, _ int) (int, bool) {
			return slot.Hour, slot.Day == day
		})
		if len(hours) == 0 {
			continue
		}
		slices.Sort(hours)
		groups = append(groups, dayHours{day: day, hours: hours})
	}
	return groups
}

// Formats option as a human readable summary, e.g. "Mon-1 2, Wed-5"
func FormatOption(option SlotOption) string {
	return strings.Join(lo.Map(groupByDay(option), func(group dayHours, _ int) string {
		hours := lo.Map(group.hours, func(hour int, _ int) string { return fmt.Sprint(hour) })
		return fmt.Sprintf("%v-%v", DayAbbreviations[group.day], strings.Join(hours, " "))
	}), ", ")
}
