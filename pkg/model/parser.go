package model

import (
	"strconv"
	"strings"
)

var dayIndices = map[string]int{
	"mon": 0, "monday": 0, "m": 0,
	"tue": 1, "tu": 1, "tuesday": 1, "t": 1,
	"wed": 2, "wednesday": 2, "w": 2,
	"thu": 3, "th": 3, "thursday": 3,
	"fri": 4, "friday": 4, "f": 4,
	"sat": 5, "saturday": 5, "s": 5,
}

// Returns the day index of a day name, abbreviation or letter (case-insensitive)
func DayIndex(token string) (int, bool) {
	day, ok := dayIndices[strings.ToLower(token)]
	return day, ok
}

func parseHour(token string) (int, bool) {
	hour, err := strconv.Atoi(token)
	if err != nil || hour < 1 || hour > Hours {
		return 0, false
	}
	return hour, true
}

// Parses free-text entries such as "thu-6 7, fri-8" or "tu-6 wed-7 thu-8".
//
// The text is split on commas into groups and every group on whitespace into tokens. A "day-hour" token
// sets the group's current day and emits a slot, a bare hour emits a slot on the current day and a bare
// day only sets the current day. The current day does not carry over to the next group.
// Unrecognized tokens are skipped, so malformed text yields fewer slots rather than an error
func ParseDayHourGroups(text string) SlotOption {
	option := SlotOption{}
	for _, group := range strings.Split(strings.ToLower(text), ",") {
		currentDay, hasDay := 0, false
		for _, token := range strings.Fields(group) {
			if dayStr, hourStr, found := strings.Cut(token, "-"); found {
				currentDay, hasDay = DayIndex(dayStr)
				if !hasDay {
					continue
				}
				if hour, ok := parseHour(hourStr); ok {
					option = append(option, TimeSlot{Day: currentDay, Hour: hour})
				}
			} else if hour, ok := parseHour(token); ok {
				if hasDay {
					option = append(option, TimeSlot{Day: currentDay, Hour: hour})
				}
			} else if day, ok := DayIndex(token); ok {
				currentDay, hasDay = day, true
			}
		}
	}
	return option
}

// Parses catalog timings such as "M W 2", "T TH 2" or "M 2 3".
//
// Day tokens accumulate and every hour emits one slot for each day seen so far, in the order the days
// appeared. Unrecognized tokens are skipped
func ParseDaysHours(text string) SlotOption {
	option := SlotOption{}
	days := make([]int, 0, Days)
	for _, token := range strings.Fields(text) {
		if day, ok := DayIndex(token); ok {
			days = append(days, day)
		} else if hour, ok := parseHour(token); ok {
			for _, day := range days {
				option = append(option, TimeSlot{Day: day, Hour: hour})
			}
		}
	}
	return option
}
