package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a date expression relative to now and returns midnight of
// that day in now's location.
// Supports: "today"/"vandaag", "yesterday"/"gisteren", "tomorrow"/"morgen",
// weekday names in English or Dutch (most recent occurrence, today included),
// "2025-06-16", "16-6-2025", "16 juni", "16 juni 2025", "jun 16", "jun 16 2025".
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	today := truncateToDay(now)

	switch s {
	case "", "today", "vandaag":
		return today, nil
	case "yesterday", "gisteren":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow", "morgen":
		return today.AddDate(0, 0, 1), nil
	}

	if wd, ok := parseWeekday(s); ok {
		return previousWeekday(today, wd), nil
	}

	if t, ok := parseDutchDayMonth(s, now); ok {
		return t, nil
	}

	layouts := []string{
		"2006-01-02",
		"2-1-2006",
		"02-01-2006",
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
	}
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseWeekday(s string) (time.Weekday, bool) {
	for i, name := range dutchWeekdays {
		if s == name {
			return time.Weekday(i), true
		}
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s == strings.ToLower(d.String()) {
			return d, true
		}
	}
	return 0, false
}

// previousWeekday returns the most recent day on or before today that falls on wd.
func previousWeekday(today time.Time, wd time.Weekday) time.Time {
	back := int(today.Weekday()) - int(wd)
	if back < 0 {
		back += 7
	}
	return today.AddDate(0, 0, -back)
}

// parseDutchDayMonth handles "16 juni" and "16 juni 2025". Month names may be
// abbreviated to their first three letters.
func parseDutchDayMonth(s string, now time.Time) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 && len(fields) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, false
	}

	month := time.Month(0)
	for i, name := range dutchMonths {
		if fields[1] == name || (len(fields[1]) == 3 && strings.HasPrefix(name, fields[1])) {
			month = time.Month(i + 1)
			break
		}
	}
	if month == 0 {
		return time.Time{}, false
	}

	year := now.Year()
	if len(fields) == 3 {
		year, err = strconv.Atoi(fields[2])
		if err != nil {
			return time.Time{}, false
		}
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}
