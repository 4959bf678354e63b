package calendar

import (
	"fmt"
	"time"
)

var dutchWeekdays = [...]string{
	"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag",
}

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// WeekdayNL returns the Dutch name of the weekday, lower-case.
func WeekdayNL(d time.Weekday) string {
	return dutchWeekdays[d]
}

// MonthNL returns the Dutch name of the month, lower-case.
func MonthNL(m time.Month) string {
	return dutchMonths[m-1]
}

// FormatDayNL formats t as e.g. "maandag 16 juni".
func FormatDayNL(t time.Time) string {
	return fmt.Sprintf("%s %d %s", WeekdayNL(t.Weekday()), t.Day(), MonthNL(t.Month()))
}

// FormatDateNL formats t as e.g. "maandag 16 juni 2025".
func FormatDateNL(t time.Time) string {
	return fmt.Sprintf("%s %d", FormatDayNL(t), t.Year())
}
