package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyOf(t *testing.T) {
	ts := time.Date(2025, 6, 16, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, DayKey{Year: 2025, Month: time.June, Day: 16}, DayKeyOf(ts, time.UTC))
	assert.Equal(t, "2025-06-16", DayKeyOf(ts, time.UTC).String())
}

func TestDayKeyOfUsesLocation(t *testing.T) {
	amsterdam := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2025, 6, 16, 23, 30, 0, 0, time.UTC)

	// 23:30 UTC is already the next day at UTC+2.
	assert.Equal(t, "2025-06-17", DayKeyOf(ts, amsterdam).String())
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 16, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b, time.UTC))
	assert.False(t, SameDay(b, c, time.UTC))
}

func TestDayKeyStart(t *testing.T) {
	k := DayKey{Year: 2025, Month: time.June, Day: 16}
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), k.Start(time.UTC))
}

func TestParseDate(t *testing.T) {
	// Wednesday, January 15, 2025
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "empty means today", input: "", want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "today", input: "today", want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "vandaag", input: "Vandaag", want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "gisteren", input: "gisteren", want: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)},
		{name: "morgen", input: "morgen", want: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)},
		{name: "maandag goes back", input: "maandag", want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{name: "friday goes back a week", input: "friday", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "same weekday is today", input: "woensdag", want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "iso", input: "2024-12-31", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "dutch numeric", input: "3-2-2025", want: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
		{name: "dutch month", input: "16 juni", want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
		{name: "dutch month with year", input: "16 juni 2024", want: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)},
		{name: "dutch abbreviation", input: "2 okt", want: time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)},
		{name: "english month", input: "jun 16", want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
		{name: "invalid day", input: "31 februari", wantErr: true},
		{name: "garbage", input: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNL(t *testing.T) {
	d := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "maandag 16 juni", FormatDayNL(d))
	assert.Equal(t, "maandag 16 juni 2025", FormatDateNL(d))
	assert.Equal(t, "zondag", WeekdayNL(time.Sunday))
	assert.Equal(t, "december", MonthNL(time.December))
}
