package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"sunday stays put", date(2026, 3, 1), date(2026, 3, 1)},
		{"monday rolls back one day", date(2026, 3, 2), date(2026, 3, 1)},
		{"saturday rolls back six days", date(2026, 3, 7), date(2026, 3, 1)},
		{"time of day is dropped", time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC), date(2026, 3, 1)},
		{"crosses a month boundary", date(2026, 4, 2), date(2026, 3, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestSessionDate(t *testing.T) {
	weekStart := date(2026, 3, 1) // a Sunday

	assert.Equal(t, date(2026, 3, 1), SessionDate(weekStart, 0))
	assert.Equal(t, date(2026, 3, 3), SessionDate(weekStart, 2))
	assert.Equal(t, date(2026, 3, 7), SessionDate(weekStart, 6))
}

func TestWeekNumber(t *testing.T) {
	termStart := date(2026, 1, 12) // a Monday; its week opens Sunday Jan 11

	tests := []struct {
		name    string
		session time.Time
		want    int
	}{
		{"same day as term start", date(2026, 1, 12), 1},
		{"sunday opening the first week", date(2026, 1, 11), 1},
		{"last day of the first week", date(2026, 1, 17), 1},
		{"first day of the second week", date(2026, 1, 18), 2},
		{"a month in", date(2026, 2, 11), 5},
		{"before the term", date(2026, 1, 4), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekNumber(termStart, tt.session))
		})
	}
}
