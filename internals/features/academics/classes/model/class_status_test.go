package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	start := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		cancelled bool
		want      string
	}{
		{"before start", start.Add(-time.Hour), false, StatusUpcoming},
		{"exactly at start", start, false, StatusActive},
		{"mid window", start.AddDate(0, 1, 0), false, StatusActive},
		{"exactly at end", end, false, StatusActive},
		{"after end", end.Add(time.Hour), false, StatusCompleted},
		{"cancelled wins over upcoming", start.Add(-time.Hour), true, StatusCancelled},
		{"cancelled wins over active", start.AddDate(0, 1, 0), true, StatusCancelled},
		{"cancelled wins over completed", end.AddDate(0, 1, 0), true, StatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.now, start, end, tt.cancelled))
		})
	}
}

func TestClassModelStatus(t *testing.T) {
	m := ClassModel{
		ClassStartDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		ClassEndDate:   time.Date(2026, 4, 24, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, StatusActive, m.Status(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))

	m.ClassIsCancelled = true
	assert.Equal(t, StatusCancelled, m.Status(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
}
