package model

import "time"

const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DeriveStatus maps the cancellation flag and the date window to the class
// lifecycle status. Boundary instants count as active: startDate ≤ now ≤
// endDate.
func DeriveStatus(now, startDate, endDate time.Time, isCancelled bool) string {
	if isCancelled {
		return StatusCancelled
	}
	if now.Before(startDate) {
		return StatusUpcoming
	}
	if now.After(endDate) {
		return StatusCompleted
	}
	return StatusActive
}

// Status derives the class's current status.
func (m *ClassModel) Status(now time.Time) string {
	return DeriveStatus(now, m.ClassStartDate, m.ClassEndDate, m.ClassIsCancelled)
}
