package service

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	scheduleModel "kampusku_backend/internals/features/attendance/schedules/model"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
)

// WeekStart returns the Sunday that opens the calendar week containing t,
// truncated to a date.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// SessionDate maps a weekly slot onto the week opened by weekStart.
func SessionDate(weekStart time.Time, dayOfWeek int) time.Time {
	return weekStart.AddDate(0, 0, dayOfWeek)
}

// WeekNumber is 1-based relative to the term start's week.
func WeekNumber(termStart, sessionDate time.Time) int {
	days := int(sessionDate.Sub(WeekStart(termStart)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days/7 + 1
}

// MaterializeSchedule writes the session row for the given week. The
// (schedule_id, date) unique index makes this idempotent: re-running for the
// same week is a no-op.
func MaterializeSchedule(db *gorm.DB, sched *scheduleModel.UnitScheduleModel, weekStart, termStart time.Time) (*sessionModel.UnitSessionModel, error) {
	date := SessionDate(weekStart, sched.UnitScheduleDayOfWeek)
	s := sessionModel.UnitSessionModel{
		UnitSessionScheduleID: &sched.UnitScheduleID,
		UnitSessionUnitID:     sched.UnitScheduleUnitID,
		UnitSessionDate:       date,
		UnitSessionStartTime:  sched.UnitScheduleStartTime,
		UnitSessionEndTime:    sched.UnitScheduleEndTime,
		UnitSessionLocation:   sched.UnitScheduleLocation,
		UnitSessionWeekNumber: WeekNumber(termStart, date),
		UnitSessionTermID:     sched.UnitScheduleTermID,
		UnitSessionIsActive:   true,
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// MaterializeActiveSchedules walks every active schedule of the term and
// materializes the week containing `around`. Used by the daily cron.
func MaterializeActiveSchedules(db *gorm.DB, termID interface{}, termStart, around time.Time) (int, error) {
	var scheds []scheduleModel.UnitScheduleModel
	if err := db.
		Where("unit_schedule_term_id = ? AND unit_schedule_is_active = TRUE", termID).
		Find(&scheds).Error; err != nil {
		return 0, err
	}

	weekStart := WeekStart(around)
	n := 0
	for i := range scheds {
		if _, err := MaterializeSchedule(db, &scheds[i], weekStart, termStart); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
