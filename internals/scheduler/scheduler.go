package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	termService "kampusku_backend/internals/features/academics/terms/service"
	scheduleService "kampusku_backend/internals/features/attendance/schedules/service"
	authModel "kampusku_backend/internals/features/users/auth/model"
)

// Start registers the daily jobs. Times are server-local.
func Start(db *gorm.DB) {
	c := cron.New()

	// 00:10, materialize this week's sessions for the active term.
	if _, err := c.AddFunc("10 0 * * *", func() {
		materializeSessions(db)
	}); err != nil {
		log.Printf("❌ cron: failed to register session materializer: %v", err)
	}

	// 03:00, drop blacklist rows whose tokens already expired.
	if _, err := c.AddFunc("0 3 * * *", func() {
		purgeExpiredTokens(db)
	}); err != nil {
		log.Printf("❌ cron: failed to register token purge: %v", err)
	}

	c.Start()
	log.Println("✅ Scheduler started")
}

func materializeSessions(db *gorm.DB) {
	term, err := termService.ActiveTerm(db)
	if err != nil {
		log.Printf("❌ cron: resolve active term: %v", err)
		return
	}
	if term == nil {
		log.Println("cron: no active term, skipping session materialization")
		return
	}

	n, err := scheduleService.MaterializeActiveSchedules(db, term.TermID, term.TermStartDate, time.Now())
	if err != nil {
		log.Printf("❌ cron: materialize sessions: %v (%d done)", err, n)
		return
	}
	log.Printf("✅ cron: materialized sessions for %d schedules", n)
}

func purgeExpiredTokens(db *gorm.DB) {
	res := db.Unscoped().
		Where("expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklistModel{})
	if res.Error != nil {
		log.Printf("❌ cron: purge expired tokens: %v", res.Error)
		return
	}
	log.Printf("✅ cron: purged %d expired tokens", res.RowsAffected)
}
