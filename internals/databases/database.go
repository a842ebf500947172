package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	DeptModel "kampusku_backend/internals/features/academics/departments/model"
	SectionModel "kampusku_backend/internals/features/academics/sections/model"
	LevelModel "kampusku_backend/internals/features/academics/levels/model"
	CourseModel "kampusku_backend/internals/features/academics/courses/model"
	TermModel "kampusku_backend/internals/features/academics/terms/model"
	UnitModel "kampusku_backend/internals/features/academics/units/model"
	ClassModel "kampusku_backend/internals/features/academics/classes/model"
	EnrollModel "kampusku_backend/internals/features/academics/enrollments/model"
	AttendanceModel "kampusku_backend/internals/features/attendance/attendance/model"
	RecordModel "kampusku_backend/internals/features/attendance/records/model"
	ScheduleModel "kampusku_backend/internals/features/attendance/schedules/model"
	SessionModel "kampusku_backend/internals/features/attendance/sessions/model"
	AuthModel "kampusku_backend/internals/features/users/auth/model"
	UserModel "kampusku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kampusku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer-safe (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema current. AutoMigrate covers columns; the unique
// indexes that back the business invariants are raw DDL because GORM tags
// cannot express partial indexes.
func Migrate() {
	if err := DB.AutoMigrate(
		&UserModel.UserModel{},
		&AuthModel.TokenBlacklistModel{},
		&DeptModel.DepartmentModel{},
		&SectionModel.SectionModel{},
		&LevelModel.LevelModel{},
		&CourseModel.CourseModel{},
		&TermModel.AcademicTermModel{},
		&UnitModel.UnitModel{},
		&UnitModel.UnitClassAssignmentModel{},
		&ClassModel.ClassModel{},
		&EnrollModel.EnrollmentModel{},
		&ScheduleModel.UnitScheduleModel{},
		&SessionModel.UnitSessionModel{},
		&AttendanceModel.AttendanceModel{},
		&RecordModel.RecordOfWorkModel{},
	); err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}

	stmts := []string{
		// one unit ↔ class pair only
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_unit_class_assignments_unit_class
		   ON unit_class_assignments (unit_class_assignment_unit_id, unit_class_assignment_class_id)`,
		// one attendance row per (session, student); upsert target
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_session_student
		   ON attendance (attendance_session_id, attendance_student_id)`,
		// a student holds at most one active enrollment system-wide
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_enrollments_one_active_per_student
		   ON enrollments (enrollment_student_id) WHERE enrollment_status = 'active'`,
		// one record of work per session
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_records_of_work_session
		   ON records_of_work (record_session_id)`,
		// idempotent schedule materialization
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_unit_sessions_schedule_date
		   ON unit_sessions (unit_session_schedule_id, unit_session_date)
		   WHERE unit_session_schedule_id IS NOT NULL`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Fatalf("❌ index migrate failed: %v", err)
		}
	}
	log.Println("✅ Schema migrated.")
}
