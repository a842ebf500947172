package seeds

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	deptModel "kampusku_backend/internals/features/academics/departments/model"
	levelModel "kampusku_backend/internals/features/academics/levels/model"
	termModel "kampusku_backend/internals/features/academics/terms/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

// RunAll bootstraps a fresh database with the minimum to log in and click
// around. Safe to re-run: every seed checks before inserting.
func RunAll(db *gorm.DB) {
	seedSuperAdmin(db)
	seedDepartments(db)
	seedLevels(db)
	seedActiveTerm(db)
	log.Println("✅ Seeding complete")
}

func seedSuperAdmin(db *gorm.DB) {
	var count int64
	db.Model(&userModel.UserModel{}).Where("user_role = ?", constants.RoleSuperAdmin).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ seed: hash super admin password: %v", err)
		return
	}
	admin := userModel.UserModel{
		UserUsername: "superadmin",
		UserPassword: string(hash),
		UserFullName: "Super Administrator",
		UserEmail:    "superadmin@example.edu",
		UserRole:     constants.RoleSuperAdmin,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ seed: create super admin: %v", err)
		return
	}
	log.Println("✅ seed: super admin created (superadmin / ChangeMe123!)")
}

func seedDepartments(db *gorm.DB) {
	depts := []deptModel.DepartmentModel{
		{DepartmentName: "Computer Science", DepartmentCode: "CS"},
		{DepartmentName: "Business Studies", DepartmentCode: "BUS"},
	}
	for i := range depts {
		var count int64
		db.Model(&deptModel.DepartmentModel{}).
			Where("department_code = ?", depts[i].DepartmentCode).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&depts[i]).Error; err != nil {
			log.Printf("❌ seed: create department %s: %v", depts[i].DepartmentCode, err)
		}
	}
}

func seedLevels(db *gorm.DB) {
	names := []string{"Certificate", "Diploma", "Degree"}
	for _, name := range names {
		var count int64
		db.Model(&levelModel.LevelModel{}).Where("level_name = ?", name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&levelModel.LevelModel{LevelName: name}).Error; err != nil {
			log.Printf("❌ seed: create level %s: %v", name, err)
		}
	}
}

func seedActiveTerm(db *gorm.DB) {
	var count int64
	db.Model(&termModel.AcademicTermModel{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	term := termModel.AcademicTermModel{
		TermName:      "Term 1 " + start.Format("2006"),
		TermStartDate: start,
		TermEndDate:   start.AddDate(0, 0, 7*14),
		TermWeekCount: 14,
		TermIsActive:  true,
	}
	if err := db.Create(&term).Error; err != nil {
		log.Printf("❌ seed: create term: %v", err)
	}
}
