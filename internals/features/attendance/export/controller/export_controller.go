package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	unitModel "kampusku_backend/internals/features/academics/units/model"
	attModel "kampusku_backend/internals/features/attendance/attendance/model"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
	helper "kampusku_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

type registerStudent struct {
	StudentID              uuid.UUID `gorm:"column:student_id"`
	StudentFullName        string    `gorm:"column:student_full_name"`
	StudentAdmissionNumber *string   `gorm:"column:student_admission_number"`
}

// registerLetter is the cell value: P present, A absent, blank unmarked.
func registerLetter(isPresent *bool) string {
	if isPresent == nil {
		return ""
	}
	if *isPresent {
		return "P"
	}
	return "A"
}

// GET /api/units/:id/attendance-register?term_id= writes the xlsx register:
// one row per enrolled student, one column per session, letters in the cells.
func (ctl *ExportController) AttendanceRegister(c *fiber.Ctx) error {
	unitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}
	termID, err := uuid.Parse(c.Query("term_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term_id")
	}

	var unit unitModel.UnitModel
	if err := ctl.DB.First(&unit, "unit_id = ?", unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch unit")
	}

	var sessions []sessionModel.UnitSessionModel
	if err := ctl.DB.
		Where("unit_session_unit_id = ? AND unit_session_term_id = ? AND unit_session_is_cancelled = FALSE", unitID, termID).
		Order("unit_session_date ASC, unit_session_start_time ASC").
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}

	var students []registerStudent
	if err := ctl.DB.
		Table("unit_class_assignments AS uca").
		Select(`DISTINCT u.user_id AS student_id,
			u.user_full_name AS student_full_name,
			u.user_admission_number AS student_admission_number`).
		Joins("JOIN enrollments e ON e.enrollment_class_id = uca.unit_class_assignment_class_id AND e.enrollment_status = 'active'").
		Joins("JOIN users u ON u.user_id = e.enrollment_student_id").
		Where("uca.unit_class_assignment_unit_id = ?", unitID).
		Order("student_full_name ASC").
		Scan(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch roster")
	}

	var marks []attModel.AttendanceModel
	if len(sessions) > 0 {
		sessionIDs := make([]uuid.UUID, len(sessions))
		for i, s := range sessions {
			sessionIDs[i] = s.UnitSessionID
		}
		if err := ctl.DB.
			Where("attendance_session_id IN ?", sessionIDs).
			Find(&marks).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
		}
	}
	markBy := make(map[uuid.UUID]map[uuid.UUID]bool, len(sessions))
	for _, m := range marks {
		if markBy[m.AttendanceSessionID] == nil {
			markBy[m.AttendanceSessionID] = make(map[uuid.UUID]bool)
		}
		markBy[m.AttendanceSessionID][m.AttendanceStudentID] = m.AttendanceIsPresent
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Register"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Admission No")
	f.SetCellValue(sheet, "B1", "Student Name")
	for i, s := range sessions {
		col, _ := excelize.ColumnNumberToName(i + 3)
		f.SetCellValue(sheet, col+"1", s.UnitSessionDate.Format("02 Jan"))
	}
	totalCol, _ := excelize.ColumnNumberToName(len(sessions) + 3)
	f.SetCellValue(sheet, totalCol+"1", "Present")

	for r, st := range students {
		row := r + 2
		if st.StudentAdmissionNumber != nil {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), *st.StudentAdmissionNumber)
		}
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), st.StudentFullName)
		present := 0
		for i, s := range sessions {
			var isPresent *bool
			if v, ok := markBy[s.UnitSessionID][st.StudentID]; ok {
				isPresent = &v
			}
			if isPresent != nil && *isPresent {
				present++
			}
			col, _ := excelize.ColumnNumberToName(i + 3)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), registerLetter(isPresent))
		}
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", totalCol, row), fmt.Sprintf("%d/%d", present, len(sessions)))
	}
	f.SetColWidth(sheet, "B", "B", 28)

	filename := fmt.Sprintf("attendance-register-%s-%s.xlsx", unit.UnitCode, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return f.Write(c.Response().BodyWriter())
}
