package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/reports"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/thaidate"
)

type VisitHandler struct{}

func NewVisitHandler() *VisitHandler { return &VisitHandler{} }

// GET /teacher/visits?classroomId=&academicYear=&visitNo=
// คืนนักเรียนทุกคนในห้อง คนที่ยังไม่ได้เยี่ยมบ้าน visit เป็น null
// ไม่ส่ง academicYear มา → ปีการศึกษาปัจจุบัน
func (h *VisitHandler) Lookup(c echo.Context) error {
	classroomID := uintQuery(c, "classroomId")
	academicYear := strings.TrimSpace(c.QueryParam("academicYear"))
	if academicYear == "" {
		academicYear = thaidate.AcademicYear(time.Now())
	}
	visitNo := atoiOr(c.QueryParam("visitNo"), 0)
	if classroomID == 0 || (visitNo != 1 && visitNo != 2) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	st := reports.NewStore(database.DB)
	roster, err := st.Roster(classroomID, teacherIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	visits, err := st.Visits(classroomID, academicYear, visitNo)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"students":      len(roster),
		"academic_year": academicYear,
		"rows":          reports.MergeVisits(roster, visits),
	})
}

type visitPayload struct {
	StudentID    uint           `json:"student_id" validate:"required"`
	ClassroomID  uint           `json:"classroom_id" validate:"required"`
	AcademicYear string         `json:"academic_year" validate:"required,len=4"`
	VisitNo      int            `json:"visit_no" validate:"required,oneof=1 2"`
	VisitDate    string         `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	VisitMap     map[string]any `json:"visit_map"`
}

// field ที่จะแก้ไขเมื่อบันทึกซ้ำรายการเดิม
// visit_date/visit_map ที่ไม่ได้ส่งมา คงค่าเดิมไว้ ไม่ถูกล้าง
func visitUpdates(p visitPayload, teacherID uint, answers datatypes.JSON) map[string]any {
	updates := map[string]any{
		"classroom_id": p.ClassroomID,
		"teacher_id":   teacherID,
	}
	if p.VisitDate != "" {
		updates["visit_date"] = p.VisitDate
	}
	if p.VisitMap != nil {
		updates["visit_map"] = answers
	}
	return updates
}

// POST /teacher/visits — บันทึกซ้ำนักเรียนเดิมในปี/ครั้งเดียวกันเป็นการแก้ไข
func (h *VisitHandler) Create(c echo.Context) error {
	var p visitPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	teacherID := teacherIDFromContext(c)
	if teacherID == 0 {
		return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "NOT_A_TEACHER"})
	}

	var answers datatypes.JSON
	if p.VisitMap != nil {
		b, err := json.Marshal(p.VisitMap)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_VISIT_MAP"})
		}
		answers = datatypes.JSON(b)
	}

	var rec models.VisitRecord
	err := database.DB.
		Where("student_id = ? AND academic_year = ? AND visit_no = ?", p.StudentID, p.AcademicYear, p.VisitNo).
		First(&rec).Error
	if err == nil {
		updates := visitUpdates(p, teacherID, answers)
		if err := database.DB.Model(&rec).Updates(updates).Error; err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"id": rec.ID})
	}

	rec = models.VisitRecord{
		StudentID:    p.StudentID,
		ClassroomID:  p.ClassroomID,
		TeacherID:    teacherID,
		AcademicYear: p.AcademicYear,
		VisitNo:      p.VisitNo,
		VisitDate:    p.VisitDate,
		VisitMap:     answers,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": rec.ID})
}
