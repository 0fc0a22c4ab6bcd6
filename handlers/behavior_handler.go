package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

// สมุดความดี/พฤติกรรม: บันทึกเพิ่มอย่างเดียว แล้วรวมคะแนนเป็นรายงาน
type BehaviorHandler struct{}

func NewBehaviorHandler() *BehaviorHandler { return &BehaviorHandler{} }

type behaviorPayload struct {
	StudentID   uint   `json:"student_id" validate:"required"`
	ClassroomID *uint  `json:"classroom_id"`
	Score       int    `json:"score" validate:"required,min=1,max=100"`
	Detail      string `json:"detail" validate:"required"`
	Image       string `json:"image"`
}

// POST /teacher/goodness
func (h *BehaviorHandler) CreateGoodness(c echo.Context) error {
	var p behaviorPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	if err := ensureStudent(p.StudentID); err != nil {
		return err
	}
	rec := models.GoodnessRecord{
		StudentID:   p.StudentID,
		ClassroomID: p.ClassroomID,
		Score:       p.Score,
		Detail:      p.Detail,
		Image:       p.Image,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// POST /teacher/badness
func (h *BehaviorHandler) CreateBadness(c echo.Context) error {
	var p behaviorPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	if err := ensureStudent(p.StudentID); err != nil {
		return err
	}
	rec := models.BadnessRecord{
		StudentID:   p.StudentID,
		ClassroomID: p.ClassroomID,
		Score:       p.Score,
		Detail:      p.Detail,
		Image:       p.Image,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func ensureStudent(id uint) error {
	var stu models.Student
	if err := database.DB.First(&stu, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "STUDENT_NOT_FOUND"})
	}
	return nil
}

// GET /teacher/goodness?studentId= — สมุดความดีรายนักเรียน
func (h *BehaviorHandler) ListGoodness(c echo.Context) error {
	studentID := uintQuery(c, "studentId")
	if studentID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_STUDENT"})
	}
	var rows []models.GoodnessRecord
	if err := database.DB.Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /teacher/badness?studentId=
func (h *BehaviorHandler) ListBadness(c echo.Context) error {
	studentID := uintQuery(c, "studentId")
	if studentID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_STUDENT"})
	}
	var rows []models.BadnessRecord
	if err := database.DB.Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /teacher/trophy?classroomId=&limit=
// จัดอันดับคะแนนสุทธิ (ความดี − พฤติกรรม) ของนักเรียนในห้อง
func (h *BehaviorHandler) Trophy(c echo.Context) error {
	classroomID := uintQuery(c, "classroomId")
	if classroomID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CLASSROOM"})
	}
	limit := atoiOr(c.QueryParam("limit"), 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	type rankRow struct {
		StudentID uint   `json:"student_id"`
		Code      string `json:"code"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Goodness  int    `json:"goodness"`
		Badness   int    `json:"badness"`
		NetScore  int    `json:"net_score"`
	}

	var rows []rankRow
	err := database.DB.Table("students AS s").
		Select(`s.id AS student_id, s.student_id AS code,
			COALESCE(a.first_name, '') AS first_name,
			COALESCE(a.last_name, '') AS last_name,
			COALESCE(g.total, 0) AS goodness,
			COALESCE(b.total, 0) AS badness,
			COALESCE(g.total, 0) - COALESCE(b.total, 0) AS net_score`).
		Joins("LEFT JOIN accounts a ON a.user_id = s.user_id").
		Joins(`LEFT JOIN (SELECT student_id, SUM(score) AS total FROM goodness_records GROUP BY student_id) g
			ON g.student_id = s.id`).
		Joins(`LEFT JOIN (SELECT student_id, SUM(score) AS total FROM badness_records GROUP BY student_id) b
			ON b.student_id = s.id`).
		Where("s.classroom_id = ? AND s.status = ?", classroomID, "normal").
		Order("net_score DESC, s.student_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
