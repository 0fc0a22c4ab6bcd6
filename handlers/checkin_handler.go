package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/reports"
)

type CheckInHandler struct{}

func NewCheckInHandler() *CheckInHandler { return &CheckInHandler{} }

type checkInPayload struct {
	ClassroomID uint     `json:"classroom_id" validate:"required"`
	Date        string   `json:"date" validate:"required"` // YYYY-MM-DD
	Present     []string `json:"present"`
	Absent      []string `json:"absent"`
	Late        []string `json:"late"`
	Leave       []string `json:"leave"`
	Internship  []string `json:"internship"`
}

// เช็ครหัสนักเรียนใน payload กับ roster ของห้องก่อนบันทึก
// unknown = รหัสที่ไม่อยู่ในห้องนี้, duplicate = รหัสที่ถูกเช็คซ้ำข้ามกลุ่มสถานะ
func validateBuckets(roster []reports.RosterStudent, p checkInPayload) (unknown, duplicate []string) {
	known := make(map[string]struct{}, len(roster))
	for _, s := range roster {
		known[s.StudentID] = struct{}{}
	}
	seen := make(map[string]bool)
	for _, bucket := range [][]string{p.Present, p.Absent, p.Late, p.Leave, p.Internship} {
		for _, code := range bucket {
			if _, ok := known[code]; !ok {
				unknown = append(unknown, code)
				continue
			}
			if seen[code] {
				duplicate = append(duplicate, code)
				continue
			}
			seen[code] = true
		}
	}
	return unknown, duplicate
}

// POST /teacher/check-in — บันทึกการเช็คชื่อหนึ่งครั้ง
// ครูผู้บันทึกมาจาก token ไม่รับจาก payload
func (h *CheckInHandler) Create(c echo.Context) error {
	var p checkInPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Date = strings.TrimSpace(p.Date)
	if err := c.Validate(&p); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", p.Date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}

	teacherID := teacherIDFromContext(c)
	if teacherID == 0 {
		return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "NOT_A_TEACHER"})
	}

	var room models.Classroom
	if err := database.DB.First(&room, p.ClassroomID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "CLASSROOM_NOT_FOUND"})
	}

	roster, err := reports.NewStore(database.DB).Roster(p.ClassroomID, 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	unknown, duplicate := validateBuckets(roster, p)
	if len(unknown) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "STUDENT_NOT_IN_CLASSROOM", "students": unknown})
	}
	if len(duplicate) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "DUPLICATE_STATUS", "students": duplicate})
	}

	rec := models.CheckIn{
		Date:        p.Date,
		ClassroomID: p.ClassroomID,
		TeacherID:   teacherID,
		Present:     pq.StringArray(p.Present),
		Absent:      pq.StringArray(p.Absent),
		Late:        pq.StringArray(p.Late),
		Leave:       pq.StringArray(p.Leave),
		Internship:  pq.StringArray(p.Internship),
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// GET /teacher/check-in?classroomId=&start=&end=
func (h *CheckInHandler) List(c echo.Context) error {
	classroomID := uintQuery(c, "classroomId")
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))

	tx := database.DB.Model(&models.CheckIn{})
	if classroomID > 0 {
		tx = tx.Where("classroom_id = ?", classroomID)
	}
	if start != "" && end != "" {
		tx = tx.Where("date >= ? AND date <= ?", start, end)
	}

	var rows []models.CheckIn
	if err := tx.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /teacher/check-in/mine?classroomId=&date=
// การเช็คชื่อที่ครูคนนี้บันทึกเองในวันเดียว (ไม่ส่ง date → วันนี้)
func (h *CheckInHandler) Mine(c echo.Context) error {
	classroomID := uintQuery(c, "classroomId")
	if classroomID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CLASSROOM"})
	}
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	teacherID := teacherIDFromContext(c)
	if teacherID == 0 {
		return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "NOT_A_TEACHER"})
	}

	rows, err := reports.NewStore(database.DB).CheckInsByTeacher(teacherID, classroomID, date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
