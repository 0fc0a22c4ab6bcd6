package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/reports"
)

// รายงานสรุปการเช็คชื่อ — รวม roster ∪ check-in เสมอ
// วันที่ไม่มีข้อมูลนักเรียนทุกคนได้สถานะ unset ไม่ใช่ error
type ReportHandler struct{}

func NewReportHandler() *ReportHandler { return &ReportHandler{} }

func (h *ReportHandler) store() *reports.Store { return reports.NewStore(database.DB) }

// GET /teacher/reports/daily?classroomId=&date=YYYY-MM-DD
// ไม่ส่ง date มา → วันนี้
func (h *ReportHandler) Daily(c echo.Context) error {
	classroomID := uintQuery(c, "classroomId")
	if classroomID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CLASSROOM"})
	}
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	st := h.store()
	roster, err := st.Roster(classroomID, teacherIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	subs, err := st.CheckInsByClassroom(classroomID, date, date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	rep := reports.BuildRange(roster, subs, date, date)
	return c.JSON(http.StatusOK, rep)
}

// GET /teacher/reports/range?classroomId=&start=&end=
func (h *ReportHandler) Range(c echo.Context) error {
	classroomID := uintQuery(c, "classroomId")
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	if classroomID == 0 || start == "" || end == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	return h.buildClassroomRange(c, classroomID, start, end)
}

// GET /teacher/reports/weekly?classroomId=&date=
// ช่วงจันทร์–อาทิตย์ของสัปดาห์ที่ date อยู่
func (h *ReportHandler) Weekly(c echo.Context) error {
	classroomID := uintQuery(c, "classroomId")
	if classroomID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CLASSROOM"})
	}
	t, err := anchorDate(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	start, end := reports.WeekRange(t)
	return h.buildClassroomRange(c, classroomID, start, end)
}

// GET /teacher/reports/monthly?classroomId=&date=
func (h *ReportHandler) Monthly(c echo.Context) error {
	classroomID := uintQuery(c, "classroomId")
	if classroomID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_CLASSROOM"})
	}
	t, err := anchorDate(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	start, end := reports.MonthRange(t)
	return h.buildClassroomRange(c, classroomID, start, end)
}

// GET /admin/reports/attendance?start=&end= — รวมทุกห้องทั้งสถานศึกษา
func (h *ReportHandler) AdminWide(c echo.Context) error {
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	if start == "" || end == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	st := h.store()
	roster, err := st.AllStudents()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	subs, err := st.CheckInsAll(start, end)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	rep := reports.BuildRange(roster, subs, start, end)
	return c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) buildClassroomRange(c echo.Context, classroomID uint, start, end string) error {
	st := h.store()
	roster, err := st.Roster(classroomID, teacherIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	subs, err := st.CheckInsByClassroom(classroomID, start, end)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	rep := reports.BuildRange(roster, subs, start, end)
	return c.JSON(http.StatusOK, rep)
}

func anchorDate(c echo.Context) (time.Time, error) {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", date)
}
