package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

// GET /students?classroomId=&programId=&q=&page=&size=
func (h *StudentHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	classroomID := uintQuery(c, "classroomId")
	programID := uintQuery(c, "programId")

	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	tx := database.DB.Model(&models.Student{}).
		Preload("User").Preload("User.Account").Preload("Classroom").Preload("Program")

	if classroomID > 0 {
		tx = tx.Where("classroom_id = ?", classroomID)
	}
	if programID > 0 {
		tx = tx.Where("program_id = ?", programID)
	}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Joins("JOIN users u ON u.id = students.user_id").
			Joins("LEFT JOIN accounts a ON a.user_id = u.id").
			Where("LOWER(students.student_id) LIKE ? OR LOWER(a.first_name) LIKE ? OR LOWER(a.last_name) LIKE ?",
				like, like, like)
	}

	var rows []models.Student
	offset := (page - 1) * size
	if err := tx.Order("students.student_id ASC").Offset(offset).Limit(size).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type studentPayload struct {
	StudentID    string `json:"student_id" validate:"required,max=20"`
	Title        string `json:"title" validate:"required,max=20"`
	FirstName    string `json:"first_name" validate:"required,max=50"`
	LastName     string `json:"last_name" validate:"required,max=50"`
	Password     string `json:"password" validate:"omitempty,min=8"`
	ClassroomID  *uint  `json:"classroom_id"`
	ProgramID    *uint  `json:"program_id"`
	DepartmentID *uint  `json:"department_id"`
	LevelID      *uint  `json:"level_id"`
	Status       string `json:"status" validate:"omitempty,oneof=normal graduate resigned"`
}

// POST /students — สร้าง user + account + student ใน transaction เดียว
// username = รหัสนักเรียน
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.StudentID = strings.TrimSpace(p.StudentID)
	if err := c.Validate(&p); err != nil {
		return err
	}

	var dup models.Student
	if err := database.DB.Where("student_id = ?", p.StudentID).First(&dup).Error; err == nil {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "STUDENT_ID_EXISTS"})
	}

	password := p.Password
	if password == "" {
		password = p.StudentID // ค่าเริ่มต้น ให้เปลี่ยนภายหลัง
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	var stu models.Student
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		u := models.User{Username: p.StudentID, PasswordHash: string(hash), Role: "student"}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		acc := models.Account{UserID: u.ID, Title: p.Title, FirstName: p.FirstName, LastName: p.LastName}
		if err := tx.Create(&acc).Error; err != nil {
			return err
		}
		status := p.Status
		if status == "" {
			status = "normal"
		}
		stu = models.Student{
			StudentID:    p.StudentID,
			UserID:       u.ID,
			ClassroomID:  p.ClassroomID,
			ProgramID:    p.ProgramID,
			DepartmentID: p.DepartmentID,
			LevelID:      p.LevelID,
			Status:       status,
		}
		return tx.Create(&stu).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": stu.ID})
}

// PUT /students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	id := uintParam(c, "id")

	var stu models.Student
	if err := database.DB.First(&stu, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Account{}).Where("user_id = ?", stu.UserID).
			Updates(map[string]any{
				"title":      p.Title,
				"first_name": p.FirstName,
				"last_name":  p.LastName,
			}).Error; err != nil {
			return err
		}
		updates := map[string]any{
			"classroom_id":  p.ClassroomID,
			"program_id":    p.ProgramID,
			"department_id": p.DepartmentID,
			"level_id":      p.LevelID,
		}
		if p.Status != "" {
			updates["status"] = p.Status
		}
		return tx.Model(&stu).Updates(updates).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": stu.ID})
}

// DELETE /students/:id — soft delete: เปลี่ยนสถานะ ไม่ลบแถวจริง
func (h *StudentHandler) Delete(c echo.Context) error {
	id := uintParam(c, "id")

	var stu models.Student
	if err := database.DB.First(&stu, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err := database.DB.Model(&stu).Update("status", "resigned").Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": stu.ID, "status": "resigned"})
}
