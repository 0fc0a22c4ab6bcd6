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

type TeacherHandler struct{}

func NewTeacherHandler() *TeacherHandler { return &TeacherHandler{} }

// GET /teachers?q=&page=&size=
func (h *TeacherHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))

	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	tx := database.DB.Model(&models.Teacher{}).Preload("User").Preload("User.Account")
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Joins("JOIN users u ON u.id = teachers.user_id").
			Joins("LEFT JOIN accounts a ON a.user_id = u.id").
			Where("LOWER(teachers.teacher_id) LIKE ? OR LOWER(a.first_name) LIKE ? OR LOWER(a.last_name) LIKE ?",
				like, like, like)
	}

	var rows []models.Teacher
	offset := (page - 1) * size
	if err := tx.Order("teachers.teacher_id ASC").Offset(offset).Limit(size).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type teacherPayload struct {
	TeacherID string `json:"teacher_id" validate:"required,max=20"`
	Title     string `json:"title" validate:"required,max=20"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	JobTitle  string `json:"job_title" validate:"omitempty,max=50"`
	Password  string `json:"password" validate:"omitempty,min=8"`
}

// POST /teachers
func (h *TeacherHandler) Create(c echo.Context) error {
	var p teacherPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.TeacherID = strings.TrimSpace(p.TeacherID)
	if err := c.Validate(&p); err != nil {
		return err
	}

	var dup models.Teacher
	if err := database.DB.Where("teacher_id = ?", p.TeacherID).First(&dup).Error; err == nil {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "TEACHER_ID_EXISTS"})
	}

	password := p.Password
	if password == "" {
		password = p.TeacherID
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	var t models.Teacher
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		u := models.User{Username: p.TeacherID, PasswordHash: string(hash), Role: "teacher"}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		acc := models.Account{UserID: u.ID, Title: p.Title, FirstName: p.FirstName, LastName: p.LastName}
		if err := tx.Create(&acc).Error; err != nil {
			return err
		}
		t = models.Teacher{TeacherID: p.TeacherID, UserID: u.ID, JobTitle: p.JobTitle}
		return tx.Create(&t).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": t.ID})
}

// PUT /teachers/:id
func (h *TeacherHandler) Update(c echo.Context) error {
	id := uintParam(c, "id")

	var t models.Teacher
	if err := database.DB.First(&t, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var p teacherPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Account{}).Where("user_id = ?", t.UserID).
			Updates(map[string]any{
				"title":      p.Title,
				"first_name": p.FirstName,
				"last_name":  p.LastName,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&t).Update("job_title", p.JobTitle).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": t.ID})
}

// DELETE /teachers/:id
func (h *TeacherHandler) Delete(c echo.Context) error {
	id := uintParam(c, "id")

	var t models.Teacher
	if err := database.DB.First(&t, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_id = ?", t.ID).Delete(&models.TeacherOnClassroom{}).Error; err != nil {
			return err
		}
		return tx.Delete(&t).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": id})
}
