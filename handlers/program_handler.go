package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

// CRUD ของสาขาวิชา/แผนก/ระดับชั้น — โครงเดียวกันทั้งสามตัว

type ProgramHandler struct{}

func NewProgramHandler() *ProgramHandler { return &ProgramHandler{} }

// GET /programs?departmentId=&levelId=
func (h *ProgramHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Program{}).Preload("Department").Preload("Level")
	if id := uintQuery(c, "departmentId"); id > 0 {
		tx = tx.Where("department_id = ?", id)
	}
	if id := uintQuery(c, "levelId"); id > 0 {
		tx = tx.Where("level_id = ?", id)
	}
	var rows []models.Program
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type programPayload struct {
	Name         string `json:"name" validate:"required,max=100"`
	DepartmentID uint   `json:"department_id" validate:"required"`
	LevelID      uint   `json:"level_id" validate:"required"`
}

// POST /programs
func (h *ProgramHandler) Create(c echo.Context) error {
	var p programPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := c.Validate(&p); err != nil {
		return err
	}
	rec := models.Program{Name: p.Name, DepartmentID: p.DepartmentID, LevelID: p.LevelID}
	if err := database.DB.Create(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": rec.ID})
}

// PUT /programs/:id
func (h *ProgramHandler) Update(c echo.Context) error {
	var rec models.Program
	if err := database.DB.First(&rec, uintParam(c, "id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var p programPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := c.Validate(&p); err != nil {
		return err
	}
	updates := map[string]any{"name": p.Name, "department_id": p.DepartmentID, "level_id": p.LevelID}
	if err := database.DB.Model(&rec).Updates(updates).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": rec.ID})
}

// DELETE /programs/:id
func (h *ProgramHandler) Delete(c echo.Context) error {
	var rec models.Program
	if err := database.DB.First(&rec, uintParam(c, "id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var n int64
	database.DB.Model(&models.Classroom{}).Where("program_id = ?", rec.ID).Count(&n)
	if n > 0 {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "PROGRAM_IN_USE"})
	}
	if err := database.DB.Delete(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": rec.ID})
}

type DepartmentHandler struct{}

func NewDepartmentHandler() *DepartmentHandler { return &DepartmentHandler{} }

func (h *DepartmentHandler) List(c echo.Context) error {
	var rows []models.Department
	if err := database.DB.Order("name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type namePayload struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *DepartmentHandler) Create(c echo.Context) error {
	var p namePayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := c.Validate(&p); err != nil {
		return err
	}
	rec := models.Department{Name: p.Name}
	if err := database.DB.Create(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": rec.ID})
}

func (h *DepartmentHandler) Update(c echo.Context) error {
	var rec models.Department
	if err := database.DB.First(&rec, uintParam(c, "id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var p namePayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := c.Validate(&p); err != nil {
		return err
	}
	if err := database.DB.Model(&rec).Update("name", p.Name).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": rec.ID})
}

func (h *DepartmentHandler) Delete(c echo.Context) error {
	var rec models.Department
	if err := database.DB.First(&rec, uintParam(c, "id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var n int64
	database.DB.Model(&models.Program{}).Where("department_id = ?", rec.ID).Count(&n)
	if n > 0 {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "DEPARTMENT_IN_USE"})
	}
	if err := database.DB.Delete(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": rec.ID})
}

type LevelHandler struct{}

func NewLevelHandler() *LevelHandler { return &LevelHandler{} }

func (h *LevelHandler) List(c echo.Context) error {
	var rows []models.Level
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LevelHandler) Create(c echo.Context) error {
	var p namePayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := c.Validate(&p); err != nil {
		return err
	}
	rec := models.Level{Name: p.Name}
	if err := database.DB.Create(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": rec.ID})
}
