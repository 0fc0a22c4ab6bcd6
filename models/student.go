package models

import "time"

type Student struct {
	ID        uint   `gorm:"primaryKey"                   json:"id"`
	StudentID string `gorm:"size:20;uniqueIndex;not null" json:"student_id"` // รหัสนักเรียน
	UserID    uint   `gorm:"index;not null"               json:"user_id"`

	// ความสัมพันธ์อาจว่างได้ระหว่างช่วงซ่อมข้อมูล (ดู reconcile)
	ClassroomID  *uint `gorm:"index" json:"classroom_id,omitempty"`
	ProgramID    *uint `gorm:"index" json:"program_id,omitempty"`
	DepartmentID *uint `gorm:"index" json:"department_id,omitempty"`
	LevelID      *uint `gorm:"index" json:"level_id,omitempty"`

	Status string `gorm:"size:20;not null;default:normal" json:"status"` // normal|graduate|resigned

	User      *User      `json:"user,omitempty"`
	Classroom *Classroom `json:"classroom,omitempty"`
	Program   *Program   `json:"program,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
