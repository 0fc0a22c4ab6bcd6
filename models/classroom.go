package models

import "time"

// ห้องเรียน เช่น "ปวช.1/1 เทคโนโลยีคอมพิวเตอร์"
// ทุกห้องควรอ้างอิงสาขาวิชา (program) เสมอ แต่ข้อมูลเก่าอาจว่าง
// → งาน reconcile จะเติมให้ภายหลัง
type Classroom struct {
	ID   uint   `gorm:"primaryKey"        json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	ProgramID    *uint `gorm:"index" json:"program_id,omitempty"`
	DepartmentID *uint `gorm:"index" json:"department_id,omitempty"`
	LevelID      *uint `gorm:"index" json:"level_id,omitempty"`

	Program    *Program    `json:"program,omitempty"`
	Department *Department `json:"department,omitempty"`
	Level      *Level      `json:"level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Department struct {
	ID   uint   `gorm:"primaryKey"        json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ระดับชั้น (ปวช. / ปวส.)
type Level struct {
	ID   uint   `gorm:"primaryKey"       json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// สาขาวิชา สังกัดแผนก (department) และระดับชั้น (level)
type Program struct {
	ID           uint   `gorm:"primaryKey"        json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	DepartmentID uint   `gorm:"index;not null"    json:"department_id"`
	LevelID      uint   `gorm:"index;not null"    json:"level_id"`

	Department *Department `json:"department,omitempty"`
	Level      *Level      `json:"level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
