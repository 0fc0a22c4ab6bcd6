package models

import "time"

// บัญชีผู้ใช้สำหรับเข้าสู่ระบบ (admin/teacher/student)
type User struct {
	ID           uint   `gorm:"primaryKey"                   json:"id"`
	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:100;not null"            json:"-"`
	Role         string `gorm:"size:20;not null"             json:"role"` // admin|teacher|student

	Account *Account `json:"account,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
