package models

import "time"

// ข้อมูลแสดงตัวตนของผู้ใช้ (คำนำหน้า ชื่อ นามสกุล รูป)
type Account struct {
	ID        uint   `gorm:"primaryKey"       json:"id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Title     string `gorm:"size:20"          json:"title"`
	FirstName string `gorm:"size:50"          json:"first_name"`
	LastName  string `gorm:"size:50"          json:"last_name"`
	Avatar    string `gorm:"type:text"        json:"avatar,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
