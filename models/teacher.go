package models

import "time"

type Teacher struct {
	ID        uint   `gorm:"primaryKey"                   json:"id"`
	TeacherID string `gorm:"size:20;uniqueIndex;not null" json:"teacher_id"` // รหัสครู
	UserID    uint   `gorm:"index;not null"               json:"user_id"`
	JobTitle  string `gorm:"size:50"                      json:"job_title"`

	User *User `json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ครูที่ปรึกษาประจำห้องเรียน
type TeacherOnClassroom struct {
	ID          uint `gorm:"primaryKey"                                      json:"id"`
	TeacherID   uint `gorm:"index;not null;uniqueIndex:idx_teacher_classroom" json:"teacher_id"`
	ClassroomID uint `gorm:"index;not null;uniqueIndex:idx_teacher_classroom" json:"classroom_id"`

	CreatedAt time.Time `json:"created_at"`
}
