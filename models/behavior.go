package models

import "time"

// สมุดความดี: บันทึกเพิ่มอย่างเดียว รวมคะแนนเป็นรายงานถ้วยรางวัล
type GoodnessRecord struct {
	ID          uint   `gorm:"primaryKey"     json:"id"`
	StudentID   uint   `gorm:"index;not null" json:"student_id"`
	ClassroomID *uint  `gorm:"index"          json:"classroom_id,omitempty"`
	Score       int    `gorm:"not null"       json:"score"`
	Detail      string `gorm:"type:text"      json:"detail"`
	Image       string `gorm:"type:text"      json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// สมุดพฤติกรรมไม่พึงประสงค์ โครงสร้างเดียวกับสมุดความดี
type BadnessRecord struct {
	ID          uint   `gorm:"primaryKey"     json:"id"`
	StudentID   uint   `gorm:"index;not null" json:"student_id"`
	ClassroomID *uint  `gorm:"index"          json:"classroom_id,omitempty"`
	Score       int    `gorm:"not null"       json:"score"`
	Detail      string `gorm:"type:text"      json:"detail"`
	Image       string `gorm:"type:text"      json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
