package models

import (
	"time"

	"gorm.io/datatypes"
)

// บันทึกการเยี่ยมบ้านนักเรียน ปีการศึกษาละ 2 ครั้ง
type VisitRecord struct {
	ID           uint   `gorm:"primaryKey"             json:"id"`
	StudentID    uint   `gorm:"index;not null"         json:"student_id"`
	ClassroomID  uint   `gorm:"index;not null"         json:"classroom_id"`
	TeacherID    uint   `gorm:"index;not null"         json:"teacher_id"`
	AcademicYear string `gorm:"size:4;index;not null"  json:"academic_year"` // พ.ศ. เช่น "2566"
	VisitNo      int    `gorm:"index;not null"         json:"visit_no"`      // 1 หรือ 2
	VisitDate    string `gorm:"size:10"                json:"visit_date"`    // YYYY-MM-DD

	// คำตอบแบบสอบถามเยี่ยมบ้าน เก็บเป็น JSON ตามฟอร์มที่เปลี่ยนได้
	VisitMap datatypes.JSON `json:"visit_map,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
