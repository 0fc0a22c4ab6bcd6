package models

import (
	"time"

	"github.com/lib/pq"
)

// สถานะการเช็คชื่อรายวัน
const (
	StatusPresent    = "present"
	StatusAbsent     = "absent"
	StatusLate       = "late"
	StatusLeave      = "leave"
	StatusInternship = "internship"
	// ไม่มีข้อมูล ≠ ขาดเรียน — นักเรียนที่ยังไม่ถูกเช็คชื่อจะได้สถานะนี้ในรายงาน
	StatusUnset = "unset"
)

// การเช็คชื่อหนึ่งครั้ง: ครูส่งรายชื่อนักเรียน (รหัสนักเรียน) แยกเป็นกลุ่มตามสถานะ
// หนึ่งแถวต่อการส่งหนึ่งครั้ง ไม่ใช่หนึ่งแถวต่อนักเรียน
type CheckIn struct {
	ID          uint   `gorm:"primaryKey"             json:"id"`
	Date        string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	ClassroomID uint   `gorm:"index;not null"         json:"classroom_id"`
	TeacherID   uint   `gorm:"index;not null"         json:"teacher_id"`

	Present    pq.StringArray `gorm:"type:text[]" json:"present"`
	Absent     pq.StringArray `gorm:"type:text[]" json:"absent"`
	Late       pq.StringArray `gorm:"type:text[]" json:"late"`
	Leave      pq.StringArray `gorm:"type:text[]" json:"leave"`
	Internship pq.StringArray `gorm:"type:text[]" json:"internship"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
