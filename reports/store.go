package reports

import (
	"gorm.io/gorm"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

// Store อ่านข้อมูลดิบจากฐานข้อมูลให้ aggregator
// ทุกเมธอดคืนลิสต์ว่างเมื่อไม่พบข้อมูล ไม่ถือเป็น error
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// Roster รายชื่อนักเรียนในห้อง เรียงตาม username
// teacherID > 0 → เฉพาะห้องที่ครูคนนั้นเป็นที่ปรึกษา
func (s *Store) Roster(classroomID, teacherID uint) ([]RosterStudent, error) {
	tx := s.db.Table("students AS s").
		Select(`s.id, s.student_id, u.username,
			COALESCE(a.title, '') AS title,
			COALESCE(a.first_name, '') AS first_name,
			COALESCE(a.last_name, '') AS last_name`).
		Joins("JOIN users u ON u.id = s.user_id").
		Joins("LEFT JOIN accounts a ON a.user_id = u.id").
		Where("s.classroom_id = ?", classroomID).
		Where("s.status = ?", "normal")

	if teacherID > 0 {
		tx = tx.Joins("JOIN teacher_on_classrooms tc ON tc.classroom_id = s.classroom_id").
			Where("tc.teacher_id = ?", teacherID)
	}

	var out []RosterStudent
	if err := tx.Order("u.username ASC").Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// AllStudents รายชื่อนักเรียนทุกห้อง สำหรับรายงานระดับสถานศึกษา
func (s *Store) AllStudents() ([]RosterStudent, error) {
	var out []RosterStudent
	err := s.db.Table("students AS s").
		Select(`s.id, s.student_id, u.username,
			COALESCE(a.title, '') AS title,
			COALESCE(a.first_name, '') AS first_name,
			COALESCE(a.last_name, '') AS last_name`).
		Joins("JOIN users u ON u.id = s.user_id").
		Joins("LEFT JOIN accounts a ON a.user_id = u.id").
		Where("s.status = ?", "normal").
		Order("u.username ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckInsByClassroom การเช็คชื่อของห้องหนึ่งในช่วงวันที่
func (s *Store) CheckInsByClassroom(classroomID uint, start, end string) ([]models.CheckIn, error) {
	var rows []models.CheckIn
	err := s.db.
		Where("classroom_id = ?", classroomID).
		Where("date >= ? AND date <= ?", start, end).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CheckInsByTeacher การเช็คชื่อที่ครูคนหนึ่งบันทึกให้ห้องหนึ่งในวันเดียว
func (s *Store) CheckInsByTeacher(teacherID, classroomID uint, date string) ([]models.CheckIn, error) {
	var rows []models.CheckIn
	err := s.db.
		Where("teacher_id = ? AND classroom_id = ? AND date = ?", teacherID, classroomID, date).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CheckInsAll การเช็คชื่อทุกห้องในช่วงวันที่ สำหรับรายงานระดับสถานศึกษา
func (s *Store) CheckInsAll(start, end string) ([]models.CheckIn, error) {
	var rows []models.CheckIn
	err := s.db.
		Where("date >= ? AND date <= ?", start, end).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Visits บันทึกเยี่ยมบ้านของห้องหนึ่งตามปีการศึกษาและครั้งที่
func (s *Store) Visits(classroomID uint, academicYear string, visitNo int) ([]models.VisitRecord, error) {
	var rows []models.VisitRecord
	err := s.db.
		Where("classroom_id = ? AND academic_year = ? AND visit_no = ?", classroomID, academicYear, visitNo).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
