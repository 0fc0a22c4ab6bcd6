package reconcile

import (
	"gorm.io/gorm"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore คืน Store ที่อ่าน/เขียนผ่าน GORM
func NewStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) ClassroomsMissingProgram() ([]models.Classroom, error) {
	var rooms []models.Classroom
	err := s.db.Where("program_id IS NULL").Order("id ASC").Find(&rooms).Error
	return rooms, err
}

func (s *gormStore) StudentPrograms(classroomID uint, limit int) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Student{}).
		Where("classroom_id = ? AND program_id IS NOT NULL", classroomID).
		Order("id ASC").
		Limit(limit).
		Pluck("program_id", &ids).Error
	return ids, err
}

func (s *gormStore) Programs() ([]models.Program, error) {
	var programs []models.Program
	err := s.db.Order("id ASC").Find(&programs).Error
	return programs, err
}

func (s *gormStore) AssignProgram(classroomID, programID uint) error {
	return s.db.Model(&models.Classroom{}).
		Where("id = ?", classroomID).
		Update("program_id", programID).Error
}
