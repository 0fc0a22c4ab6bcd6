package reconcile

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

// fakeStore เก็บทุกอย่างในหน่วยความจำ ให้ทดสอบ runner ได้โดยไม่ต้องมีฐานข้อมูล
type fakeStore struct {
	rooms        []models.Classroom
	programs     []models.Program
	votes        map[uint][]uint
	failAssignOn map[uint]bool
}

func (s *fakeStore) ClassroomsMissingProgram() ([]models.Classroom, error) {
	var out []models.Classroom
	for _, r := range s.rooms {
		if r.ProgramID == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) StudentPrograms(classroomID uint, limit int) ([]uint, error) {
	ids := s.votes[classroomID]
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (s *fakeStore) Programs() ([]models.Program, error) { return s.programs, nil }

func (s *fakeStore) AssignProgram(classroomID, programID uint) error {
	if s.failAssignOn[classroomID] {
		return errors.New("update failed")
	}
	for i := range s.rooms {
		if s.rooms[i].ID == classroomID {
			pid := programID
			s.rooms[i].ProgramID = &pid
		}
	}
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunFixesAndReportsUnresolved(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Classroom{
			{ID: 1, Name: "ปวช.1/1-ช่างยนต์"},
			{ID: 2, Name: "ห้องพิเศษ"},
		},
		programs: testPrograms(),
		votes:    map[uint][]uint{},
	}

	res, err := Run(store, quietLogger())
	assert.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 2, res.Checked)
	assert.Equal(t, 1, res.Fixed)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, []string{"ห้องพิเศษ"}, res.Unresolved)

	if assert.NotNil(t, store.rooms[0].ProgramID) {
		assert.Equal(t, uint(2), *store.rooms[0].ProgramID)
	}
	assert.Nil(t, store.rooms[1].ProgramID)
}

func TestRunIsIdempotent(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Classroom{
			{ID: 1, Name: "ปวช.1/1-ช่างยนต์"},
		},
		programs: testPrograms(),
		votes:    map[uint][]uint{},
	}

	first, err := Run(store, quietLogger())
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Fixed)

	// รอบสองไม่มีห้องค้างให้ซ่อมแล้ว
	second, err := Run(store, quietLogger())
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Checked)
	assert.Equal(t, 0, second.Fixed)
}

func TestRunContinuesAfterAssignFailure(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Classroom{
			{ID: 1, Name: "ปวช.1/1-ช่างยนต์"},
			{ID: 2, Name: "ปวช.1/2-เทคโนโลยีคอมพิวเตอร์"},
		},
		programs:     testPrograms(),
		votes:        map[uint][]uint{},
		failAssignOn: map[uint]bool{1: true},
	}

	res, err := Run(store, quietLogger())
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Fixed)
	if assert.NotNil(t, store.rooms[1].ProgramID) {
		assert.Equal(t, uint(1), *store.rooms[1].ProgramID)
	}
}

func TestRunSampleLimit(t *testing.T) {
	votes := make([]uint, 0, 150)
	for i := 0; i < 150; i++ {
		// 120 เสียงแรกเป็นสาขา 1 ที่เหลือสาขา 2 — เกิน 100 คนต้องถูกตัด
		if i < 120 {
			votes = append(votes, 1)
		} else {
			votes = append(votes, 2)
		}
	}
	store := &fakeStore{
		rooms:    []models.Classroom{{ID: 1, Name: "ปวช.9/9"}},
		programs: testPrograms(),
		votes:    map[uint][]uint{1: votes},
	}

	res, err := Run(store, quietLogger())
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Fixed)
	if assert.NotNil(t, store.rooms[0].ProgramID) {
		assert.Equal(t, uint(1), *store.rooms[0].ProgramID)
	}
}
