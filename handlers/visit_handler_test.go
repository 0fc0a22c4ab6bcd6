package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestVisitUpdatesKeepsOmittedFields(t *testing.T) {
	// ส่งซ้ำโดยไม่แนบ visit_map/visit_date ต้องไม่ล้างคำตอบเดิม
	p := visitPayload{
		StudentID:    9,
		ClassroomID:  2,
		AcademicYear: "2569",
		VisitNo:      1,
	}

	updates := visitUpdates(p, 5, nil)
	assert.Equal(t, uint(2), updates["classroom_id"])
	assert.Equal(t, uint(5), updates["teacher_id"])
	assert.NotContains(t, updates, "visit_date")
	assert.NotContains(t, updates, "visit_map")
}

func TestVisitUpdatesWritesProvidedFields(t *testing.T) {
	answers := datatypes.JSON([]byte(`{"home":"บ้านเช่า"}`))
	p := visitPayload{
		StudentID:    9,
		ClassroomID:  2,
		AcademicYear: "2569",
		VisitNo:      1,
		VisitDate:    "2026-06-20",
		VisitMap:     map[string]any{"home": "บ้านเช่า"},
	}

	updates := visitUpdates(p, 5, answers)
	assert.Equal(t, "2026-06-20", updates["visit_date"])
	assert.Equal(t, answers, updates["visit_map"])
}
