package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

func TestMergeVisitsNoRecords(t *testing.T) {
	rows := MergeVisits(roster3(), nil)

	assert.Len(t, rows, 3)
	for _, r := range rows {
		assert.Nil(t, r.Visit)
	}
}

func TestMergeVisitsPartial(t *testing.T) {
	visits := []models.VisitRecord{
		{ID: 10, StudentID: 2, AcademicYear: "2566", VisitNo: 1},
	}

	rows := MergeVisits(roster3(), visits)

	assert.Len(t, rows, 3)
	assert.Nil(t, rows[0].Visit)
	if assert.NotNil(t, rows[1].Visit) {
		assert.Equal(t, uint(10), rows[1].Visit.ID)
	}
	assert.Nil(t, rows[2].Visit)
}
