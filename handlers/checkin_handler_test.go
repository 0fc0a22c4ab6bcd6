package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/reports"
)

func checkInRoster() []reports.RosterStudent {
	return []reports.RosterStudent{
		{ID: 1, StudentID: "65010001", FirstName: "สมชาย", LastName: "ใจดี"},
		{ID: 2, StudentID: "65010002", FirstName: "สมหญิง", LastName: "ขยันเรียน"},
		{ID: 3, StudentID: "65010003", FirstName: "วิชัย", LastName: "เรียนดี"},
	}
}

func TestValidateBucketsAcceptsRosterCodes(t *testing.T) {
	p := checkInPayload{
		ClassroomID: 1,
		Date:        "2026-06-15",
		Present:     []string{"65010001", "65010002"},
		Absent:      []string{"65010003"},
	}

	unknown, duplicate := validateBuckets(checkInRoster(), p)
	assert.Empty(t, unknown)
	assert.Empty(t, duplicate)
}

func TestValidateBucketsRejectsForeignCode(t *testing.T) {
	// รหัสที่พิมพ์ผิดหรือเป็นของห้องอื่น ต้องไม่หลุดลงฐานข้อมูล
	p := checkInPayload{
		ClassroomID: 1,
		Date:        "2026-06-15",
		Present:     []string{"99999999"},
	}

	unknown, duplicate := validateBuckets(checkInRoster(), p)
	assert.Equal(t, []string{"99999999"}, unknown)
	assert.Empty(t, duplicate)
}

func TestValidateBucketsRejectsCrossBucketDuplicate(t *testing.T) {
	p := checkInPayload{
		ClassroomID: 1,
		Date:        "2026-06-15",
		Present:     []string{"65010001"},
		Late:        []string{"65010001"},
	}

	unknown, duplicate := validateBuckets(checkInRoster(), p)
	assert.Empty(t, unknown)
	assert.Equal(t, []string{"65010001"}, duplicate)
}

func TestValidateBucketsEmptyPayload(t *testing.T) {
	unknown, duplicate := validateBuckets(checkInRoster(), checkInPayload{ClassroomID: 1, Date: "2026-06-15"})
	assert.Empty(t, unknown)
	assert.Empty(t, duplicate)
}
