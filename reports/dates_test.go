package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatesBetween(t *testing.T) {
	got := DatesBetween("2024-01-30", "2024-02-02")
	assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, got)
}

func TestDatesBetweenSingleDay(t *testing.T) {
	assert.Equal(t, []string{"2024-01-15"}, DatesBetween("2024-01-15", "2024-01-15"))
}

func TestDatesBetweenInvalid(t *testing.T) {
	assert.Empty(t, DatesBetween("2024-01-17", "2024-01-15"))
	assert.Empty(t, DatesBetween("15/01/2024", "2024-01-17"))
}

func TestWeekRangeStartsMonday(t *testing.T) {
	// 2024-01-10 เป็นวันพุธ
	wed := time.Date(2024, 1, 10, 13, 0, 0, 0, time.UTC)
	start, end := WeekRange(wed)
	assert.Equal(t, "2024-01-08", start)
	assert.Equal(t, "2024-01-14", end)

	// วันอาทิตย์ยังนับเป็นสัปดาห์เดิม
	sun := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	start, end = WeekRange(sun)
	assert.Equal(t, "2024-01-08", start)
	assert.Equal(t, "2024-01-14", end)
}

func TestMonthRange(t *testing.T) {
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	start, end := MonthRange(feb)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end) // ปีอธิกสุรทิน
}
