package thaidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearConversion(t *testing.T) {
	assert.Equal(t, 2567, BuddhistYear(2024))
	assert.Equal(t, 2024, GregorianYear(2567))
	assert.Equal(t, 2024, GregorianYear(BuddhistYear(2024)))
}

func TestFormatLong(t *testing.T) {
	// 2024-01-02 เป็นวันอังคาร
	d := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "วันอังคารที่ 2 มกราคม 2567", FormatLong(d))
}

func TestFormatShort(t *testing.T) {
	d := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "31 ธ.ค. 2567", FormatShort(d))
}

func TestMonthAndWeekdayNames(t *testing.T) {
	assert.Equal(t, "พฤษภาคม", MonthName(time.May))
	assert.Equal(t, "พ.ค.", MonthAbbr(time.May))
	assert.Equal(t, "อาทิตย์", WeekdayName(time.Sunday))
	assert.Equal(t, "เสาร์", WeekdayName(time.Saturday))
}

func TestAcademicYear(t *testing.T) {
	// ภาคเรียนแรกเริ่มพฤษภาคม: มี.ค. 2024 ยังเป็นปีการศึกษา 2566
	assert.Equal(t, "2566", AcademicYear(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2567", AcademicYear(time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2567", AcademicYear(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
}
