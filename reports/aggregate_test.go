package reports

import (
	"strconv"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

func roster3() []RosterStudent {
	return []RosterStudent{
		{ID: 1, StudentID: "65010001", Username: "65010001", Title: "นาย", FirstName: "สมชาย", LastName: "ใจดี"},
		{ID: 2, StudentID: "65010002", Username: "65010002", Title: "นางสาว", FirstName: "สมหญิง", LastName: "ตั้งใจ"},
		{ID: 3, StudentID: "65010003", Username: "65010003", Title: "นาย", FirstName: "อนันต์", LastName: "เพียรดี"},
	}
}

func TestBuildDayMergesRosterWithCheckIn(t *testing.T) {
	// ปวช.1/1 เทคโนโลยีคอมพิวเตอร์: เช็คชื่อ 2 คนจาก 3
	subs := []models.CheckIn{{
		Date:        "2024-01-15",
		ClassroomID: 1,
		Present:     pq.StringArray{"65010001"},
		Absent:      pq.StringArray{"65010002"},
	}}

	day := BuildDay(roster3(), subs, "2024-01-15")

	assert.Len(t, day.Rows, 3)
	assert.Equal(t, models.StatusPresent, day.Rows[0].Status)
	assert.Equal(t, models.StatusAbsent, day.Rows[1].Status)
	assert.Equal(t, models.StatusUnset, day.Rows[2].Status)

	assert.Equal(t, Counts{Present: 1, Absent: 1, Total: 2}, day.Counts)
	assert.Equal(t, "50.00", day.Percents[models.StatusPresent])
	assert.Equal(t, "50.00", day.Percents[models.StatusAbsent])
	assert.Equal(t, "0.00", day.Percents[models.StatusLate])
}

func TestBuildDayNoCheckInData(t *testing.T) {
	day := BuildDay(roster3(), nil, "2024-01-15")

	// ไม่มีข้อมูลไม่ใช่ error: นักเรียนครบทุกคน สถานะ unset
	assert.Len(t, day.Rows, 3)
	for _, r := range day.Rows {
		assert.Equal(t, models.StatusUnset, r.Status)
	}
	assert.Equal(t, 0, day.Counts.Total)
	for _, v := range day.Percents {
		assert.Equal(t, "0.00", v)
	}
}

func TestBuildDayRosterUnionNeverShrinks(t *testing.T) {
	// รหัสแปลกปลอมใน submission ต้องไม่เพิ่มแถว และนักเรียนซ้ำสองกลุ่มยึดกลุ่มแรก
	subs := []models.CheckIn{{
		Date:    "2024-01-15",
		Present: pq.StringArray{"65010001", "99999999"},
		Late:    pq.StringArray{"65010001"},
	}}

	day := BuildDay(roster3(), subs, "2024-01-15")

	assert.Len(t, day.Rows, 3)
	assert.Equal(t, models.StatusPresent, day.Rows[0].Status)
	assert.Equal(t, 1, day.Counts.Total)
}

func TestBuildDayIgnoresOtherDates(t *testing.T) {
	subs := []models.CheckIn{{
		Date:    "2024-01-14",
		Present: pq.StringArray{"65010001"},
	}}

	day := BuildDay(roster3(), subs, "2024-01-15")
	assert.Equal(t, 0, day.Counts.Total)
}

func TestPercentsSumToHundred(t *testing.T) {
	c := Counts{Present: 20, Absent: 4, Late: 3, Leave: 2, Internship: 1}
	c.Total = 30
	p := Percents(c)

	sum := 0.0
	for _, v := range p {
		f, err := strconv.ParseFloat(v, 64)
		assert.NoError(t, err)
		sum += f
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestPercentsZeroTotal(t *testing.T) {
	p := Percents(Counts{})
	for status, v := range p {
		assert.Equalf(t, "0.00", v, "status %s", status)
	}
}

func TestBuildRange(t *testing.T) {
	subs := []models.CheckIn{
		{Date: "2024-01-15", Present: pq.StringArray{"65010001", "65010002", "65010003"}},
		{Date: "2024-01-16", Absent: pq.StringArray{"65010001"}},
	}

	rep := BuildRange(roster3(), subs, "2024-01-15", "2024-01-17")

	assert.Equal(t, 3, rep.Students)
	assert.Len(t, rep.CheckIn, 3)

	assert.Equal(t, "2024-01-15", rep.CheckIn[0].Date)
	assert.Equal(t, 3, rep.CheckIn[0].Counts.Present)
	assert.Equal(t, "100.00", rep.CheckIn[0].Percents[models.StatusPresent])

	assert.Equal(t, 1, rep.CheckIn[1].Counts.Absent)

	// วันที่ไม่มีการเช็คชื่อเลยยังอยู่ในรายงาน
	assert.Equal(t, "2024-01-17", rep.CheckIn[2].Date)
	assert.Equal(t, 0, rep.CheckIn[2].Counts.Total)
	assert.Len(t, rep.CheckIn[2].Rows, 3)
}

func TestBuildRangeEmptyRoster(t *testing.T) {
	rep := BuildRange(nil, nil, "2024-01-15", "2024-01-15")
	assert.Equal(t, 0, rep.Students)
	assert.Len(t, rep.CheckIn, 1)
	assert.Empty(t, rep.CheckIn[0].Rows)
	assert.Equal(t, "0.00", rep.CheckIn[0].Percents[models.StatusPresent])
}
