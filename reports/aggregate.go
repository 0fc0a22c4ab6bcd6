// Package reports รวมข้อมูลเช็คชื่อรายวันเข้ากับรายชื่อนักเรียน
// แล้วสรุปเป็นรายงานรายวัน/สัปดาห์/เดือน พร้อมร้อยละของแต่ละสถานะ
package reports

import (
	"strconv"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

// RosterStudent ข้อมูลนักเรียนเท่าที่รายงานต้องใช้
type RosterStudent struct {
	ID        uint   `json:"id"`
	StudentID string `json:"student_id"`
	Username  string `json:"username"`
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Row นักเรียนหนึ่งคนในรายงานหนึ่งวัน
type Row struct {
	StudentID string `json:"student_id"`
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"status"`
}

type Counts struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	Late       int `json:"late"`
	Leave      int `json:"leave"`
	Internship int `json:"internship"`
	Total      int `json:"total"`
}

type DaySummary struct {
	Date     string            `json:"date"`
	Rows     []Row             `json:"rows"`
	Counts   Counts            `json:"counts"`
	Percents map[string]string `json:"percents"`
}

type Report struct {
	Students int          `json:"students"`
	CheckIn  []DaySummary `json:"checkIn"`
}

// ลำดับกลุ่มสถานะในหนึ่ง submission — ใช้ลำดับคงที่ให้ผลรวมซ้ำได้
var statusOrder = []string{
	models.StatusPresent,
	models.StatusAbsent,
	models.StatusLate,
	models.StatusLeave,
	models.StatusInternship,
}

func buckets(ci models.CheckIn) map[string][]string {
	return map[string][]string{
		models.StatusPresent:    ci.Present,
		models.StatusAbsent:     ci.Absent,
		models.StatusLate:       ci.Late,
		models.StatusLeave:      ci.Leave,
		models.StatusInternship: ci.Internship,
	}
}

// BuildDay รวมรายชื่อนักเรียนกับการเช็คชื่อของวันเดียว
// นักเรียนทุกคนในห้องปรากฏในผลลัพธ์เสมอ คนที่ไม่มีข้อมูลได้สถานะ unset
// (ไม่มีข้อมูล ≠ ขาดเรียน) — รายชื่อจาก submission ที่ไม่อยู่ในห้องถูกข้าม
func BuildDay(roster []RosterStudent, subs []models.CheckIn, date string) DaySummary {
	statusByCode := make(map[string]string)
	for _, sub := range subs {
		if sub.Date != date {
			continue
		}
		bk := buckets(sub)
		for _, st := range statusOrder {
			for _, code := range bk[st] {
				// นักเรียนถูกเช็คชื่อซ้ำ → ยึดสถานะแรกที่พบ
				if _, ok := statusByCode[code]; !ok {
					statusByCode[code] = st
				}
			}
		}
	}

	rows := make([]Row, 0, len(roster))
	var c Counts
	for _, s := range roster {
		st, ok := statusByCode[s.StudentID]
		if !ok {
			st = models.StatusUnset
		}
		rows = append(rows, Row{
			StudentID: s.StudentID,
			Title:     s.Title,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Status:    st,
		})
		switch st {
		case models.StatusPresent:
			c.Present++
		case models.StatusAbsent:
			c.Absent++
		case models.StatusLate:
			c.Late++
		case models.StatusLeave:
			c.Leave++
		case models.StatusInternship:
			c.Internship++
		}
	}
	c.Total = c.Present + c.Absent + c.Late + c.Leave + c.Internship

	return DaySummary{
		Date:     date,
		Rows:     rows,
		Counts:   c,
		Percents: Percents(c),
	}
}

// BuildRange สรุปทีละวันตลอดช่วง [start, end] (YYYY-MM-DD ทั้งคู่)
func BuildRange(roster []RosterStudent, subs []models.CheckIn, start, end string) Report {
	rep := Report{Students: len(roster), CheckIn: []DaySummary{}}
	for _, date := range DatesBetween(start, end) {
		rep.CheckIn = append(rep.CheckIn, BuildDay(roster, subs, date))
	}
	return rep
}

// Percents ร้อยละของแต่ละสถานะเป็นสตริงทศนิยม 2 ตำแหน่ง
// total เป็นศูนย์ต้องได้ "0.00" ทุกช่อง ไม่ใช่ NaN
func Percents(c Counts) map[string]string {
	return map[string]string{
		models.StatusPresent:    percent(c.Present, c.Total),
		models.StatusAbsent:     percent(c.Absent, c.Total),
		models.StatusLate:       percent(c.Late, c.Total),
		models.StatusLeave:      percent(c.Leave, c.Total),
		models.StatusInternship: percent(c.Internship, c.Total),
	}
}

func percent(n, total int) string {
	if total == 0 {
		return "0.00"
	}
	return strconv.FormatFloat(float64(n)/float64(total)*100, 'f', 2, 64)
}
