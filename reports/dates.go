package reports

import "time"

const dateLayout = "2006-01-02"

// DatesBetween ทุกวันในช่วง [start, end] — ช่วงกลับด้านหรือ parse ไม่ได้คืนลิสต์ว่าง
func DatesBetween(start, end string) []string {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil
	}
	var out []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(dateLayout))
	}
	return out
}

// WeekRange ช่วงวันจันทร์–อาทิตย์ของสัปดาห์ที่ t อยู่
func WeekRange(t time.Time) (string, string) {
	// Go: Sunday=0 ... Saturday=6; ต้องการ Monday=0
	offset := (int(t.Weekday()) + 6) % 7
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start.Format(dateLayout), end.Format(dateLayout)
}

// MonthRange วันแรกถึงวันสุดท้ายของเดือนที่ t อยู่
func MonthRange(t time.Time) (string, string) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start.Format(dateLayout), end.Format(dateLayout)
}
