package reports

import "github.com/Sh0ckWaveZero/nktc-app-sub003/models"

// VisitRow นักเรียนหนึ่งคนพร้อมบันทึกเยี่ยมบ้าน (null เมื่อยังไม่ได้เยี่ยม)
type VisitRow struct {
	StudentID string              `json:"student_id"`
	Title     string              `json:"title"`
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	Visit     *models.VisitRecord `json:"visit"`
}

// MergeVisits จับคู่บันทึกเยี่ยมบ้านกับรายชื่อนักเรียน
// ไม่มีบันทึกเลยก็คืนนักเรียนครบทุกคนโดย visit เป็น null — ไม่ใช่ error
func MergeVisits(roster []RosterStudent, visits []models.VisitRecord) []VisitRow {
	byStudent := make(map[uint]*models.VisitRecord, len(visits))
	for i := range visits {
		v := &visits[i]
		if _, ok := byStudent[v.StudentID]; !ok {
			byStudent[v.StudentID] = v
		}
	}

	rows := make([]VisitRow, 0, len(roster))
	for _, s := range roster {
		rows = append(rows, VisitRow{
			StudentID: s.StudentID,
			Title:     s.Title,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Visit:     byStudent[s.ID],
		})
	}
	return rows
}
