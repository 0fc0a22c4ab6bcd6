// Package reconcile ซ่อมข้อมูลห้องเรียนที่ยังไม่ผูกกับสาขาวิชา
// เป็นงาน batch แบบ best-effort: ลองทีละกลยุทธ์ตามลำดับ ห้องที่จับคู่ไม่ได้
// จะถูกรายงานไว้ ไม่ถือว่างานล้มเหลว
package reconcile

import (
	"regexp"
	"strings"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

// Context ข้อมูลประกอบการจับคู่ที่กลยุทธ์ใช้ร่วมกัน
type Context struct {
	Programs []models.Program
	// สาขาวิชาของนักเรียนในห้อง เรียงตามลำดับที่อ่านจากฐานข้อมูล
	StudentPrograms func(classroomID uint) []uint
}

// Strategy กลยุทธ์จับคู่หนึ่งแบบ — ฟังก์ชัน pure คืน program id หรือ nil
type Strategy struct {
	Name  string
	Match func(c models.Classroom, ctx *Context) *uint
}

// Strategies ลำดับการลองจับคู่: เสียงข้างมากของนักเรียน → ชื่อห้อง → แผนก+ระดับ
var Strategies = []Strategy{
	{Name: "majority-vote", Match: majorityVote},
	{Name: "name-pattern", Match: namePattern},
	{Name: "department-level", Match: departmentLevel},
}

// Resolve ลองทุกกลยุทธ์ตามลำดับ กลยุทธ์แรกที่ได้ผลชนะ
func Resolve(c models.Classroom, ctx *Context) (*uint, string) {
	for _, s := range Strategies {
		if pid := s.Match(c, ctx); pid != nil {
			return pid, s.Name
		}
	}
	return nil, ""
}

// majorityVote เลือกสาขาวิชาที่นักเรียนในห้องสังกัดมากที่สุด
// คะแนนเท่ากันยึดสาขาที่พบก่อน (เทียบด้วย > ไม่ใช่ >= จึงไม่ถูกแทนที่ทีหลัง)
func majorityVote(c models.Classroom, ctx *Context) *uint {
	if ctx.StudentPrograms == nil {
		return nil
	}
	votes := make(map[uint]int)
	var best uint
	bestN := 0
	for _, pid := range ctx.StudentPrograms(c.ID) {
		votes[pid]++
		if votes[pid] > bestN {
			bestN = votes[pid]
			best = pid
		}
	}
	if bestN == 0 {
		return nil
	}
	return &best
}

var parenRe = regexp.MustCompile(`\(([^)]+)\)`)

// namePattern เดาจากชื่อห้อง: ส่วนหลังเครื่องหมาย "-" คือชื่อสาขา
// ถ้ามีวงเล็บกำกับ เช่น "(ม.6)" ให้เลือกสาขาที่ชื่อมีคำนั้นก่อน
func namePattern(c models.Classroom, ctx *Context) *uint {
	parts := strings.SplitN(c.Name, "-", 2)
	if len(parts) < 2 {
		return nil
	}
	frag := strings.TrimSpace(parts[1])
	if frag == "" {
		return nil
	}

	qualifier := ""
	if m := parenRe.FindStringSubmatch(frag); m != nil {
		qualifier = strings.TrimSpace(m[1])
		frag = strings.TrimSpace(parenRe.ReplaceAllString(frag, ""))
	}

	if qualifier != "" {
		for _, p := range ctx.Programs {
			if strings.Contains(p.Name, qualifier) && (frag == "" || strings.Contains(p.Name, frag)) {
				pid := p.ID
				return &pid
			}
		}
	}
	if frag == "" {
		return nil
	}
	for _, p := range ctx.Programs {
		if strings.Contains(p.Name, frag) || strings.Contains(frag, p.Name) {
			pid := p.ID
			return &pid
		}
	}
	return nil
}

// departmentLevel หาสาขาที่อยู่แผนกและระดับเดียวกับห้อง
// ไม่เจอจึงลดเงื่อนไขเหลือแผนกอย่างเดียว
func departmentLevel(c models.Classroom, ctx *Context) *uint {
	if c.DepartmentID == nil {
		return nil
	}
	if c.LevelID != nil {
		for _, p := range ctx.Programs {
			if p.DepartmentID == *c.DepartmentID && p.LevelID == *c.LevelID {
				pid := p.ID
				return &pid
			}
		}
	}
	for _, p := range ctx.Programs {
		if p.DepartmentID == *c.DepartmentID {
			pid := p.ID
			return &pid
		}
	}
	return nil
}
