package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

func uptr(v uint) *uint { return &v }

func testPrograms() []models.Program {
	return []models.Program{
		{ID: 1, Name: "เทคโนโลยีคอมพิวเตอร์", DepartmentID: 1, LevelID: 1},
		{ID: 2, Name: "ช่างยนต์", DepartmentID: 2, LevelID: 1},
		{ID: 3, Name: "เทคโนโลยีสารสนเทศ (ม.6)", DepartmentID: 1, LevelID: 2},
	}
}

func ctxWith(votes map[uint][]uint) *Context {
	return &Context{
		Programs: testPrograms(),
		StudentPrograms: func(classroomID uint) []uint {
			return votes[classroomID]
		},
	}
}

func TestMajorityVote(t *testing.T) {
	ctx := ctxWith(map[uint][]uint{7: {2, 1, 1, 2, 1}})
	room := models.Classroom{ID: 7, Name: "ปวช.1/2"}

	pid := majorityVote(room, ctx)
	if assert.NotNil(t, pid) {
		assert.Equal(t, uint(1), *pid)
	}
}

func TestMajorityVoteTieKeepsFirstSeen(t *testing.T) {
	// คะแนนเสมอกัน → สาขาที่พบก่อนชนะ
	ctx := ctxWith(map[uint][]uint{7: {2, 1, 2, 1}})
	room := models.Classroom{ID: 7, Name: "ปวช.1/2"}

	pid := majorityVote(room, ctx)
	if assert.NotNil(t, pid) {
		assert.Equal(t, uint(2), *pid)
	}
}

func TestMajorityVoteNoStudents(t *testing.T) {
	ctx := ctxWith(map[uint][]uint{})
	assert.Nil(t, majorityVote(models.Classroom{ID: 9}, ctx))
}

func TestNamePatternSubstring(t *testing.T) {
	ctx := ctxWith(nil)
	room := models.Classroom{ID: 1, Name: "ปวช.1/1-ช่างยนต์"}

	pid := namePattern(room, ctx)
	if assert.NotNil(t, pid) {
		assert.Equal(t, uint(2), *pid)
	}
}

func TestNamePatternPrefersParenQualifier(t *testing.T) {
	ctx := ctxWith(nil)
	room := models.Classroom{ID: 1, Name: "ปวส.1/1-เทคโนโลยีสารสนเทศ (ม.6)"}

	pid := namePattern(room, ctx)
	if assert.NotNil(t, pid) {
		assert.Equal(t, uint(3), *pid)
	}
}

func TestNamePatternNoDash(t *testing.T) {
	ctx := ctxWith(nil)
	assert.Nil(t, namePattern(models.Classroom{ID: 1, Name: "ปวช.1/1"}, ctx))
}

func TestDepartmentLevelExactThenFallback(t *testing.T) {
	ctx := ctxWith(nil)

	pid := departmentLevel(models.Classroom{ID: 1, DepartmentID: uptr(1), LevelID: uptr(2)}, ctx)
	if assert.NotNil(t, pid) {
		assert.Equal(t, uint(3), *pid)
	}

	// ไม่มีสาขาในระดับนั้น → ลดเหลือแผนกอย่างเดียว
	pid = departmentLevel(models.Classroom{ID: 1, DepartmentID: uptr(2), LevelID: uptr(9)}, ctx)
	if assert.NotNil(t, pid) {
		assert.Equal(t, uint(2), *pid)
	}

	assert.Nil(t, departmentLevel(models.Classroom{ID: 1}, ctx))
}

func TestResolvePrecedenceMajorityBeatsName(t *testing.T) {
	// เสียงข้างมากชี้สาขา 1 แต่ชื่อห้องชี้สาขา 2 → เสียงข้างมากชนะ
	ctx := ctxWith(map[uint][]uint{5: {1, 1}})
	room := models.Classroom{ID: 5, Name: "ปวช.1/1-ช่างยนต์"}

	pid, strategy := Resolve(room, ctx)
	if assert.NotNil(t, pid) {
		assert.Equal(t, uint(1), *pid)
	}
	assert.Equal(t, "majority-vote", strategy)
}

func TestResolveNothingMatches(t *testing.T) {
	ctx := ctxWith(nil)
	pid, strategy := Resolve(models.Classroom{ID: 1, Name: "ห้องพิเศษ"}, ctx)
	assert.Nil(t, pid)
	assert.Equal(t, "", strategy)
}
