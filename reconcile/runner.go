package reconcile

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

// จำนวนนักเรียนสูงสุดที่ใช้โหวตต่อหนึ่งห้อง
const voteSampleLimit = 100

// Store ข้อมูลที่งานซ่อมต้องอ่าน/เขียน
type Store interface {
	ClassroomsMissingProgram() ([]models.Classroom, error)
	StudentPrograms(classroomID uint, limit int) ([]uint, error)
	Programs() ([]models.Program, error)
	AssignProgram(classroomID, programID uint) error
}

// Result สรุปผลหนึ่งรอบ
type Result struct {
	RunID      string   `json:"run_id"`
	Checked    int      `json:"checked"`
	Fixed      int      `json:"fixed"`
	Failed     int      `json:"failed"`
	Unresolved []string `json:"unresolved"` // ชื่อห้องที่ยังจับคู่ไม่ได้
}

// Run ไล่ซ่อมทีละห้อง ห้องที่อัปเดตไม่สำเร็จถูก log แล้วไปต่อ
// รันซ้ำได้ปลอดภัย: ห้องที่ซ่อมแล้วจะไม่ติดเงื่อนไข program IS NULL อีก
func Run(store Store, log *logrus.Logger) (Result, error) {
	res := Result{RunID: uuid.NewString(), Unresolved: []string{}}

	rooms, err := store.ClassroomsMissingProgram()
	if err != nil {
		return res, err
	}
	programs, err := store.Programs()
	if err != nil {
		return res, err
	}

	ctx := &Context{
		Programs: programs,
		StudentPrograms: func(classroomID uint) []uint {
			ids, err := store.StudentPrograms(classroomID, voteSampleLimit)
			if err != nil {
				log.WithError(err).WithField("classroom_id", classroomID).
					Warn("reconcile: load student programs failed")
				return nil
			}
			return ids
		},
	}

	for _, room := range rooms {
		res.Checked++
		pid, strategy := Resolve(room, ctx)
		if pid == nil {
			res.Unresolved = append(res.Unresolved, room.Name)
			log.WithFields(logrus.Fields{
				"run_id":    res.RunID,
				"classroom": room.Name,
			}).Info("reconcile: no matching program")
			continue
		}
		if err := store.AssignProgram(room.ID, *pid); err != nil {
			res.Failed++
			log.WithError(err).WithFields(logrus.Fields{
				"run_id":    res.RunID,
				"classroom": room.Name,
			}).Error("reconcile: assign program failed")
			continue
		}
		res.Fixed++
		log.WithFields(logrus.Fields{
			"run_id":     res.RunID,
			"classroom":  room.Name,
			"program_id": *pid,
			"strategy":   strategy,
		}).Info("reconcile: program assigned")
	}
	return res, nil
}
