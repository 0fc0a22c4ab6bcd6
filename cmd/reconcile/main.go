// คำสั่ง batch จับคู่ห้องเรียนที่ยังไม่มีสาขาวิชา รันซ้ำได้ปลอดภัย
package main

import (
	"fmt"
	"os"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/config"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/logger"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/reconcile"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg)
	database.Connect(cfg)

	res, err := reconcile.Run(reconcile.NewStore(database.DB), logger.Log)
	if err != nil {
		logger.Log.WithError(err).Error("reconcile run failed")
		os.Exit(1)
	}

	fmt.Printf("run %s: checked %d classrooms, fixed %d, failed %d\n",
		res.RunID, res.Checked, res.Fixed, res.Failed)
	for _, name := range res.Unresolved {
		fmt.Printf("  unresolved: %s\n", name)
	}
}
