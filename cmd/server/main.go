package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/config"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/handlers"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/logger"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/reconcile"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg)
	log := logger.Log

	// เชื่อมต่อฐานข้อมูล (ถ้า DB ยังไม่ขึ้น โปรแกรมจะ error ทันที — เหมาะสำหรับ early fail)
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	// งานซ่อม classroom↔program ตามตารางเวลา (ปิดไว้ถ้าไม่ตั้ง RECONCILE_CRON)
	if cfg.ReconcileCron != "" {
		c := cron.New()
		_, err := c.AddFunc(cfg.ReconcileCron, func() {
			res, err := reconcile.Run(reconcile.NewStore(database.DB), log)
			if err != nil {
				log.WithError(err).Error("scheduled reconcile failed")
				return
			}
			log.WithField("fixed", res.Fixed).WithField("unresolved", len(res.Unresolved)).
				Info("scheduled reconcile finished")
		})
		if err != nil {
			log.WithError(err).Fatalf("invalid RECONCILE_CRON %q", cfg.ReconcileCron)
		}
		c.Start()
		defer c.Stop()
	}

	addr := ":" + cfg.AppPort
	log.Infof("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
