package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/config"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	// ----- AutoMigrate โครงสร้างทั้งหมดของเรา -----
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Teacher{},
		&models.TeacherOnClassroom{},
		&models.Department{},
		&models.Level{},
		&models.Program{},
		&models.Classroom{},
		&models.Student{},
		&models.CheckIn{},
		&models.VisitRecord{},
		&models.GoodnessRecord{},
		&models.BadnessRecord{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
