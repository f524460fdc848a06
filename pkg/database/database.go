package database

import (
	"eduquiz_backend/internal/config"
	"eduquiz_backend/internal/model"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认不自动迁移，需通过 -migrate / -migrate-only 显式触发
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Subject{},
		&model.ClassSubject{},
		&model.Experiment{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizAttempt{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 首次启动时创建默认管理员账号
	var count int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &model.User{
			Name:     "Administrator",
			Email:    "admin@eduquiz.local",
			Password: string(hashed),
			Role:     model.Admin,
		}
		if err := db.Create(admin).Error; err != nil {
			return nil, err
		}
		log.Println("Default admin account created: admin@eduquiz.local")
	}

	return db, nil
}
