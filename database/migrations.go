package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskhub/taskhub/models"
)

// RunMigrations keeps the users and tasks tables up to date.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
	)
	if err != nil {
		logrus.Errorf("Migration failed: %v", err)
		return err
	}
	return nil
}
