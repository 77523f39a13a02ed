package services

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"taskhub/taskhub/database"
	"taskhub/taskhub/models"
)

type TaskServiceInterface interface {
	CreateTask(db *database.Database, input models.CreateTaskInput) (models.Task, error)
	GetTaskById(db *database.Database, id uint) (models.Task, error)
	UpdateTask(db *database.Database, id uint, patch models.UpdateTaskInput) (models.Task, error)
	DeleteTask(db *database.Database, id uint) error
}

type TaskService struct{}

func (s *TaskService) CreateTask(db *database.Database, input models.CreateTaskInput) (models.Task, error) {
	// Limits count characters, not bytes. A zero user_id is not a
	// validation failure; it falls through to the existence check and
	// surfaces as ErrUserNotFound like any other missing user.
	titleLen := utf8.RuneCountInString(input.Title)
	v := newValidator()
	v.check(titleLen >= 1 && titleLen <= 200, "title", "must be between 1 and 200 characters")
	if input.Description != nil {
		v.check(utf8.RuneCountInString(*input.Description) <= 1000, "description", "must be at most 1000 characters")
	}
	if err := v.err(); err != nil {
		return models.Task{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	// Tasks may only be created against an existing user.
	var userCount int64
	if err := tx.Model(&models.User{}).Where("id = ?", input.UserID).Count(&userCount).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}
	if userCount == 0 {
		tx.Rollback()
		return models.Task{}, ErrUserNotFound
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	}

	if err := tx.Create(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) GetTaskById(db *database.Database, id uint) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(db *database.Database, id uint, patch models.UpdateTaskInput) (models.Task, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	// Updates with a map so explicitly-sent zero values (empty title,
	// is_completed=false) are still written. user_id and created_at
	// are never part of the patch.
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = patch.Description
	}
	if patch.IsCompleted != nil {
		updates["is_completed"] = *patch.IsCompleted
	}

	if len(updates) > 0 {
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			tx.Rollback()
			return models.Task{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
