package services

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"taskhub/taskhub/database"
	"taskhub/taskhub/models"
)

// DefaultUserLimit caps GetUsers when the caller does not supply a limit.
const DefaultUserLimit = 100

type UserServiceInterface interface {
	CreateUser(db *database.Database, input models.CreateUserInput) (models.User, error)
	GetUserById(db *database.Database, id uint) (models.User, error)
	GetUsers(db *database.Database, skip, limit int) ([]models.User, error)
	GetUserTasks(db *database.Database, id uint) ([]models.Task, error)
}

type UserService struct{}

func (s *UserService) CreateUser(db *database.Database, input models.CreateUserInput) (models.User, error) {
	// Limits count characters, not bytes.
	nameLen := utf8.RuneCountInString(input.Name)
	v := newValidator()
	v.check(nameLen >= 2 && nameLen <= 100, "name", "must be between 2 and 100 characters")
	v.check(input.Email != "", "email", "must be provided")
	v.check(utf8.RuneCountInString(input.Email) <= 100, "email", "must be at most 100 characters")
	if err := v.err(); err != nil {
		return models.User{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.User{}, tx.Error
	}

	var count int64
	if err := tx.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}
	if count > 0 {
		tx.Rollback()
		return models.User{}, ErrEmailExists
	}

	user := models.User{Name: input.Name, Email: input.Email}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		// A concurrent create can slip past the count above; the
		// unique index on email is the final authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailExists
		}
		return models.User{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id uint) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUsers(db *database.Database, skip, limit int) ([]models.User, error) {
	// An explicit limit of 0 is honored and yields an empty page;
	// only a negative limit falls back to the default.
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = DefaultUserLimit
	}

	users := []models.User{}
	if err := db.DB.Order("id").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUserTasks(db *database.Database, id uint) ([]models.Task, error) {
	var count int64
	if err := db.DB.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}

	tasks := []models.Task{}
	if err := db.DB.Where("user_id = ?", id).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

var UserServiceInstance UserServiceInterface = &UserService{}
