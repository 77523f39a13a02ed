package models

import "time"

type Task struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:200;not null" json:"title"`
	// Optional; serializes as null when never set.
	Description *string   `gorm:"size:1000" json:"description"`
	IsCompleted bool      `gorm:"default:false" json:"is_completed"`
	UserID      uint      `gorm:"not null;index;constraint:OnDelete:RESTRICT" json:"user_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// CreateTaskInput is the request body for task creation.
type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	UserID      uint    `json:"user_id"`
}

// UpdateTaskInput is a partial update: only fields present in the
// request are applied, so every field is a pointer. A field set to its
// zero value in the request is still applied; an absent field is nil.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
}
