package models

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
}

// CreateUserInput is the request body for user creation.
type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
