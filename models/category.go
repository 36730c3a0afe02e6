package models

import (
	"time"
)

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Posts     []Post    `json:"posts,omitempty" gorm:"many2many:post_categories;"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRequest covers both create and rename payloads.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
