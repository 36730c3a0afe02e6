package models

import (
	"time"
)

type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,max=30"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=500"`
}
