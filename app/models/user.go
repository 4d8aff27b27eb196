package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Username      string `gorm:"size:100;not null;uniqueIndex"`
	FirstName     string `gorm:"size:100;not null"`
	LastName      string `gorm:"size:100;not null"`
	Email         string `gorm:"size:100;not null;uniqueIndex"`
	Phone         string `gorm:"size:20"`
	StreetAddress string `gorm:"size:255"`
	Password      string `gorm:"size:255;not null" json:"-"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt
}
