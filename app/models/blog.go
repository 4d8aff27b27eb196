package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type BlogCategory struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"type:text"`

	PostCount int64 `gorm:"-"`

	CreatedAt time.Time
}

type Tag struct {
	ID   string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name string `gorm:"size:50;not null"`
	Slug string `gorm:"size:50;not null;uniqueIndex"`

	// Filled by the popular-tags query, never written.
	PostCount int64 `gorm:"->;-:migration"`
}

type BlogPost struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title         string        `gorm:"size:200;not null"`
	Slug          string        `gorm:"size:200;not null;uniqueIndex"`
	AuthorID      string        `gorm:"size:36;not null;index"`
	Author        *User         `gorm:"foreignKey:AuthorID"`
	CategoryID    *string       `gorm:"size:36;index"`
	Category      *BlogCategory `gorm:"foreignKey:CategoryID"`
	Tags          []Tag         `gorm:"many2many:blog_post_tags;"`
	FeaturedImage string        `gorm:"size:255"`
	Excerpt       string        `gorm:"size:300"`
	Content       string        `gorm:"type:text;not null"`
	Views         uint          `gorm:"default:0"`
	IsPublished   bool          `gorm:"default:true;index"`
	IsFeatured    bool          `gorm:"default:false"`

	Comments []BlogComment `gorm:"foreignKey:PostID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// BeforeCreate derives the slug from the title when none was given.
func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	return nil
}

type BlogComment struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	PostID     string    `gorm:"size:36;not null;index"`
	Post       *BlogPost `gorm:"foreignKey:PostID"`
	AuthorID   string    `gorm:"size:36;not null;index"`
	Author     *User     `gorm:"foreignKey:AuthorID"`
	Content    string    `gorm:"type:text;not null"`
	IsApproved bool      `gorm:"default:true"`
	CreatedAt  time.Time
}
