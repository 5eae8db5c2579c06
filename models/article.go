package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ArticleID    string    `json:"article_id" gorm:"type:uuid;primarykey"`
	Title        string    `json:"title" gorm:"type:varchar(100);not null"`
	Content      string    `json:"content" gorm:"type:varchar(1000);not null"`
	Created      time.Time `json:"created" gorm:"not null"`
	AuthorID     string    `json:"author_id" gorm:"type:uuid;not null"`
	Author       User      `json:"author" gorm:"foreignKey:AuthorID"`
	CountOfViews int       `json:"count_of_views" gorm:"default:0"`
	// Version is the optimistic concurrency token; bumped on every update.
	Version  int       `json:"-" gorm:"not null;default:1"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Tags     []Tag     `json:"tags" gorm:"many2many:article_tags;constraint:OnDelete:CASCADE"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ArticleID == "" {
		a.ArticleID = uuid.NewString()
	}
	return nil
}

// HasTag reports whether the article currently carries a tag with the given
// name (case-sensitive).
func (a *Article) HasTag(name string) bool {
	for _, t := range a.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}
