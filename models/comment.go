package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	CommentID string    `json:"comment_id" gorm:"type:uuid;primarykey"`
	ArticleID string    `json:"article_id" gorm:"type:uuid;not null"`
	Title     string    `json:"title"`
	Content   string    `json:"content" gorm:"type:varchar(200);not null"`
	Created   time.Time `json:"created" gorm:"not null"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid;not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.CommentID == "" {
		c.CommentID = uuid.NewString()
	}
	return nil
}
