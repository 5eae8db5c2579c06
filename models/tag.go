package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	TagID    string    `json:"tag_id" gorm:"type:uuid;primarykey"`
	Name     string    `json:"name" gorm:"type:varchar(20);uniqueIndex;not null"`
	Articles []Article `json:"articles,omitempty" gorm:"many2many:article_tags"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.TagID == "" {
		t.TagID = uuid.NewString()
	}
	return nil
}
