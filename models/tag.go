package models

import (
	"time"
)

type Tag struct {
	ID       uint      `json:"id" gorm:"primarykey"`
	Name     string    `json:"name" gorm:"uniqueIndex;not null"`
	Articles []Article `json:"-" gorm:"many2many:article_tags;"`

	ArticleCount *int64 `json:"articleCount,omitempty" gorm:"-"`
}

// TopicTag is a tag annotated for the topics listing.
type TopicTag struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	ArticleCount int64      `json:"articleCount"`
	LastActive   *time.Time `json:"lastActive"`
}
