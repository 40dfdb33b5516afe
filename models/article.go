package models

import (
	"time"
)

type Article struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"not null"`
	Slug       string    `json:"slug" gorm:"uniqueIndex;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Excerpt    *string   `json:"excerpt"`
	CoverImage *string   `json:"coverImage"`
	Published  bool      `json:"published" gorm:"not null"`
	Tags       []Tag     `json:"tags" gorm:"many2many:article_tags;"`
	CreatedAt  time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Filled by the service depending on the view: the full comment list for
	// single-article fetches, the count for list pages.
	Comments     *[]Comment `json:"comments,omitempty" gorm:"-"`
	CommentCount *int64     `json:"commentCount,omitempty" gorm:"-"`
}

// ArticleTag is the join row between articles and tags.
type ArticleTag struct {
	ArticleID uint `json:"articleId" gorm:"primaryKey"`
	TagID     uint `json:"tagId" gorm:"primaryKey;index"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
