package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Author    string    `json:"author" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	ArticleID uint      `json:"articleId" gorm:"not null;index"`
	Article   *Article  `json:"-" gorm:"foreignKey:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}
