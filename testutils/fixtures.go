package testutils

import (
	"testing"
	"time"

	"blog-api/models"
	"blog-api/services"

	"gorm.io/gorm"
)

// CreateArticle inserts an article with the given creation time and links it
// to the named tags, creating missing tags.
func CreateArticle(t *testing.T, db *gorm.DB, title string, createdAt time.Time, tags ...string) models.Article {
	t.Helper()

	article := models.Article{
		Title:     title,
		Slug:      services.GenerateSlug(title),
		Content:   "Content of " + title,
		Published: true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := db.Omit("Tags").Create(&article).Error; err != nil {
		t.Fatalf("Failed to create article %q: %v", title, err)
	}

	for _, name := range tags {
		tag := CreateTag(t, db, name)
		link := models.ArticleTag{ArticleID: article.ID, TagID: tag.ID}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("Failed to link tag %q: %v", name, err)
		}
		article.Tags = append(article.Tags, tag)
	}

	return article
}

// CreateTag returns the tag with that name, creating it when needed.
func CreateTag(t *testing.T, db *gorm.DB, name string) models.Tag {
	t.Helper()

	var tag models.Tag
	if err := db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
		t.Fatalf("Failed to create tag %q: %v", name, err)
	}
	return tag
}

func CreateComment(t *testing.T, db *gorm.DB, articleID uint, author string, createdAt time.Time) models.Comment {
	t.Helper()

	comment := models.Comment{
		Content:   "Comment by " + author,
		Author:    author,
		Email:     author + "@example.com",
		ArticleID: articleID,
		CreatedAt: createdAt,
	}
	if err := db.Omit("Article").Create(&comment).Error; err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	return comment
}
