package repositories

import (
	"fmt"

	"blog-api/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the blog tables.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Article{}, "Tags", &models.ArticleTag{}); err != nil {
		return fmt.Errorf("setup article tags join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Articles", &models.ArticleTag{}); err != nil {
		return fmt.Errorf("setup tag articles join table: %w", err)
	}

	if err := db.AutoMigrate(&models.Tag{}, &models.Article{}, &models.Comment{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
