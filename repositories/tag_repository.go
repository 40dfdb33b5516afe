package repositories

import (
	"context"
	"strconv"
	"time"

	"blog-api/models"

	"gorm.io/gorm"
)

const tagResource = "Tag"

// TagActivity summarises the articles linked to one tag.
type TagActivity struct {
	ArticleCount int64
	LastActive   *time.Time
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	Delete(ctx context.Context, id uint) error
	CountArticlesByTag(ctx context.Context) (map[uint]int64, error)
	GetActivity(ctx context.Context) (map[uint]TagActivity, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	err := r.db.WithContext(ctx).Omit("Articles").Create(tag).Error
	return wrapError(err, tagResource, "create tag", "name="+tag.Name)
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		return nil, wrapError(err, tagResource, "get tag by name", "name="+name)
	}
	return &tag, nil
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	err := r.db.WithContext(ctx).Order("name asc").Find(&tags).Error
	if err != nil {
		return nil, wrapError(err, tagResource, "list tags", "all")
	}
	return tags, nil
}

// Delete removes the tag and its article links; the articles stay.
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	search := "id=" + strconv.FormatUint(uint64(id), 10)

	if err := db.Where("tag_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
		return wrapError(err, tagResource, "unlink tag articles", search)
	}

	result := db.Delete(&models.Tag{}, id)
	if result.Error != nil {
		return wrapError(result.Error, tagResource, "delete tag", search)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound(tagResource, search)
	}

	return nil
}

func (r *tagRepository) CountArticlesByTag(ctx context.Context) (map[uint]int64, error) {
	var results []struct {
		TagID uint
		Count int64
	}

	err := r.db.WithContext(ctx).
		Table("article_tags").
		Select("tag_id, COUNT(*) AS count").
		Group("tag_id").
		Scan(&results).Error
	if err != nil {
		return nil, wrapError(err, tagResource, "count articles by tag", "all")
	}

	counts := make(map[uint]int64, len(results))
	for _, result := range results {
		counts[result.TagID] = result.Count
	}

	return counts, nil
}

// GetActivity returns, per tag id, how many articles carry the tag and the
// newest article's creation time. Tags without articles are absent.
func (r *tagRepository) GetActivity(ctx context.Context) (map[uint]TagActivity, error) {
	var results []struct {
		TagID        uint
		ArticleCount int64
		LastActive   aggregateTime
	}

	err := r.db.WithContext(ctx).
		Table("article_tags").
		Select("article_tags.tag_id, COUNT(*) AS article_count, MAX(articles.created_at) AS last_active").
		Joins("JOIN articles ON articles.id = article_tags.article_id").
		Group("article_tags.tag_id").
		Scan(&results).Error
	if err != nil {
		return nil, wrapError(err, tagResource, "get tag activity", "all")
	}

	activity := make(map[uint]TagActivity, len(results))
	for _, result := range results {
		activity[result.TagID] = TagActivity{
			ArticleCount: result.ArticleCount,
			LastActive:   result.LastActive.Ptr(),
		}
	}

	return activity, nil
}
