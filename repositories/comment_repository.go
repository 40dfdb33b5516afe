package repositories

import (
	"context"
	"strconv"

	"blog-api/models"

	"gorm.io/gorm"
)

const commentResource = "Comment"

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByArticle(ctx context.Context, articleID uint, page, limit int) ([]models.Comment, int64, error)
	GetAllByArticle(ctx context.Context, articleID uint) ([]models.Comment, error)
	CountByArticles(ctx context.Context, articleIDs []uint) (map[uint]int64, error)
	Delete(ctx context.Context, id uint) error
	DeleteOrphans(ctx context.Context) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Omit("Article").Create(comment).Error
	return wrapError(err, commentResource, "create comment", "article_id="+strconv.FormatUint(uint64(comment.ArticleID), 10))
}

func (r *commentRepository) GetByArticle(ctx context.Context, articleID uint, page, limit int) ([]models.Comment, int64, error) {
	comments := []models.Comment{}
	var total int64
	search := "article_id=" + strconv.FormatUint(uint64(articleID), 10)

	query := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("article_id = ?", articleID).
		Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapError(err, commentResource, "count comments", search)
	}

	err := query.
		Order("created_at desc").
		Order("id desc").
		Offset(models.Offset(page, limit)).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, wrapError(err, commentResource, "list comments", search)
	}

	return comments, total, nil
}

func (r *commentRepository) GetAllByArticle(ctx context.Context, articleID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at desc").
		Order("id desc").
		Find(&comments).Error
	if err != nil {
		return nil, wrapError(err, commentResource, "list article comments", "article_id="+strconv.FormatUint(uint64(articleID), 10))
	}
	return comments, nil
}

func (r *commentRepository) CountByArticles(ctx context.Context, articleIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(articleIDs))
	if len(articleIDs) == 0 {
		return counts, nil
	}

	var results []struct {
		ArticleID uint
		Count     int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("article_id, COUNT(*) AS count").
		Where("article_id IN ?", articleIDs).
		Group("article_id").
		Scan(&results).Error
	if err != nil {
		return nil, wrapError(err, commentResource, "count comments by article", "batch")
	}

	for _, result := range results {
		counts[result.ArticleID] = result.Count
	}

	return counts, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	search := "id=" + strconv.FormatUint(uint64(id), 10)

	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return wrapError(result.Error, commentResource, "delete comment", search)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound(commentResource, search)
	}

	return nil
}

// DeleteOrphans removes comments whose article no longer exists. Needed once
// for databases created before the cascading foreign key was in place.
func (r *commentRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	existing := r.db.Model(&models.Article{}).Select("id")

	result := r.db.WithContext(ctx).
		Where("article_id NOT IN (?)", existing).
		Delete(&models.Comment{})
	if result.Error != nil {
		return 0, wrapError(result.Error, commentResource, "delete orphan comments", "all")
	}

	return result.RowsAffected, nil
}
