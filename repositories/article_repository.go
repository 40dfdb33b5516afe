package repositories

import (
	"context"
	"strconv"

	"blog-api/models"

	"gorm.io/gorm"
)

const articleResource = "Article"

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetList(ctx context.Context, params models.ArticleListParams) ([]models.Article, int64, error)
	GetRelated(ctx context.Context, articleID uint, tagIDs []uint, limit int) ([]models.Article, error)
	Update(ctx context.Context, article *models.Article, fields map[string]any) error
	ReplaceTags(ctx context.Context, articleID uint, tagIDs []uint) error
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name asc")
}

// Create inserts the article row only; tag links are written by ReplaceTags.
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	err := r.db.WithContext(ctx).Omit("Tags").Create(article).Error
	return wrapError(err, articleResource, "create article", article.Slug)
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Tags", preloadTags).
		First(&article, id).Error
	if err != nil {
		return nil, wrapError(err, articleResource, "get article by id", "id="+strconv.FormatUint(uint64(id), 10))
	}
	return &article, nil
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Tags", preloadTags).
		Where("slug = ?", slug).
		First(&article).Error
	if err != nil {
		return nil, wrapError(err, articleResource, "get article by slug", "slug="+slug)
	}
	return &article, nil
}

func (r *articleRepository) GetList(ctx context.Context, params models.ArticleListParams) ([]models.Article, int64, error) {
	articles := []models.Article{}
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Article{})

	// Tag filters match articles linked to at least one of the tags.
	if len(params.TagNames) > 0 {
		tagged := r.db.Table("article_tags").
			Select("article_tags.article_id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name IN ?", params.TagNames)
		query = query.Where("articles.id IN (?)", tagged)
	}

	if params.TagID > 0 {
		tagged := r.db.Table("article_tags").
			Select("article_tags.article_id").
			Where("article_tags.tag_id = ?", params.TagID)
		query = query.Where("articles.id IN (?)", tagged)
	}

	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapError(err, articleResource, "count articles", "list")
	}

	err := query.
		Preload("Tags", preloadTags).
		Order("articles.created_at desc").
		Order("articles.id desc").
		Offset(models.Offset(params.Page, params.Limit)).
		Limit(params.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, wrapError(err, articleResource, "list articles", "list")
	}

	return articles, total, nil
}

func (r *articleRepository) GetRelated(ctx context.Context, articleID uint, tagIDs []uint, limit int) ([]models.Article, error) {
	articles := []models.Article{}
	if len(tagIDs) == 0 {
		return articles, nil
	}

	shared := r.db.Table("article_tags").
		Select("article_tags.article_id").
		Where("article_tags.tag_id IN ?", tagIDs)

	err := r.db.WithContext(ctx).
		Preload("Tags", preloadTags).
		Where("articles.id <> ?", articleID).
		Where("articles.id IN (?)", shared).
		Order("articles.created_at desc").
		Order("articles.id desc").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, wrapError(err, articleResource, "get related articles", "id="+strconv.FormatUint(uint64(articleID), 10))
	}

	return articles, nil
}

// Update writes the given columns only. Loaded associations on article are
// not touched.
func (r *articleRepository) Update(ctx context.Context, article *models.Article, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&models.Article{ID: article.ID}).Updates(fields).Error
	return wrapError(err, articleResource, "update article", "slug="+article.Slug)
}

// ReplaceTags clears the article's tag links and reconnects it to tagIDs.
func (r *articleRepository) ReplaceTags(ctx context.Context, articleID uint, tagIDs []uint) error {
	db := r.db.WithContext(ctx)
	id := "id=" + strconv.FormatUint(uint64(articleID), 10)

	if err := db.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
		return wrapError(err, articleResource, "clear article tags", id)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]models.ArticleTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, models.ArticleTag{ArticleID: articleID, TagID: tagID})
	}

	return wrapError(db.Create(&links).Error, articleResource, "link article tags", id)
}

// Delete removes the article and its tag links. Comments go with it through
// the foreign key cascade.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	search := "id=" + strconv.FormatUint(uint64(id), 10)

	if err := db.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
		return wrapError(err, articleResource, "unlink article tags", search)
	}

	result := db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return wrapError(result.Error, articleResource, "delete article", search)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound(articleResource, search)
	}

	return nil
}
