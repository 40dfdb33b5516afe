package services

import (
	"context"
	"strings"
	"time"

	"blog-api/metrics"
	"blog-api/models"
	"blog-api/repositories"

	"go.uber.org/zap"
)

const relatedArticlesLimit = 4

type ArticleService interface {
	List(ctx context.Context, page, limit int, tagNames []string) (*models.ArticleListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetByID(ctx context.Context, rawID string) (*models.Article, error)
	GetRelated(ctx context.Context, rawID string) ([]models.Article, error)
	Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	Update(ctx context.Context, slug string, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, slug string) (*models.MessageResponse, error)
}

type articleService struct {
	gateway   repositories.Gateway
	formatter Formatter
	logger    *zap.Logger
}

func NewArticleService(gateway repositories.Gateway, formatter Formatter, logger *zap.Logger) ArticleService {
	if formatter == nil {
		formatter = PlainFormatter{}
	}
	return &articleService{
		gateway:   gateway,
		formatter: formatter,
		logger:    logger,
	}
}

func (s *articleService) List(ctx context.Context, page, limit int, tagNames []string) (*models.ArticleListResponse, error) {
	params := models.ArticleListParams{
		Page:     page,
		Limit:    limit,
		TagNames: tagNames,
	}

	articles, total, err := s.gateway.Articles().GetList(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := attachCommentCounts(ctx, s.gateway, articles); err != nil {
		return nil, err
	}

	return &models.ArticleListResponse{
		Articles: articles,
		Meta:     models.NewPageMeta(total, page, limit),
	}, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.gateway.Articles().GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.withDetails(ctx, article)
}

func (s *articleService) GetByID(ctx context.Context, rawID string) (*models.Article, error) {
	id, err := parseID(rawID, "id")
	if err != nil {
		return nil, err
	}

	article, err := s.gateway.Articles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withDetails(ctx, article)
}

func (s *articleService) GetRelated(ctx context.Context, rawID string) ([]models.Article, error) {
	id, err := parseID(rawID, "id")
	if err != nil {
		return nil, err
	}

	article, err := s.gateway.Articles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tagIDs := make([]uint, 0, len(article.Tags))
	for _, tag := range article.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	return s.gateway.Articles().GetRelated(ctx, article.ID, tagIDs, relatedArticlesLimit)
}

func (s *articleService) Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	slug := GenerateSlug(req.Title)
	if strings.Trim(slug, "-") == "" {
		return nil, &models.ErrorInvalidInput{
			Message: "Invalid title",
			Fields:  map[string][]string{"title": {"title must contain at least one letter or digit"}},
		}
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	article := &models.Article{
		Title:      req.Title,
		Slug:       slug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Published:  published,
	}

	var tagsCreated int
	err := s.gateway.Transaction(ctx, func(tx repositories.Gateway) error {
		if err := tx.Articles().Create(ctx, article); err != nil {
			return err
		}

		tagIDs, created, err := s.upsertTags(ctx, tx, req.Tags)
		if err != nil {
			return err
		}
		tagsCreated = created

		return tx.Articles().ReplaceTags(ctx, article.ID, tagIDs)
	})
	if err != nil {
		return nil, err
	}

	metrics.ArticlesCreated.Inc()
	metrics.TagsCreated.Add(float64(tagsCreated))
	s.logger.Info("article created",
		zap.Uint("id", article.ID),
		zap.String("slug", article.Slug),
		zap.Int("tags", len(req.Tags)),
	)

	return s.gateway.Articles().GetByID(ctx, article.ID)
}

func (s *articleService) Update(ctx context.Context, slug string, req models.UpdateArticleRequest) (*models.Article, error) {
	var articleID uint
	var tagsCreated int

	err := s.gateway.Transaction(ctx, func(tx repositories.Gateway) error {
		article, err := tx.Articles().GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		articleID = article.ID

		fields := map[string]any{"updated_at": time.Now()}
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Slug != nil {
			fields["slug"] = *req.Slug
		}
		if req.Content != nil {
			fields["content"] = *req.Content
		}
		if req.Excerpt != nil {
			fields["excerpt"] = *req.Excerpt
		}
		if req.CoverImage != nil {
			fields["cover_image"] = *req.CoverImage
		}
		if req.Published != nil {
			fields["published"] = *req.Published
		}

		if err := tx.Articles().Update(ctx, article, fields); err != nil {
			return err
		}

		// A nil list leaves the tags alone; an empty one clears them.
		if req.Tags == nil {
			return nil
		}

		tagIDs, created, err := s.upsertTags(ctx, tx, req.Tags)
		if err != nil {
			return err
		}
		tagsCreated = created

		return tx.Articles().ReplaceTags(ctx, article.ID, tagIDs)
	})
	if err != nil {
		return nil, err
	}

	metrics.TagsCreated.Add(float64(tagsCreated))
	s.logger.Info("article updated",
		zap.Uint("id", articleID),
		zap.String("slug", slug),
		zap.Bool("tagsReplaced", req.Tags != nil),
	)

	return s.gateway.Articles().GetByID(ctx, articleID)
}

func (s *articleService) Delete(ctx context.Context, slug string) (*models.MessageResponse, error) {
	err := s.gateway.Transaction(ctx, func(tx repositories.Gateway) error {
		article, err := tx.Articles().GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		return tx.Articles().Delete(ctx, article.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("article deleted", zap.String("slug", slug))

	return &models.MessageResponse{Message: "Article deleted successfully"}, nil
}

// upsertTags resolves tag names to ids, creating the tags that do not exist
// yet. Repeated names resolve to a single id. It also reports how many tags
// were created so the caller can count them once the transaction commits.
func (s *articleService) upsertTags(ctx context.Context, tx repositories.Gateway, names []string) ([]uint, int, error) {
	seen := make(map[string]bool, len(names))
	tagIDs := make([]uint, 0, len(names))
	created := 0

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		tag, err := tx.Tags().GetByName(ctx, name)
		if isNotFound(err) {
			tag = &models.Tag{Name: name}
			if err := tx.Tags().Create(ctx, tag); err != nil {
				return nil, 0, err
			}
			created++
			s.logger.Debug("tag created for article", zap.String("name", name))
		} else if err != nil {
			return nil, 0, err
		}

		tagIDs = append(tagIDs, tag.ID)
	}

	return tagIDs, created, nil
}

// withDetails loads the comments and formats the content of a single article.
func (s *articleService) withDetails(ctx context.Context, article *models.Article) (*models.Article, error) {
	comments, err := s.gateway.Comments().GetAllByArticle(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	article.Comments = &comments

	content, err := s.formatter.Format(article.Content)
	if err != nil {
		return nil, err
	}
	article.Content = content

	return article, nil
}

func attachCommentCounts(ctx context.Context, gateway repositories.Gateway, articles []models.Article) error {
	ids := make([]uint, 0, len(articles))
	for _, article := range articles {
		ids = append(ids, article.ID)
	}

	counts, err := gateway.Comments().CountByArticles(ctx, ids)
	if err != nil {
		return err
	}

	for i := range articles {
		count := counts[articles[i].ID]
		articles[i].CommentCount = &count
	}

	return nil
}
