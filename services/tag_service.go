package services

import (
	"context"
	"sort"

	"blog-api/metrics"
	"blog-api/models"
	"blog-api/repositories"

	"go.uber.org/zap"
)

type TagService interface {
	List(ctx context.Context) ([]models.Tag, error)
	ListForTopics(ctx context.Context) ([]models.TopicTag, error)
	GetArticlesByTag(ctx context.Context, name string, page, limit int) (*models.TagArticlesResponse, error)
	Create(ctx context.Context, req models.CreateTagRequest) (*models.Tag, error)
	Delete(ctx context.Context, name string) (*models.MessageResponse, error)
}

type tagService struct {
	gateway repositories.Gateway
	logger  *zap.Logger
}

func NewTagService(gateway repositories.Gateway, logger *zap.Logger) TagService {
	return &tagService{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *tagService) List(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.gateway.Tags().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.gateway.Tags().CountArticlesByTag(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tags {
		count := counts[tags[i].ID]
		tags[i].ArticleCount = &count
	}

	return tags, nil
}

// ListForTopics orders tags by article count, busiest first.
func (s *tagService) ListForTopics(ctx context.Context) ([]models.TopicTag, error) {
	tags, err := s.gateway.Tags().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	activity, err := s.gateway.Tags().GetActivity(ctx)
	if err != nil {
		return nil, err
	}

	topics := make([]models.TopicTag, 0, len(tags))
	for _, tag := range tags {
		stats := activity[tag.ID]
		topics = append(topics, models.TopicTag{
			ID:           tag.ID,
			Name:         tag.Name,
			ArticleCount: stats.ArticleCount,
			LastActive:   stats.LastActive,
		})
	}

	// tags come back name-ordered, so a stable sort keeps names ascending on ties
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].ArticleCount > topics[j].ArticleCount
	})

	return topics, nil
}

func (s *tagService) GetArticlesByTag(ctx context.Context, name string, page, limit int) (*models.TagArticlesResponse, error) {
	tag, err := s.gateway.Tags().GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	params := models.ArticleListParams{
		Page:  page,
		Limit: limit,
		TagID: tag.ID,
	}

	articles, total, err := s.gateway.Articles().GetList(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := attachCommentCounts(ctx, s.gateway, articles); err != nil {
		return nil, err
	}

	return &models.TagArticlesResponse{
		Tag:      tag.Name,
		Articles: articles,
		Meta:     models.NewPageMeta(total, page, limit),
	}, nil
}

// Create relies on the unique index on tags.name to reject duplicates.
func (s *tagService) Create(ctx context.Context, req models.CreateTagRequest) (*models.Tag, error) {
	tag := &models.Tag{Name: req.Name}
	if err := s.gateway.Tags().Create(ctx, tag); err != nil {
		return nil, err
	}

	var count int64
	tag.ArticleCount = &count

	metrics.TagsCreated.Inc()
	s.logger.Info("tag created", zap.Uint("id", tag.ID), zap.String("name", tag.Name))

	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, name string) (*models.MessageResponse, error) {
	err := s.gateway.Transaction(ctx, func(tx repositories.Gateway) error {
		tag, err := tx.Tags().GetByName(ctx, name)
		if err != nil {
			return err
		}
		return tx.Tags().Delete(ctx, tag.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tag deleted", zap.String("name", name))

	return &models.MessageResponse{Message: "Tag deleted successfully"}, nil
}
