package services

import (
	"context"

	"blog-api/metrics"
	"blog-api/models"
	"blog-api/repositories"

	"go.uber.org/zap"
)

type CommentService interface {
	ListForArticle(ctx context.Context, rawArticleID string, page, limit int) (*models.CommentListResponse, error)
	Create(ctx context.Context, rawArticleID string, req models.CreateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, rawID string) (*models.MessageResponse, error)
	DeleteOrphans(ctx context.Context) (int64, error)
}

type commentService struct {
	gateway repositories.Gateway
	logger  *zap.Logger
}

func NewCommentService(gateway repositories.Gateway, logger *zap.Logger) CommentService {
	return &commentService{
		gateway: gateway,
		logger:  logger,
	}
}

// ListForArticle returns an empty page when the article has no comments or
// does not exist.
func (s *commentService) ListForArticle(ctx context.Context, rawArticleID string, page, limit int) (*models.CommentListResponse, error) {
	articleID, err := parseID(rawArticleID, "articleId")
	if err != nil {
		return nil, err
	}

	comments, total, err := s.gateway.Comments().GetByArticle(ctx, articleID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.CommentListResponse{
		Comments: comments,
		Meta:     models.NewPageMeta(total, page, limit),
	}, nil
}

func (s *commentService) Create(ctx context.Context, rawArticleID string, req models.CreateCommentRequest) (*models.Comment, error) {
	articleID, err := parseID(rawArticleID, "articleId")
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:   req.Content,
		Author:    req.Author,
		Email:     req.Email,
		ArticleID: articleID,
	}

	if err := s.gateway.Comments().Create(ctx, comment); err != nil {
		return nil, err
	}

	metrics.CommentsCreated.Inc()
	s.logger.Info("comment created",
		zap.Uint("id", comment.ID),
		zap.Uint("articleId", articleID),
	)

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, rawID string) (*models.MessageResponse, error) {
	id, err := parseID(rawID, "id")
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Comments().Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("comment deleted", zap.Uint("id", id))

	return &models.MessageResponse{Message: "Comment deleted successfully"}, nil
}

// DeleteOrphans removes comments left behind by articles deleted before the
// cascading foreign key existed.
func (s *commentService) DeleteOrphans(ctx context.Context) (int64, error) {
	deleted, err := s.gateway.Comments().DeleteOrphans(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("orphan comments removed", zap.Int64("count", deleted))

	return deleted, nil
}
