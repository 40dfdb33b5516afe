package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Gateway is the single entry point to the relational store. Repositories
// obtained from a Gateway handed to a Transaction callback share that
// transaction.
type Gateway interface {
	Articles() ArticleRepository
	Tags() TagRepository
	Comments() CommentRepository
	Transaction(ctx context.Context, fn func(tx Gateway) error) error
	Ping(ctx context.Context) error
}

type gateway struct {
	db       *gorm.DB
	articles ArticleRepository
	tags     TagRepository
	comments CommentRepository
}

func NewGateway(db *gorm.DB) Gateway {
	return &gateway{
		db:       db,
		articles: NewArticleRepository(db),
		tags:     NewTagRepository(db),
		comments: NewCommentRepository(db),
	}
}

func (g *gateway) Articles() ArticleRepository {
	return g.articles
}

func (g *gateway) Tags() TagRepository {
	return g.tags
}

func (g *gateway) Comments() CommentRepository {
	return g.comments
}

func (g *gateway) Transaction(ctx context.Context, fn func(tx Gateway) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGateway(tx))
	})
}

func (g *gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
