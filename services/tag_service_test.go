package services_test

import (
	"context"
	"testing"
	"time"

	"blog-api/models"
	"blog-api/repositories"
	"blog-api/services"
	"blog-api/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTagService(t *testing.T) (services.TagService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	return services.NewTagService(repositories.NewGateway(db), zap.NewNop()), db
}

func TestTagService_CreateAndDuplicate(t *testing.T) {
	svc, _ := newTagService(t)
	ctx := context.Background()

	tag, err := svc.Create(ctx, models.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)
	assert.Equal(t, "golang", tag.Name)
	require.NotNil(t, tag.ArticleCount)
	assert.Zero(t, *tag.ArticleCount)

	_, err = svc.Create(ctx, models.CreateTagRequest{Name: "golang"})
	var conflict *models.ErrorConflict
	assert.ErrorAs(t, err, &conflict)
}

func TestTagService_ListIncludesArticleCounts(t *testing.T) {
	svc, db := newTagService(t)
	now := time.Now()

	testutils.CreateArticle(t, db, "One", now, "go", "db")
	testutils.CreateArticle(t, db, "Two", now, "go")
	testutils.CreateTag(t, db, "empty")

	tags, err := svc.List(context.Background())
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, tag := range tags {
		require.NotNil(t, tag.ArticleCount)
		counts[tag.Name] = *tag.ArticleCount
	}
	assert.Equal(t, map[string]int64{"db": 1, "empty": 0, "go": 2}, counts)
}

func TestTagService_ListForTopics(t *testing.T) {
	svc, db := newTagService(t)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	testutils.CreateArticle(t, db, "One", base, "go", "rust")
	testutils.CreateArticle(t, db, "Two", base.Add(24*time.Hour), "go")
	testutils.CreateArticle(t, db, "Three", base.Add(48*time.Hour), "go", "db")
	testutils.CreateTag(t, db, "empty")

	topics, err := svc.ListForTopics(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 4)

	assert.Equal(t, "go", topics[0].Name)
	assert.Equal(t, int64(3), topics[0].ArticleCount)
	require.NotNil(t, topics[0].LastActive)
	assert.True(t, base.Add(48*time.Hour).Equal(*topics[0].LastActive))

	// ties keep name order
	assert.Equal(t, "db", topics[1].Name)
	assert.Equal(t, "rust", topics[2].Name)

	assert.Equal(t, "empty", topics[3].Name)
	assert.Zero(t, topics[3].ArticleCount)
	assert.Nil(t, topics[3].LastActive)
}

func TestTagService_GetArticlesByTag(t *testing.T) {
	svc, db := newTagService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)

	result, err := svc.GetArticlesByTag(ctx, "golang", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "golang", result.Tag)
	assert.Empty(t, result.Articles)
	assert.Equal(t, models.PageMeta{Total: 0, Page: 1, Limit: 10, TotalPages: 0}, result.Meta)

	testutils.CreateArticle(t, db, "Tagged", time.Now(), "golang")
	result, err = svc.GetArticlesByTag(ctx, "golang", 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Articles, 1)
	require.NotNil(t, result.Articles[0].CommentCount)

	_, err = svc.GetArticlesByTag(ctx, "missing", 1, 10)
	var notFound *models.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestTagService_DeleteKeepsArticles(t *testing.T) {
	svc, db := newTagService(t)
	ctx := context.Background()

	article := testutils.CreateArticle(t, db, "Survivor", time.Now(), "doomed")

	result, err := svc.Delete(ctx, "doomed")
	require.NoError(t, err)
	assert.Equal(t, "Tag deleted successfully", result.Message)

	loaded, err := repositories.NewArticleRepository(db).GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Tags)

	_, err = svc.Delete(ctx, "doomed")
	var notFound *models.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)
}
