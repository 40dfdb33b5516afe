package repositories_test

import (
	"context"
	"testing"
	"time"

	"blog-api/models"
	"blog-api/repositories"
	"blog-api/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleRepository_GetListFiltersAndOrders(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := repositories.NewArticleRepository(db)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testutils.CreateArticle(t, db, "Oldest", base, "go")
	testutils.CreateArticle(t, db, "Middle", base.Add(time.Hour), "rust")
	testutils.CreateArticle(t, db, "Newest", base.Add(2*time.Hour), "go", "rust")
	testutils.CreateArticle(t, db, "Untagged", base.Add(3*time.Hour))

	tests := []struct {
		name     string
		params   models.ArticleListParams
		expected []string
		total    int64
	}{
		{
			name:     "all articles newest first",
			params:   models.ArticleListParams{Page: 1, Limit: 10},
			expected: []string{"Untagged", "Newest", "Middle", "Oldest"},
			total:    4,
		},
		{
			name:     "second page",
			params:   models.ArticleListParams{Page: 2, Limit: 3},
			expected: []string{"Oldest"},
			total:    4,
		},
		{
			name:     "any of the tag names",
			params:   models.ArticleListParams{Page: 1, Limit: 10, TagNames: []string{"go", "rust"}},
			expected: []string{"Newest", "Middle", "Oldest"},
			total:    3,
		},
		{
			name:     "unknown tag",
			params:   models.ArticleListParams{Page: 1, Limit: 10, TagNames: []string{"cobol"}},
			expected: []string{},
			total:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles, total, err := repo.GetList(ctx, tt.params)
			require.NoError(t, err)

			titles := make([]string, 0, len(articles))
			for _, article := range articles {
				titles = append(titles, article.Title)
			}
			assert.Equal(t, tt.expected, titles)
			assert.Equal(t, tt.total, total)
		})
	}
}

func TestArticleRepository_GetListByTagID(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := repositories.NewArticleRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tagged := testutils.CreateArticle(t, db, "Tagged", base, "go")
	testutils.CreateArticle(t, db, "Other", base, "rust")

	articles, total, err := repo.GetList(context.Background(), models.ArticleListParams{
		Page:  1,
		Limit: 10,
		TagID: tagged.Tags[0].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, articles, 1)
	assert.Equal(t, "Tagged", articles[0].Title)
	require.Len(t, articles[0].Tags, 1)
	assert.Equal(t, "go", articles[0].Tags[0].Name)
}

func TestArticleRepository_GetRelated(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := repositories.NewArticleRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	source := testutils.CreateArticle(t, db, "Source", base, "go", "db")
	for i := 1; i <= 5; i++ {
		testutils.CreateArticle(t, db, "Related "+string(rune('A'+i-1)), base.Add(time.Duration(i)*time.Hour), "go")
	}
	testutils.CreateArticle(t, db, "Unrelated", base.Add(10*time.Hour), "rust")

	tagIDs := []uint{source.Tags[0].ID, source.Tags[1].ID}
	related, err := repo.GetRelated(context.Background(), source.ID, tagIDs, 4)
	require.NoError(t, err)

	require.Len(t, related, 4)
	assert.Equal(t, "Related E", related[0].Title)
	assert.Equal(t, "Related B", related[3].Title)
	for _, article := range related {
		assert.NotEqual(t, source.ID, article.ID)
	}

	none, err := repo.GetRelated(context.Background(), source.ID, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestArticleRepository_CreateDuplicateSlugConflicts(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := repositories.NewArticleRepository(db)
	ctx := context.Background()

	first := &models.Article{Title: "Same", Slug: "same", Content: "a", Published: true}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Article{Title: "Same", Slug: "same", Content: "b", Published: true}
	err := repo.Create(ctx, second)

	var conflict *models.ErrorConflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Article", conflict.Resource)
}

func TestArticleRepository_ReplaceTags(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := repositories.NewArticleRepository(db)
	ctx := context.Background()

	article := testutils.CreateArticle(t, db, "Tagged", time.Now(), "go", "rust")
	zig := testutils.CreateTag(t, db, "zig")

	require.NoError(t, repo.ReplaceTags(ctx, article.ID, []uint{zig.ID}))

	loaded, err := repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Tags, 1)
	assert.Equal(t, "zig", loaded.Tags[0].Name)

	require.NoError(t, repo.ReplaceTags(ctx, article.ID, []uint{}))

	loaded, err = repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Tags)
}

func TestArticleRepository_DeleteCascadesComments(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := repositories.NewArticleRepository(db)
	ctx := context.Background()

	article := testutils.CreateArticle(t, db, "Doomed", time.Now(), "go")
	testutils.CreateComment(t, db, article.ID, "alice", time.Now())

	require.NoError(t, repo.Delete(ctx, article.ID))

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Where("article_id = ?", article.ID).Count(&comments).Error)
	assert.Zero(t, comments)

	var links int64
	require.NoError(t, db.Model(&models.ArticleTag{}).Where("article_id = ?", article.ID).Count(&links).Error)
	assert.Zero(t, links)

	var notFound *models.ErrorNotFound
	assert.ErrorAs(t, repo.Delete(ctx, article.ID), &notFound)
}

func TestArticleRepository_GetBySlugNotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := repositories.NewArticleRepository(db)

	_, err := repo.GetBySlug(context.Background(), "missing")

	var notFound *models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Article", notFound.Resource)
}
