package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/cmd"
	"blog-api/config"
	"blog-api/models"
	"blog-api/testutils"
)

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *IntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Fresh in-memory database for every test
	suite.db = testutils.SetupTestDB(suite.T())
	suite.router = cmd.NewEngine(&config.Config{FrontendURL: "*"}, suite.db, zap.NewNop())
}

func (suite *IntegrationTestSuite) request(method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *IntegrationTestSuite) createArticle(title string, tags ...string) models.Article {
	w := suite.request(http.MethodPost, "/api/articles", models.CreateArticleRequest{
		Title:   title,
		Content: "Content of " + title,
		Tags:    tags,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var article models.Article
	suite.decode(w, &article)
	return article
}

func (suite *IntegrationTestSuite) TestCreateAndGetArticle() {
	article := suite.createArticle("Hello, World! 2024", "golang", "api")

	suite.Equal("hello-world-2024", article.Slug)
	suite.True(article.Published)
	suite.Len(article.Tags, 2)

	w := suite.request(http.MethodGet, "/api/articles/hello-world-2024", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.NotEmpty(w.Header().Get("X-Request-ID"))

	var retrieved models.Article
	suite.decode(w, &retrieved)
	suite.Equal(article.ID, retrieved.ID)
	suite.Require().NotNil(retrieved.Comments)
	suite.Empty(*retrieved.Comments)

	w = suite.request(http.MethodGet, fmt.Sprintf("/api/articles/id/%d", article.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/articles/id/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/api/articles/id/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodGet, "/api/articles/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	var errResp models.ErrorResponse
	suite.decode(w, &errResp)
	suite.Equal("Resource not found", errResp.Error)
}

func (suite *IntegrationTestSuite) TestCreateArticleValidation() {
	w := suite.request(http.MethodPost, "/api/articles", map[string]any{"content": "no title"})
	suite.Equal(http.StatusBadRequest, w.Code)

	var errResp struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	suite.decode(w, &errResp)
	suite.Equal("Validation error", errResp.Error)
	suite.Contains(errResp.Details, "title")

	w = suite.request(http.MethodPost, "/api/articles", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	for _, title := range []string{"   ", "! ?"} {
		w = suite.request(http.MethodPost, "/api/articles", models.CreateArticleRequest{Title: title, Content: "body"})
		suite.Equal(http.StatusBadRequest, w.Code, title)
	}

	suite.createArticle("Twice")
	w = suite.request(http.MethodPost, "/api/articles", models.CreateArticleRequest{Title: "Twice", Content: "again"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *IntegrationTestSuite) TestListArticlesPagination() {
	for i := 0; i < 12; i++ {
		suite.createArticle(fmt.Sprintf("Article %d", i), "go")
	}
	suite.createArticle("Rusty", "rust")

	w := suite.request(http.MethodGet, "/api/articles?page=2&limit=5", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Link"), `rel="next"`)

	var list models.ArticleListResponse
	suite.decode(w, &list)
	suite.Equal(models.PageMeta{Total: 13, Page: 2, Limit: 5, TotalPages: 3}, list.Meta)
	suite.Len(list.Articles, 5)
	suite.NotNil(list.Articles[0].CommentCount)

	w = suite.request(http.MethodGet, "/api/articles?page=abc&limit=-1&tags=rust", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.decode(w, &list)
	suite.Equal(models.PageMeta{Total: 1, Page: 1, Limit: 10, TotalPages: 1}, list.Meta)
	suite.Equal("Rusty", list.Articles[0].Title)
}

func (suite *IntegrationTestSuite) TestListArticlesPageBeyondRange() {
	suite.createArticle("Only One", "go")

	paths := []string{
		"/api/articles?page=9223372036854775807",
		"/api/articles?page=922337203685477581&limit=10",
		"/api/tags/go/articles?page=9223372036854775807",
	}
	for _, path := range paths {
		w := suite.request(http.MethodGet, path, nil)
		suite.Equal(http.StatusOK, w.Code, path)
		suite.Empty(w.Header().Get("Link"), path)

		var list models.ArticleListResponse
		suite.decode(w, &list)
		suite.Empty(list.Articles, path)
		suite.Equal(int64(1), list.Meta.Total, path)
	}
}

func (suite *IntegrationTestSuite) TestUpdateArticleTags() {
	suite.createArticle("Tagged", "go", "db")

	w := suite.request(http.MethodPut, "/api/articles/tagged", map[string]any{"title": "Still Tagged"})
	suite.Equal(http.StatusOK, w.Code)

	var article models.Article
	suite.decode(w, &article)
	suite.Equal("Still Tagged", article.Title)
	suite.Len(article.Tags, 2)

	w = suite.request(http.MethodPut, "/api/articles/tagged", map[string]any{"tags": []string{}})
	suite.Equal(http.StatusOK, w.Code)
	suite.decode(w, &article)
	suite.Empty(article.Tags)

	w = suite.request(http.MethodPut, "/api/articles/tagged", map[string]any{"title": ""})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPut, "/api/articles/missing", map[string]any{"title": "x"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestDeleteArticleCascadesComments() {
	article := suite.createArticle("Short Lived")
	commentsPath := fmt.Sprintf("/api/comments/article/%d", article.ID)

	w := suite.request(http.MethodPost, commentsPath, models.CreateCommentRequest{
		Content: "Nice post",
		Author:  "ann",
		Email:   "ann@example.com",
	})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, "/api/articles/short-lived", nil)
	suite.Equal(http.StatusOK, w.Code)

	var msg models.MessageResponse
	suite.decode(w, &msg)
	suite.Equal("Article deleted successfully", msg.Message)

	w = suite.request(http.MethodGet, commentsPath, nil)
	suite.Equal(http.StatusOK, w.Code)

	var comments models.CommentListResponse
	suite.decode(w, &comments)
	suite.Empty(comments.Comments)
	suite.Zero(comments.Meta.Total)

	w = suite.request(http.MethodDelete, "/api/articles/short-lived", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestRelatedArticles() {
	source := suite.createArticle("Source", "go")
	for i := 0; i < 5; i++ {
		suite.createArticle(fmt.Sprintf("Peer %d", i), "go")
	}
	suite.createArticle("Stranger", "rust")

	w := suite.request(http.MethodGet, fmt.Sprintf("/api/articles/id/%d/related", source.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var related []models.Article
	suite.decode(w, &related)
	suite.Len(related, 4)
	suite.Equal("Peer 4", related[0].Title)
	for _, article := range related {
		suite.NotEqual(source.ID, article.ID)
	}

	w = suite.request(http.MethodGet, "/api/articles/id/0/related", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestTags() {
	w := suite.request(http.MethodPost, "/api/tags", models.CreateTagRequest{Name: "golang"})
	suite.Equal(http.StatusOK, w.Code)

	var tag models.Tag
	suite.decode(w, &tag)
	suite.Equal("golang", tag.Name)
	suite.Require().NotNil(tag.ArticleCount)
	suite.Zero(*tag.ArticleCount)

	w = suite.request(http.MethodPost, "/api/tags", models.CreateTagRequest{Name: "golang"})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.request(http.MethodPost, "/api/tags", models.CreateTagRequest{Name: "  "})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPost, "/api/tags", map[string]any{})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/api/tags/golang/articles", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"tag":"golang","articles":[],"meta":{"total":0,"page":1,"limit":10,"totalPages":0}}`, w.Body.String())

	w = suite.request(http.MethodGet, "/api/tags/unknown/articles", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.createArticle("Tagged", "golang", "web")

	w = suite.request(http.MethodGet, "/api/tags", nil)
	suite.Equal(http.StatusOK, w.Code)

	var tags []models.Tag
	suite.decode(w, &tags)
	suite.Len(tags, 2)

	w = suite.request(http.MethodDelete, "/api/tags/web", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, "/api/tags/web", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodGet, "/api/articles/tagged", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestTopics() {
	suite.createArticle("One", "go")
	suite.createArticle("Two", "go", "rust")
	w := suite.request(http.MethodPost, "/api/tags", models.CreateTagRequest{Name: "quiet"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/tags/topics", nil)
	suite.Equal(http.StatusOK, w.Code)

	var topics []models.TopicTag
	suite.decode(w, &topics)
	suite.Require().Len(topics, 3)
	suite.Equal("go", topics[0].Name)
	suite.Equal(int64(2), topics[0].ArticleCount)
	suite.NotNil(topics[0].LastActive)
	suite.Equal("quiet", topics[2].Name)
	suite.Nil(topics[2].LastActive)
}

func (suite *IntegrationTestSuite) TestComments() {
	article := suite.createArticle("Commented")
	path := fmt.Sprintf("/api/comments/article/%d", article.ID)

	w := suite.request(http.MethodPost, path, models.CreateCommentRequest{Content: "hi", Author: "ann", Email: "not-an-email"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPost, path, models.CreateCommentRequest{Content: "hi", Author: "ann", Email: "ann@example.com"})
	suite.Equal(http.StatusOK, w.Code)

	var comment models.Comment
	suite.decode(w, &comment)
	suite.Equal(article.ID, comment.ArticleID)

	w = suite.request(http.MethodPost, "/api/comments/article/9999", models.CreateCommentRequest{Content: "hi", Author: "ann", Email: "ann@example.com"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/api/comments/article/9999", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/comments/article/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodDelete, "/api/comments/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestHealthAndRoot() {
	w := suite.request(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)

	var report models.HealthReport
	suite.decode(w, &report)
	suite.Equal("healthy", report.Status)

	w = suite.request(http.MethodGet, "/", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Blog API is running!","documentation":"/swagger/index.html","health":"/health"}`, w.Body.String())

	w = suite.request(http.MethodGet, "/metrics", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "blog_http_requests_total")
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
