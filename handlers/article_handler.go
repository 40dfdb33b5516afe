package handlers

import (
	"strings"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

// GetArticles lists articles
// @Summary List articles, newest first
// @Tags Article
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param tags query string false "Comma separated tag names"
// @Success 200 {object} models.ArticleListResponse
// @Router /api/articles [get]
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	page, limit := h.Helper.ParsePagination(c)

	var tagNames []string
	if raw := c.Query("tags"); raw != "" {
		tagNames = strings.Split(raw, ",")
	}

	result, err := h.articleService.List(c.Request.Context(), page, limit, tagNames)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SetPagingLinks(c, result.Meta)
	h.Helper.SendSuccess(c, result)
}

// GetArticleBySlug returns one article
// @Summary Get an article with its tags and comments
// @Tags Article
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.Article
// @Failure 404 {object} models.ErrorResponse
// @Router /api/articles/{slug} [get]
func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

// GetArticleByID returns one article
// @Summary Get an article by id
// @Tags Article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/articles/id/{id} [get]
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	article, err := h.articleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

// GetRelatedArticles returns articles sharing a tag
// @Summary Up to four other articles sharing at least one tag
// @Tags Article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {array} models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/articles/id/{id}/related [get]
func (h *ArticleHandler) GetRelatedArticles(c *gin.Context) {
	articles, err := h.articleService.GetRelated(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, articles)
}

// CreateArticle creates an article
// @Summary Create an article
// @Tags Article
// @Accept json
// @Produce json
// @Param request body models.CreateArticleRequest true "Article"
// @Success 200 {object} models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

// UpdateArticle updates an article
// @Summary Partially update an article
// @Tags Article
// @Accept json
// @Produce json
// @Param slug path string true "Article slug"
// @Param request body models.UpdateArticleRequest true "Fields to change"
// @Success 200 {object} models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/articles/{slug} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

// DeleteArticle deletes an article
// @Summary Delete an article and its comments
// @Tags Article
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/articles/{slug} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	result, err := h.articleService.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, result)
}
