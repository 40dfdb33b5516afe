package handlers

import (
	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

// GetArticleComments lists comments of an article
// @Summary List comments of an article, newest first
// @Tags Comment
// @Produce json
// @Param articleId path int true "Article ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.CommentListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/comments/article/{articleId} [get]
func (h *CommentHandler) GetArticleComments(c *gin.Context) {
	page, limit := h.Helper.ParsePagination(c)

	result, err := h.commentService.ListForArticle(c.Request.Context(), c.Param("articleId"), page, limit)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SetPagingLinks(c, result.Meta)
	h.Helper.SendSuccess(c, result)
}

// CreateComment adds a comment
// @Summary Comment on an article
// @Tags Comment
// @Accept json
// @Produce json
// @Param articleId path int true "Article ID"
// @Param request body models.CreateCommentRequest true "Comment"
// @Success 200 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Router /api/comments/article/{articleId} [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), c.Param("articleId"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, comment)
}

// DeleteComment deletes a comment
// @Summary Delete a comment
// @Tags Comment
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	result, err := h.commentService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, result)
}
