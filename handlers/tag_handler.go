package handlers

import (
	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

// GetTags lists tags
// @Summary List tags with their article counts
// @Tags Tag
// @Produce json
// @Success 200 {array} models.Tag
// @Router /api/tags [get]
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, tags)
}

// GetTopics lists tags by activity
// @Summary List tags ordered by article count with last activity
// @Tags Tag
// @Produce json
// @Success 200 {array} models.TopicTag
// @Router /api/tags/topics [get]
func (h *TagHandler) GetTopics(c *gin.Context) {
	topics, err := h.tagService.ListForTopics(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, topics)
}

// GetArticlesByTag lists articles of a tag
// @Summary List articles carrying a tag
// @Tags Tag
// @Produce json
// @Param name path string true "Tag name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.TagArticlesResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/tags/{name}/articles [get]
func (h *TagHandler) GetArticlesByTag(c *gin.Context) {
	page, limit := h.Helper.ParsePagination(c)

	result, err := h.tagService.GetArticlesByTag(c.Request.Context(), c.Param("name"), page, limit)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SetPagingLinks(c, result.Meta)
	h.Helper.SendSuccess(c, result)
}

// CreateTag creates a tag
// @Summary Create a tag
// @Tags Tag
// @Accept json
// @Produce json
// @Param request body models.CreateTagRequest true "Tag"
// @Success 200 {object} models.Tag
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, tag)
}

// DeleteTag deletes a tag
// @Summary Delete a tag, keeping its articles
// @Tags Tag
// @Produce json
// @Param name path string true "Tag name"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/tags/{name} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	result, err := h.tagService.Delete(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, result)
}
