package handlers

import (
	"errors"

	"webblog/helper"
	"webblog/models"
	"webblog/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: &helper.HTTPHelper{}}
}

func (h *TagHandler) Index(c *gin.Context) {
	includeArticles := c.Query("includeArticles") == "true"

	tags, err := h.tagService.GetAll(includeArticles)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewTagViews(tags))
}

func (h *TagHandler) Details(c *gin.Context) {
	tag, err := h.tagService.GetByID(c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewTagView(tag))
}

func (h *TagHandler) Create(c *gin.Context) {
	var req models.NewTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	tag, err := h.tagService.Insert(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Tag created successfully", models.NewTagView(tag))
}

func (h *TagHandler) Edit(c *gin.Context) {
	var req models.EditTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}
	if c.Param("id") != req.TagID {
		h.Helper.SendNotFoundError(c, "Tag ID mismatch", h.Helper.EmptyJsonMap())
		return
	}

	tag, err := h.tagService.Update(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tag updated successfully", models.NewTagView(tag))
}

func (h *TagHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	// The service reports absence and failure alike as false; distinguish
	// the not-found case for the client.
	if _, err := h.tagService.GetByID(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Tag not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendError(c, err)
		return
	}

	if !h.tagService.Delete(id) {
		h.Helper.SendSuccess(c, "Tag delete failed", gin.H{"deleted": false, "error": true, "id": id})
		return
	}

	h.Helper.SendSuccess(c, "Tag deleted successfully", gin.H{"deleted": true, "id": id})
}
