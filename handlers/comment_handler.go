package handlers

import (
	"time"

	"webblog/helper"
	"webblog/models"
	"webblog/repositories"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler works straight against the repositories; comment flows have
// no service layer.
type CommentHandler struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	logger      zerolog.Logger
	Helper      *helper.HTTPHelper
}

func NewCommentHandler(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository,
	logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		logger:      logger,
		Helper:      &helper.HTTPHelper{},
	}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentRepo.GetAll()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list comments")
		h.Helper.SendInternalServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewCommentViews(comments))
}

func (h *CommentHandler) GetCommentsForArticle(c *gin.Context) {
	articleID := c.Param("id")

	comments, err := h.commentRepo.GetByArticle(articleID)
	if err != nil {
		h.logger.Error().Err(err).Str("article_id", articleID).Msg("failed to list article comments")
		h.Helper.SendInternalServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewCommentViews(comments))
}

func (h *CommentHandler) Details(c *gin.Context) {
	comment, err := h.commentRepo.GetByID(c.Param("id"))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Comment not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewCommentView(comment))
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req models.NewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	exists, err := h.articleRepo.Exists(req.ArticleID)
	if err != nil {
		h.logger.Error().Err(err).Str("article_id", req.ArticleID).Msg("failed to check article")
		h.Helper.SendInternalServerError(c)
		return
	}
	if !exists {
		h.Helper.SendBadRequest(c, "Article not found", h.Helper.EmptyJsonMap())
		return
	}

	comment := &models.Comment{
		ArticleID: req.ArticleID,
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		Content:   req.Content,
		Created:   time.Now(),
	}

	if err := h.commentRepo.Create(comment); err != nil {
		h.logger.Error().Err(err).Msg("failed to create comment")
		h.Helper.SendInternalServerError(c)
		return
	}

	h.Helper.SendCreated(c, "Comment created successfully", models.NewCommentView(comment))
}

func (h *CommentHandler) Edit(c *gin.Context) {
	var req models.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}
	if c.Param("id") != req.CommentID {
		h.Helper.SendBadRequest(c, "Comment ID mismatch", h.Helper.EmptyJsonMap())
		return
	}

	exists, err := h.commentRepo.Exists(req.CommentID)
	if err != nil {
		h.logger.Error().Err(err).Str("comment_id", req.CommentID).Msg("failed to check comment")
		h.Helper.SendInternalServerError(c)
		return
	}
	if !exists {
		h.Helper.SendNotFoundError(c, "Comment not found", h.Helper.EmptyJsonMap())
		return
	}

	comment := &models.Comment{CommentID: req.CommentID, Title: req.Title, Content: req.Content}
	if err := h.commentRepo.Update(comment); err != nil {
		h.logger.Error().Err(err).Str("comment_id", req.CommentID).Msg("failed to update comment")
		h.Helper.SendInternalServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Comment updated successfully", h.Helper.EmptyJsonMap())
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	exists, err := h.commentRepo.Exists(id)
	if err != nil {
		h.logger.Error().Err(err).Str("comment_id", id).Msg("failed to check comment")
		h.Helper.SendInternalServerError(c)
		return
	}
	if !exists {
		h.Helper.SendNotFoundError(c, "Comment not found", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.commentRepo.Delete(id); err != nil {
		h.logger.Error().Err(err).Str("comment_id", id).Msg("failed to delete comment")
		h.Helper.SendSuccess(c, "Comment delete failed", gin.H{"deleted": false, "error": true, "id": id})
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted successfully", gin.H{"deleted": true, "id": id})
}
