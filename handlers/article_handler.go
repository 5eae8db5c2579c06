package handlers

import (
	"errors"
	"net/http"

	"webblog/models"
	"webblog/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ArticleHandler struct {
	articleService services.ArticleService
	logger         zerolog.Logger
}

func NewArticleHandler(articleService services.ArticleService, logger zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, logger: logger}
}

// Index returns all articles, ordered by the optional sortOrder query key
// (Title, Author, DateCreation; newest first by default).
func (h *ArticleHandler) Index(c *gin.Context) {
	articles, err := h.articleService.GetAll()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	articles = h.articleService.Sort(articles, c.Query("sortOrder"))
	c.JSON(http.StatusOK, models.NewArticleViews(articles))
}

func (h *ArticleHandler) Details(c *gin.Context) {
	id := c.Param("id")

	article, err := h.articleService.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		h.logger.Error().Err(err).Str("article_id", id).Msg("failed to load article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Best effort; the page renders even when the counter bump fails.
	h.articleService.IncrementViews(id)

	c.JSON(http.StatusOK, models.NewArticleView(article))
}

func (h *ArticleHandler) GetArticleByAuthor(c *gin.Context) {
	authorID := c.Param("id")

	articles, err := h.articleService.GetByAuthor(authorID)
	if err != nil {
		h.logger.Error().Err(err).Str("author_id", authorID).Msg("failed to list articles by author")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if len(articles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No articles for this author"})
		return
	}

	c.JSON(http.StatusOK, models.NewArticleViews(articles))
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.NewArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Add(req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, models.NewArticleView(article))
}

func (h *ArticleHandler) Edit(c *gin.Context) {
	var req models.EditArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if c.Param("id") != req.ArticleID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article ID mismatch"})
		return
	}

	if !h.callerMayModify(c, req.ArticleID) {
		return
	}

	article, err := h.articleService.Edit(req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		case errors.Is(err, models.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Article was modified concurrently"})
		default:
			h.logger.Error().Err(err).Str("article_id", req.ArticleID).Msg("failed to edit article")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, models.NewArticleView(article))
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	var req models.DeleteArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.callerMayModify(c, req.ID) {
		return
	}

	if err := h.articleService.Delete(req.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		// Data-layer failure on delete comes back as an error-flagged
		// confirmation rather than a bare 500.
		c.JSON(http.StatusOK, gin.H{"deleted": false, "error": true, "id": req.ID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": req.ID})
}

// callerMayModify enforces the owner-or-elevated-role policy on destructive
// article routes. Writes false responses itself.
func (h *ArticleHandler) callerMayModify(c *gin.Context, articleID string) bool {
	role, _ := c.Get("role")
	if role == models.RoleAdministrator || role == models.RoleModerator {
		return true
	}

	article, err := h.articleService.GetByID(articleID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return false
		}
		h.logger.Error().Err(err).Str("article_id", articleID).Msg("failed to check article ownership")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return false
	}

	userID, _ := c.Get("user_id")
	if article.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the article owner"})
		return false
	}
	return true
}
