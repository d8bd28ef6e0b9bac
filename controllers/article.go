package controllers

import (
	"net/http"
	"strconv"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/search"
	"journal-portal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PromoteSubmission projects an accepted submission into a public article
// within an issue. Admin only; the Role Guard decides inside the service.
// Passing force re-projects an already-promoted submission, refreshing the
// article's title, authors and slug from the current submission row.
func PromoteSubmission(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req struct {
		SubmissionID int     `json:"submission_id" binding:"required"`
		IssueID      int     `json:"issue_id" binding:"required"`
		FirstPage    int     `json:"first_page"`
		LastPage     int     `json:"last_page"`
		DOI          *string `json:"doi"`
		Force        bool    `json:"force"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, created, err := services.PromoteToArticle(services.PromoteRequest{
		SubmissionID: req.SubmissionID,
		IssueID:      req.IssueID,
		FirstPage:    req.FirstPage,
		LastPage:     req.LastPage,
		DOI:          req.DOI,
		ActorRole:    role,
		Force:        req.Force,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"success": true,
		"article": article,
	})
}

// GetArticles publicly lists published articles, optionally per issue.
func GetArticles(c *gin.Context) {
	query := config.DB.Model(&models.Article{}).Preload("Issue").Where("published = ?", true)

	if raw := c.Query("issue_id"); raw != "" {
		issueID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue_id"})
			return
		}
		query = query.Where("issue_id = ?", issueID)
	}

	var articles []models.Article
	if err := query.Order("published_at DESC").Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "articles": articles, "total": len(articles)})
}

// GetArticleBySlug returns one published article and counts the view.
func GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var article models.Article
	if err := config.DB.Preload("Issue").
		Where("slug = ? AND published = ?", slug, true).
		First(&article).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	// Best-effort counter; a lost increment is acceptable.
	config.DB.Model(&models.Article{}).
		Where("article_id = ?", article.ArticleID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	article.ViewCount++

	c.JSON(http.StatusOK, gin.H{"success": true, "article": article})
}

// DownloadArticle resolves the published manuscript file for an article and
// counts the download.
func DownloadArticle(c *gin.Context) {
	slug := c.Param("slug")

	var article models.Article
	if err := config.DB.Where("slug = ? AND published = ?", slug, true).First(&article).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", article.SubmissionID).First(&submission).Error; err != nil || submission.ManuscriptFileID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No manuscript file for this article"})
		return
	}

	var file models.FileUpload
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", *submission.ManuscriptFileID).First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	config.DB.Model(&models.Article{}).
		Where("article_id = ?", article.ArticleID).
		UpdateColumn("downloads", gorm.Expr("downloads + 1"))

	c.FileAttachment(file.StoredPath, file.OriginalName)
}

// SearchArticles queries the full-text title index, optionally restricted to
// one issue, then resolves the hits against the store.
func SearchArticles(c *gin.Context) {
	if search.Articles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search is not available"})
		return
	}

	var issueID *int
	if raw := c.Query("issue_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue_id"})
			return
		}
		issueID = &id
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}

	result, err := search.Articles.Search(c.Query("q"), issueID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	articles := make([]models.Article, 0, len(result.IDs))
	if len(result.IDs) > 0 {
		if err := config.DB.
			Where("article_id IN ? AND published = ?", result.IDs, true).
			Find(&articles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"articles": articles,
		"total":    result.Total,
	})
}
