package controllers

import (
	"net/http"
	"strconv"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/services"

	"github.com/gin-gonic/gin"
)

type IssueRequest struct {
	Volume int    `json:"volume" binding:"required"`
	Number int    `json:"number" binding:"required"`
	Title  string `json:"title"`
}

// CreateIssue opens a new volume/number grouping. Editors may create and
// edit issues; publishing them is an admin action.
func CreateIssue(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionManageIssues) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	issue := models.Issue{
		Volume:   req.Volume,
		Number:   req.Number,
		Title:    req.Title,
		CreateAt: now,
		UpdateAt: now,
	}

	if err := config.DB.Create(&issue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "issue": issue})
}

// UpdateIssue edits an unpublished issue's volume, number and title.
func UpdateIssue(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionManageIssues) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	issueID, err := strconv.Atoi(c.Param("id"))
	if err != nil || issueID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var issue models.Issue
	if err := config.DB.Where("issue_id = ?", issueID).First(&issue).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	issue.Volume = req.Volume
	issue.Number = req.Number
	issue.Title = req.Title
	issue.UpdateAt = time.Now()

	if err := config.DB.Save(&issue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "issue": issue})
}

// PublishIssue stamps the publication date and makes the issue publicly
// listed. Admin only.
func PublishIssue(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionPublishIssue) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	issueID, err := strconv.Atoi(c.Param("id"))
	if err != nil || issueID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var issue models.Issue
	if err := config.DB.Where("issue_id = ?", issueID).First(&issue).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	now := time.Now()
	issue.Published = true
	issue.PublishedAt = &now
	issue.UpdateAt = now

	if err := config.DB.Save(&issue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "issue": issue})
}

// DeleteIssue removes an empty issue. Admin only; an issue that already
// contains articles cannot be deleted.
func DeleteIssue(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionDeleteIssue) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	issueID, err := strconv.Atoi(c.Param("id"))
	if err != nil || issueID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var issue models.Issue
	if err := config.DB.Where("issue_id = ?", issueID).First(&issue).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	var articles int64
	if err := config.DB.Model(&models.Article{}).Where("issue_id = ?", issueID).Count(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check issue contents"})
		return
	}
	if articles > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Issue still contains articles"})
		return
	}

	if err := config.DB.Delete(&issue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Issue deleted"})
}

// GetIssues lists issues. The public sees published ones; staff see all.
func GetIssues(c *gin.Context) {
	query := config.DB.Model(&models.Issue{}).Order("volume DESC, number DESC")

	_, role, authenticated := currentUser(c)
	staff := authenticated && role != models.RoleAuthor
	if !staff {
		query = query.Where("published = ?", true)
	}

	var issues []models.Issue
	if err := query.Find(&issues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "issues": issues, "total": len(issues)})
}

// GetIssue returns one issue with its published articles.
func GetIssue(c *gin.Context) {
	issueID, err := strconv.Atoi(c.Param("id"))
	if err != nil || issueID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var issue models.Issue
	if err := config.DB.Where("issue_id = ?", issueID).First(&issue).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	var articles []models.Article
	if err := config.DB.
		Where("issue_id = ? AND published = ?", issueID, true).
		Order("first_page ASC").
		Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"issue":    issue,
		"articles": articles,
	})
}
