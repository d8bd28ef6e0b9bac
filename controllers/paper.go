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

type PaperRequest struct {
	SubmissionID int               `json:"submission_id" binding:"required"`
	TemplateID   int               `json:"template_id" binding:"required"`
	Content      models.JSONConfig `json:"content" binding:"required"`
}

// CreatePaper binds one submission and one template into a draft typeset
// paper. Editors own the typesetting step.
func CreatePaper(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionManageTemplates) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req PaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", req.SubmissionID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	var template models.Template
	if err := config.DB.Where("template_id = ?", req.TemplateID).First(&template).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	now := time.Now()
	paper := models.Paper{
		SubmissionID: req.SubmissionID,
		TemplateID:   req.TemplateID,
		Content:      req.Content,
		Status:       models.PaperDraft,
		CreatedBy:    userID,
		CreateAt:     now,
		UpdateAt:     now,
	}

	if err := config.DB.Create(&paper).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create paper"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "paper": paper})
}

// UpdatePaper replaces the content tree of a draft paper.
func UpdatePaper(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionManageTemplates) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var req struct {
		Content models.JSONConfig `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paper models.Paper
	if err := config.DB.Where("paper_id = ?", paperID).First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	if paper.Status == models.PaperFinal {
		c.JSON(http.StatusConflict, gin.H{"error": "Final papers cannot be edited"})
		return
	}

	paper.Content = req.Content
	paper.UpdateAt = time.Now()

	if err := config.DB.Save(&paper).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update paper"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "paper": paper})
}

// FinalizePaper moves a draft paper to final.
func FinalizePaper(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionManageTemplates) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var paper models.Paper
	if err := config.DB.Where("paper_id = ?", paperID).First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	paper.Status = models.PaperFinal
	paper.UpdateAt = time.Now()

	if err := config.DB.Save(&paper).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize paper"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "paper": paper})
}

// GetPaper returns one typeset paper with its template.
func GetPaper(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionManageTemplates) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var paper models.Paper
	if err := config.DB.Preload("Template").Where("paper_id = ?", paperID).First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "paper": paper})
}
