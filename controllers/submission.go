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

type SubmissionRequest struct {
	Title              string                  `json:"title" binding:"required"`
	Abstract           string                  `json:"abstract" binding:"required"`
	ArticleType        string                  `json:"article_type" binding:"required"`
	ContactName        string                  `json:"contact_name" binding:"required"`
	ContactEmail       string                  `json:"contact_email" binding:"required,email"`
	ContactAffiliation string                  `json:"contact_affiliation"`
	ContactPhone       string                  `json:"contact_phone"`
	Authors            []models.ResearchAuthor `json:"authors" binding:"required,min=1"`
	Keywords           []string                `json:"keywords"`
	ManuscriptFileID   *int                    `json:"manuscript_file_id"`
	CopyrightFileID    *int                    `json:"copyright_file_id"`
}

// CreateSubmission submits a new manuscript for the authenticated author.
func CreateSubmission(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionCreateSubmission) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission := models.Submission{
		Title:              req.Title,
		Abstract:           req.Abstract,
		ArticleType:        req.ArticleType,
		ContactName:        req.ContactName,
		ContactEmail:       req.ContactEmail,
		ContactAffiliation: req.ContactAffiliation,
		ContactPhone:       req.ContactPhone,
		Authors:            req.Authors,
		Keywords:           req.Keywords,
		ManuscriptFileID:   req.ManuscriptFileID,
		CopyrightFileID:    req.CopyrightFileID,
		AuthorID:           userID,
	}

	if err := services.CreateSubmission(&submission); err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// GetSubmissions lists manuscripts. Authors see their own; editors and
// admins see everything and may filter by status (the editorial queue).
func GetSubmissions(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	query := config.DB.Model(&models.Submission{}).Preload("Author")

	if role == models.RoleAuthor {
		query = query.Where("author_id = ?", userID)
	} else if author := c.Query("author_id"); author != "" {
		if id, err := strconv.Atoi(author); err == nil {
			query = query.Where("author_id = ?", id)
		}
	}

	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		query = query.Where("status = ?", status)
	}

	var submissions []models.Submission
	if err := query.Order("update_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetSubmission returns one manuscript; the owning author, editors and
// admins may see it.
func GetSubmission(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var submission models.Submission
	if err := config.DB.Preload("Author").Preload("ManuscriptFile").Preload("CopyrightFile").
		Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if role == models.RoleAuthor && submission.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// UpdateSubmission lets the owning author revise manuscript fields while a
// correction is outstanding (or right after submitting). The lifecycle
// status itself only ever moves through transitions.
func UpdateSubmission(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if submission.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the submitting author can edit a submission"})
		return
	}

	if submission.Status != models.StatusSubmitted && submission.Status != models.StatusRequestedForCorrection {
		c.JSON(http.StatusConflict, gin.H{"error": "Submission can no longer be edited in status " + string(submission.Status)})
		return
	}

	submission.Title = req.Title
	submission.Abstract = req.Abstract
	submission.ArticleType = req.ArticleType
	submission.ContactName = req.ContactName
	submission.ContactEmail = req.ContactEmail
	submission.ContactAffiliation = req.ContactAffiliation
	submission.ContactPhone = req.ContactPhone
	submission.Authors = req.Authors
	submission.Keywords = req.Keywords
	if req.ManuscriptFileID != nil {
		submission.ManuscriptFileID = req.ManuscriptFileID
	}
	if req.CopyrightFileID != nil {
		submission.CopyrightFileID = req.CopyrightFileID
	}
	submission.UpdateAt = time.Now()

	if err := config.DB.Save(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// ResubmitCorrections moves an owner's manuscript from
// requested_for_correction to correction_submitted through the lifecycle
// engine, with an optional revised manuscript attachment.
func ResubmitCorrections(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req struct {
		Note         string `json:"note" binding:"required"`
		AttachmentID *int   `json:"attachment_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := services.Transition(services.TransitionRequest{
		SubmissionID: submissionID,
		Target:       models.StatusCorrectionSubmitted,
		ActorID:      userID,
		ActorRole:    role,
		Note:         req.Note,
		AttachmentID: req.AttachmentID,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// GetSubmissionHistory returns the full status ledger for one manuscript,
// oldest first.
func GetSubmissionHistory(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	if role == models.RoleAuthor && submission.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	history, err := services.ListHistoryBySubmission(submissionID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": history,
		"total":   len(history),
	})
}

// GetSubmissionLatestStatus returns the newest ledger entry only.
func GetSubmissionLatestStatus(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	if role == models.RoleAuthor && submission.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	latest, err := services.LatestHistoryBySubmission(submissionID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"latest":  latest,
	})
}
