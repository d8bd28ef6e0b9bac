package controllers

import (
	"net/http"
	"strconv"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/services"
	"journal-portal-api/utils"

	"github.com/gin-gonic/gin"
)

type TransitionBody struct {
	TargetStatus string `json:"target_status" binding:"required"`
	Note         string `json:"note" binding:"required"`
	AttachmentID *int   `json:"attachment_id"`
	IssueID      *int   `json:"issue_id"`
}

// TransitionSubmission executes any editorial status change (advance,
// request correction, accept, reject, publish, unpublish) through the
// lifecycle engine. The engine settles legality and permissions; this
// handler only parses.
func TransitionSubmission(c *gin.Context) {
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

	var body TransitionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := models.ParseStatus(body.TargetStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := services.Transition(services.TransitionRequest{
		SubmissionID: submissionID,
		Target:       target,
		ActorID:      userID,
		ActorRole:    role,
		Note:         utils.SanitizeInput(body.Note),
		AttachmentID: body.AttachmentID,
		IssueID:      body.IssueID,
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

// GetEditorQueue lists manuscripts in one status, backed by the status
// index. Defaults to freshly submitted manuscripts.
func GetEditorQueue(c *gin.Context) {
	status, err := models.ParseStatus(c.DefaultQuery("status", string(models.StatusSubmitted)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var submissions []models.Submission
	if err := config.DB.Preload("Author").
		Where("status = ?", status).
		Order("update_at ASC").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch queue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"status":      status,
		"submissions": submissions,
		"total":       len(submissions),
	})
}
