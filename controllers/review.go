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

// CreateReview records one reviewer verdict for a submission under peer
// review.
func CreateReview(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionRecordReview) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req struct {
		Verdict  string `json:"verdict" binding:"required"`
		Comments string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict, err := models.ParseVerdict(req.Verdict)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if submission.Status != models.StatusUnderPeerReview && submission.Status != models.StatusCorrectionSubmitted {
		c.JSON(http.StatusConflict, gin.H{"error": "Submission is not under peer review"})
		return
	}

	review := models.SubmissionReview{
		SubmissionID: submissionID,
		ReviewerID:   userID,
		Verdict:      verdict,
		ReviewedAt:   time.Now(),
	}
	if req.Comments != "" {
		review.Comments = &req.Comments
	}

	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"review":  review,
	})
}

// GetReviews lists verdicts for a submission. The owning author sees the
// comments but not reviewer identities.
func GetReviews(c *gin.Context) {
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

	isOwner := submission.AuthorID == userID
	if role == models.RoleAuthor && !isOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	query := config.DB.Where("submission_id = ?", submissionID).Order("reviewed_at ASC")
	if role != models.RoleAuthor {
		query = query.Preload("Reviewer")
	}

	var reviews []models.SubmissionReview
	if err := query.Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	// Blind the reviewer ids for the author's own view.
	if role == models.RoleAuthor {
		for i := range reviews {
			reviews[i].ReviewerID = 0
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": reviews,
		"total":   len(reviews),
	})
}
