package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/models"

	"gorm.io/gorm"
)

// legalTransitions is the manuscript lifecycle legality table. The primary
// forward path runs submitted → pending_for_review → under_peer_review with
// the correction loop under_peer_review → requested_for_correction →
// correction_submitted → under_peer_review, then accepted → pre_publication
// → published. An editor may pull a fresh submission straight into peer
// review, desk-reject it, or reopen a rejected one. published and
// unpublished toggle each other.
var legalTransitions = map[models.Status][]models.Status{
	models.StatusSubmitted: {
		models.StatusPendingForReview,
		models.StatusUnderPeerReview,
		models.StatusRejected,
	},
	models.StatusPendingForReview: {
		models.StatusUnderPeerReview,
		models.StatusRejected,
	},
	models.StatusUnderPeerReview: {
		models.StatusRequestedForCorrection,
		models.StatusAccepted,
		models.StatusRejected,
	},
	models.StatusRequestedForCorrection: {
		models.StatusCorrectionSubmitted,
	},
	models.StatusCorrectionSubmitted: {
		models.StatusUnderPeerReview,
		models.StatusRequestedForCorrection,
		models.StatusAccepted,
		models.StatusRejected,
	},
	models.StatusAccepted: {
		models.StatusPrePublication,
		models.StatusPublished,
	},
	models.StatusRejected: {
		models.StatusPendingForReview,
	},
	models.StatusPrePublication: {
		models.StatusPublished,
	},
	models.StatusPublished: {
		models.StatusUnpublished,
	},
	models.StatusUnpublished: {
		models.StatusPublished,
	},
}

// CanTransition reports whether target is a legal next state from current.
func CanTransition(current, target models.Status) bool {
	for _, next := range legalTransitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionRequest carries one requested status change through validation
// and execution.
type TransitionRequest struct {
	SubmissionID int
	Target       models.Status
	ActorID      int
	ActorRole    models.Role
	Note         string
	AttachmentID *int

	// IssueID is consulted only when Target is published and the submission
	// has no article yet; promotion then happens inside the same transaction.
	IssueID *int
}

// validateTransition runs every check that does not need the database:
// status validity, role guard, ownership for author resubmission, legality
// and the non-empty note rule for human actors. It returns the sentinel
// error for the first failed check.
func validateTransition(current models.Status, ownerID int, req TransitionRequest) error {
	if !req.Target.Valid() {
		return fmt.Errorf("%w: unknown status '%s'", ErrValidation, req.Target)
	}
	if !CanPerform(req.ActorRole, transitionAction(req.Target)) {
		return ErrForbidden
	}
	if req.Target == models.StatusCorrectionSubmitted && req.ActorID != ownerID {
		// Only the submission's own author resubmits corrections.
		return ErrForbidden
	}
	if !CanTransition(current, req.Target) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, current, req.Target)
	}
	if strings.TrimSpace(req.Note) == "" {
		return fmt.Errorf("%w: a note is required for every transition", ErrValidation)
	}
	return nil
}

// Transition validates and executes one status change. The status update,
// the ledger append and (for published targets) the article promotion run in
// a single transaction: a crash or a conflicting concurrent transition never
// leaves a status change without its ledger entry. Repeating the same
// transition is allowed and appends a fresh ledger row each time.
func Transition(req TransitionRequest) (*models.Submission, error) {
	var submission models.Submission
	var touched *models.Article

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_id = ?", req.SubmissionID).First(&submission).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := validateTransition(submission.Status, submission.AuthorID, req); err != nil {
			return err
		}

		now := time.Now()
		previous := submission.Status

		// Optimistic update: the version read above must still be current.
		res := tx.Model(&models.Submission{}).
			Where("submission_id = ? AND version = ?", submission.SubmissionID, submission.Version).
			Updates(map[string]interface{}{
				"status":    req.Target,
				"version":   submission.Version + 1,
				"update_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: submission %d was modified concurrently", ErrConflict, submission.SubmissionID)
		}
		submission.Status = req.Target
		submission.Version++
		submission.UpdateAt = now

		entry := models.SubmissionStatusHistory{
			SubmissionID: submission.SubmissionID,
			OldStatus:    &previous,
			NewStatus:    req.Target,
			ChangedBy:    req.ActorID,
			ActorRole:    models.HistoryActorForRole(req.ActorRole),
			Note:         strings.TrimSpace(req.Note),
			AttachmentID: req.AttachmentID,
			CreatedAt:    now,
		}
		if err := AppendHistory(tx, &entry); err != nil {
			return err
		}

		switch req.Target {
		case models.StatusPublished:
			article, err := publishArticle(tx, &submission, req.IssueID, now)
			if err != nil {
				return err
			}
			touched = article
		case models.StatusUnpublished:
			article, err := setArticleVisibility(tx, submission.SubmissionID, false, now)
			if err != nil {
				return err
			}
			touched = article
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The search index is a projection; touch it only once the transaction
	// has committed.
	if touched != nil {
		switch req.Target {
		case models.StatusPublished:
			indexArticle(touched)
		case models.StatusUnpublished:
			deindexArticle(touched.ArticleID)
		}
	}

	NotifyDecision(&submission, req.Target, req.Note)

	return &submission, nil
}

// CreateSubmission inserts a new manuscript in status submitted together
// with its initial system ledger entry, atomically.
func CreateSubmission(submission *models.Submission) error {
	now := time.Now()
	submission.Status = models.StatusSubmitted
	submission.Version = 1
	submission.CreateAt = now
	submission.UpdateAt = now

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}

		entry := models.SubmissionStatusHistory{
			SubmissionID: submission.SubmissionID,
			OldStatus:    nil,
			NewStatus:    models.StatusSubmitted,
			ChangedBy:    submission.AuthorID,
			ActorRole:    models.ActorSystem,
			Note:         "submission received",
			CreatedAt:    now,
		}
		return AppendHistory(tx, &entry)
	})
}
