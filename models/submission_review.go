package models

import (
	"fmt"
	"time"
)

// Verdict is a reviewer's decision on one submission.
type Verdict string

const (
	VerdictApprove          Verdict = "approve"
	VerdictReject           Verdict = "reject"
	VerdictChangesRequested Verdict = "changes_requested"
)

// ParseVerdict validates a raw verdict string.
func ParseVerdict(raw string) (Verdict, error) {
	switch Verdict(raw) {
	case VerdictApprove, VerdictReject, VerdictChangesRequested:
		return Verdict(raw), nil
	}
	return "", fmt.Errorf("invalid verdict '%s'", raw)
}

// SubmissionReview represents a single reviewer's verdict and comments.
type SubmissionReview struct {
	ReviewID     int       `gorm:"primaryKey;column:review_id" json:"review_id"`
	SubmissionID int       `gorm:"column:submission_id;index:idx_reviews_by_manuscript" json:"submission_id"`
	ReviewerID   int       `gorm:"column:reviewer_id" json:"reviewer_id"`
	Verdict      Verdict   `gorm:"column:verdict;type:varchar(32)" json:"verdict"`
	Comments     *string   `gorm:"column:comments;type:text" json:"comments"`
	ReviewedAt   time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// TableName specifies the table name for SubmissionReview.
func (SubmissionReview) TableName() string {
	return "submission_reviews"
}
