package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Status is the closed set of manuscript lifecycle states.
type Status string

const (
	StatusSubmitted              Status = "submitted"
	StatusPendingForReview       Status = "pending_for_review"
	StatusUnderPeerReview        Status = "under_peer_review"
	StatusRequestedForCorrection Status = "requested_for_correction"
	StatusCorrectionSubmitted    Status = "correction_submitted"
	StatusAccepted               Status = "accepted"
	StatusRejected               Status = "rejected"
	StatusPrePublication         Status = "pre_publication"
	StatusPublished              Status = "published"
	StatusUnpublished            Status = "unpublished"
)

// AllStatuses lists every recognized manuscript status.
var AllStatuses = []Status{
	StatusSubmitted,
	StatusPendingForReview,
	StatusUnderPeerReview,
	StatusRequestedForCorrection,
	StatusCorrectionSubmitted,
	StatusAccepted,
	StatusRejected,
	StatusPrePublication,
	StatusPublished,
	StatusUnpublished,
}

// ParseStatus validates a raw status string against the closed set.
func ParseStatus(raw string) (Status, error) {
	for _, s := range AllStatuses {
		if Status(raw) == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid status '%s'", raw)
}

// Valid reports whether the status is a recognized value.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// ResearchAuthor is one entry of a submission's author list.
type ResearchAuthor struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
}

// AuthorList stores the research author list as a JSON column.
type AuthorList []ResearchAuthor

func (l AuthorList) Value() (driver.Value, error) {
	if l == nil {
		l = AuthorList{}
	}
	return json.Marshal(l)
}

func (l *AuthorList) Scan(value interface{}) error {
	if value == nil {
		*l = AuthorList{}
		return nil
	}
	raw, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			raw = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into AuthorList", value)
		}
	}
	return json.Unmarshal(raw, l)
}

// StringList stores a list of strings (keywords, name snapshots) as JSON.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	raw, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			raw = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into StringList", value)
		}
	}
	return json.Unmarshal(raw, l)
}

// Submission is a manuscript undergoing editorial review.
type Submission struct {
	SubmissionID int    `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	Title        string `gorm:"column:title" json:"title"`
	Abstract     string `gorm:"column:abstract;type:text" json:"abstract"`
	ArticleType  string `gorm:"column:article_type" json:"article_type"`

	// Corresponding author contact block
	ContactName        string `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail       string `gorm:"column:contact_email" json:"contact_email"`
	ContactAffiliation string `gorm:"column:contact_affiliation" json:"contact_affiliation"`
	ContactPhone       string `gorm:"column:contact_phone" json:"contact_phone"`

	Authors  AuthorList `gorm:"column:authors;type:json" json:"authors"`
	Keywords StringList `gorm:"column:keywords;type:json" json:"keywords"`

	ManuscriptFileID *int `gorm:"column:manuscript_file_id" json:"manuscript_file_id,omitempty"`
	CopyrightFileID  *int `gorm:"column:copyright_file_id" json:"copyright_file_id,omitempty"`

	Status   Status    `gorm:"column:status;type:varchar(32);index:idx_submissions_by_status" json:"status"`
	Version  int       `gorm:"column:version" json:"version"`
	AuthorID int       `gorm:"column:author_id;index:idx_submissions_by_author" json:"author_id"`
	CreateAt time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Author         *User       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	ManuscriptFile *FileUpload `gorm:"foreignKey:ManuscriptFileID" json:"manuscript_file,omitempty"`
	CopyrightFile  *FileUpload `gorm:"foreignKey:CopyrightFileID" json:"copyright_file,omitempty"`
}

// TableName specifies the table for Submission.
func (Submission) TableName() string {
	return "submissions"
}
