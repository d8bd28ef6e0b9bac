package services

import (
	"errors"
	"fmt"
	"os"

	"journal-portal-api/config"
	"journal-portal-api/models"

	"gorm.io/gorm"
)

// DeletedUserName is the placeholder shown when a ledger entry references a
// user that no longer exists.
const DeletedUserName = "deleted user"

// HistoryEntry is one ledger record enriched with the acting user's display
// name and a resolved attachment URL.
type HistoryEntry struct {
	models.SubmissionStatusHistory
	ChangedByName string `json:"changed_by_name"`
	AttachmentURL string `json:"attachment_url,omitempty"`
}

// AppendHistory inserts one immutable ledger row. Callers pass the
// transaction the surrounding status change runs in.
func AppendHistory(tx *gorm.DB, entry *models.SubmissionStatusHistory) error {
	return tx.Create(entry).Error
}

// ListHistoryBySubmission returns every ledger entry for a manuscript,
// oldest first. Ties on created_at resolve by insertion order via the
// auto-increment id. Enrichment lookups degrade instead of failing: a
// missing user becomes a placeholder name, a missing attachment an empty
// URL.
func ListHistoryBySubmission(submissionID int) ([]HistoryEntry, error) {
	var rows []models.SubmissionStatusHistory
	err := config.DB.
		Where("submission_id = ?", submissionID).
		Order("created_at ASC, history_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(rows))
	lookups := dbHistoryLookups()
	for _, row := range rows {
		entries = append(entries, enrichHistory(row, lookups))
	}
	return entries, nil
}

// LatestHistoryBySubmission returns the most recent ledger entry or
// ErrNotFound when the manuscript has no history.
func LatestHistoryBySubmission(submissionID int) (*HistoryEntry, error) {
	var row models.SubmissionStatusHistory
	err := config.DB.
		Where("submission_id = ?", submissionID).
		Order("created_at DESC, history_id DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry := enrichHistory(row, dbHistoryLookups())
	return &entry, nil
}

// historyLookups resolves the references a ledger row carries. The store-
// backed set is the default; substituting the functions keeps enrichHistory
// itself free of database access.
type historyLookups struct {
	userName func(userID int) (string, bool)
	fileURL  func(fileID int) string
}

func dbHistoryLookups() historyLookups {
	return historyLookups{
		userName: func(userID int) (string, bool) {
			var user models.User
			if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
				return "", false
			}
			return user.DisplayName, true
		},
		fileURL: ResolveFileURL,
	}
}

func enrichHistory(row models.SubmissionStatusHistory, lookups historyLookups) HistoryEntry {
	entry := HistoryEntry{SubmissionStatusHistory: row}

	switch {
	case row.ActorRole == models.ActorSystem:
		entry.ChangedByName = "system"
	default:
		if name, ok := lookups.userName(row.ChangedBy); ok {
			entry.ChangedByName = name
		} else {
			entry.ChangedByName = DeletedUserName
		}
	}

	if row.AttachmentID != nil {
		entry.AttachmentURL = lookups.fileURL(*row.AttachmentID)
	}
	return entry
}

// ResolveFileURL maps a file id to its download URL, or empty when the file
// is gone.
func ResolveFileURL(fileID int) string {
	var file models.FileUpload
	err := config.DB.Where("file_id = ? AND delete_at IS NULL", fileID).First(&file).Error
	if err != nil {
		return ""
	}

	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/api/v1/documents/download/%d", base, file.FileID)
}
