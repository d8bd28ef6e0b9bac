package services

import (
	"testing"

	"journal-portal-api/models"

	"github.com/stretchr/testify/assert"
)

func fakeLookups(users map[int]string, files map[int]string) historyLookups {
	return historyLookups{
		userName: func(userID int) (string, bool) {
			name, ok := users[userID]
			return name, ok
		},
		fileURL: func(fileID int) string {
			return files[fileID]
		},
	}
}

func TestEnrichHistoryActorNames(t *testing.T) {
	lookups := fakeLookups(map[int]string{7: "Ada Lovelace"}, nil)

	entry := enrichHistory(models.SubmissionStatusHistory{
		ChangedBy: 7,
		ActorRole: models.ActorEditor,
	}, lookups)
	assert.Equal(t, "Ada Lovelace", entry.ChangedByName)

	entry = enrichHistory(models.SubmissionStatusHistory{
		ChangedBy: 99,
		ActorRole: models.ActorAuthor,
	}, lookups)
	assert.Equal(t, DeletedUserName, entry.ChangedByName)
}

func TestEnrichHistorySystemActor(t *testing.T) {
	// System entries never consult the user lookup, even when the row
	// carries a user id.
	lookups := fakeLookups(map[int]string{7: "Ada Lovelace"}, nil)

	entry := enrichHistory(models.SubmissionStatusHistory{
		ChangedBy: 7,
		ActorRole: models.ActorSystem,
	}, lookups)
	assert.Equal(t, "system", entry.ChangedByName)
}

func TestEnrichHistoryAttachmentURL(t *testing.T) {
	attachment := 42
	missing := 43
	lookups := fakeLookups(
		map[int]string{7: "Ada Lovelace"},
		map[int]string{attachment: "http://localhost:8080/api/v1/documents/download/42"},
	)

	entry := enrichHistory(models.SubmissionStatusHistory{
		ChangedBy:    7,
		ActorRole:    models.ActorEditor,
		AttachmentID: &attachment,
	}, lookups)
	assert.Equal(t, "http://localhost:8080/api/v1/documents/download/42", entry.AttachmentURL)

	// A deleted file degrades to an empty URL rather than an error.
	entry = enrichHistory(models.SubmissionStatusHistory{
		ChangedBy:    7,
		ActorRole:    models.ActorEditor,
		AttachmentID: &missing,
	}, lookups)
	assert.Empty(t, entry.AttachmentURL)

	entry = enrichHistory(models.SubmissionStatusHistory{
		ChangedBy: 7,
		ActorRole: models.ActorEditor,
	}, lookups)
	assert.Empty(t, entry.AttachmentURL)
}
