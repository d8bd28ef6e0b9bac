package services

import (
	"testing"

	"journal-portal-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		action Action
		admin  bool
		editor bool
		author bool
	}{
		{ActionCreateSubmission, true, true, true},
		{ActionResubmitCorrection, true, true, true},
		{ActionDecideSubmission, true, true, false},
		{ActionRecordReview, true, true, false},
		{ActionPublishArticle, true, false, false},
		{ActionManageIssues, true, true, false},
		{ActionPublishIssue, true, false, false},
		{ActionDeleteIssue, true, false, false},
		{ActionManageTemplates, true, true, false},
		{ActionChangeUserRole, true, false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.admin, CanPerform(models.RoleAdmin, tt.action), "admin on %s", tt.action)
		assert.Equal(t, tt.editor, CanPerform(models.RoleEditor, tt.action), "editor on %s", tt.action)
		assert.Equal(t, tt.author, CanPerform(models.RoleAuthor, tt.action), "author on %s", tt.action)
	}
}

func TestCanPerformUnknownAction(t *testing.T) {
	assert.False(t, CanPerform(models.RoleAdmin, Action("submission:nuke")))
	assert.False(t, CanPerform(models.Role("superuser"), ActionCreateSubmission))
}

func TestTransitionAction(t *testing.T) {
	assert.Equal(t, ActionResubmitCorrection, transitionAction(models.StatusCorrectionSubmitted))
	assert.Equal(t, ActionPublishArticle, transitionAction(models.StatusPublished))
	assert.Equal(t, ActionPublishArticle, transitionAction(models.StatusUnpublished))
	assert.Equal(t, ActionDecideSubmission, transitionAction(models.StatusAccepted))
	assert.Equal(t, ActionDecideSubmission, transitionAction(models.StatusUnderPeerReview))
}
