package services

import (
	"errors"
	"testing"

	"journal-portal-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionForwardPath(t *testing.T) {
	// The primary forward path and the correction loop.
	legal := [][2]models.Status{
		{models.StatusSubmitted, models.StatusPendingForReview},
		{models.StatusSubmitted, models.StatusUnderPeerReview},
		{models.StatusPendingForReview, models.StatusUnderPeerReview},
		{models.StatusUnderPeerReview, models.StatusRequestedForCorrection},
		{models.StatusRequestedForCorrection, models.StatusCorrectionSubmitted},
		{models.StatusCorrectionSubmitted, models.StatusUnderPeerReview},
		{models.StatusUnderPeerReview, models.StatusAccepted},
		{models.StatusUnderPeerReview, models.StatusRejected},
		{models.StatusAccepted, models.StatusPrePublication},
		{models.StatusAccepted, models.StatusPublished},
		{models.StatusPrePublication, models.StatusPublished},
		{models.StatusPublished, models.StatusUnpublished},
		{models.StatusUnpublished, models.StatusPublished},
		{models.StatusRejected, models.StatusPendingForReview},
	}
	for _, edge := range legal {
		assert.True(t, CanTransition(edge[0], edge[1]), "%s → %s should be legal", edge[0], edge[1])
	}
}

func TestCanTransitionRejectsSkips(t *testing.T) {
	illegal := [][2]models.Status{
		{models.StatusSubmitted, models.StatusPublished},
		{models.StatusSubmitted, models.StatusAccepted},
		{models.StatusPendingForReview, models.StatusAccepted},
		{models.StatusRequestedForCorrection, models.StatusAccepted},
		{models.StatusRejected, models.StatusPublished},
		{models.StatusPublished, models.StatusSubmitted},
		{models.StatusUnpublished, models.StatusUnderPeerReview},
		{models.StatusAccepted, models.StatusSubmitted},
	}
	for _, edge := range illegal {
		assert.False(t, CanTransition(edge[0], edge[1]), "%s → %s should be illegal", edge[0], edge[1])
	}
}

func TestValidateTransitionHappyPath(t *testing.T) {
	err := validateTransition(models.StatusSubmitted, 7, TransitionRequest{
		SubmissionID: 1,
		Target:       models.StatusUnderPeerReview,
		ActorID:      2,
		ActorRole:    models.RoleEditor,
		Note:         "assigned to review",
	})
	require.NoError(t, err)
}

func TestValidateTransitionForbidsAuthorDecision(t *testing.T) {
	err := validateTransition(models.StatusUnderPeerReview, 7, TransitionRequest{
		Target:    models.StatusAccepted,
		ActorID:   7,
		ActorRole: models.RoleAuthor,
		Note:      "I accept my own paper",
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestValidateTransitionForbidsForeignResubmit(t *testing.T) {
	// Only the submission's own author resubmits corrections.
	err := validateTransition(models.StatusRequestedForCorrection, 7, TransitionRequest{
		Target:    models.StatusCorrectionSubmitted,
		ActorID:   8,
		ActorRole: models.RoleAuthor,
		Note:      "revised",
	})
	require.ErrorIs(t, err, ErrForbidden)

	err = validateTransition(models.StatusRequestedForCorrection, 7, TransitionRequest{
		Target:    models.StatusCorrectionSubmitted,
		ActorID:   7,
		ActorRole: models.RoleAuthor,
		Note:      "revised methods section",
	})
	require.NoError(t, err)
}

func TestValidateTransitionIllegalEdge(t *testing.T) {
	err := validateTransition(models.StatusSubmitted, 7, TransitionRequest{
		Target:    models.StatusPublished,
		ActorID:   1,
		ActorRole: models.RoleAdmin,
		Note:      "rush it out",
	})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestValidateTransitionRequiresNote(t *testing.T) {
	err := validateTransition(models.StatusSubmitted, 7, TransitionRequest{
		Target:    models.StatusPendingForReview,
		ActorID:   2,
		ActorRole: models.RoleEditor,
		Note:      "   ",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestValidateTransitionUnknownStatus(t *testing.T) {
	err := validateTransition(models.StatusSubmitted, 7, TransitionRequest{
		Target:    models.Status("vanished"),
		ActorID:   2,
		ActorRole: models.RoleEditor,
		Note:      "?",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestValidateTransitionEditorialScenario(t *testing.T) {
	// Walks the editorial happy path one validation at a time: review
	// assignment, correction round-trip, acceptance.
	steps := []struct {
		current models.Status
		req     TransitionRequest
	}{
		{models.StatusSubmitted, TransitionRequest{Target: models.StatusUnderPeerReview, ActorID: 2, ActorRole: models.RoleEditor, Note: "assigned to review"}},
		{models.StatusUnderPeerReview, TransitionRequest{Target: models.StatusRequestedForCorrection, ActorID: 2, ActorRole: models.RoleEditor, Note: "fix methods section"}},
		{models.StatusRequestedForCorrection, TransitionRequest{Target: models.StatusCorrectionSubmitted, ActorID: 7, ActorRole: models.RoleAuthor, Note: "methods section revised"}},
		{models.StatusCorrectionSubmitted, TransitionRequest{Target: models.StatusAccepted, ActorID: 2, ActorRole: models.RoleEditor, Note: "ready for publication"}},
	}
	for i, step := range steps {
		if err := validateTransition(step.current, 7, step.req); err != nil {
			t.Fatalf("step %d (%s → %s): %v", i, step.current, step.req.Target, err)
		}
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrForbidden, ErrInvalidTransition, ErrValidation, ErrConflict}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel %v overlaps %v", a, b)
			}
		}
	}
}
