package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusClosedSet(t *testing.T) {
	for _, s := range AllStatuses {
		parsed, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	for _, raw := range []string{"", "SUBMITTED", "draft", "in_review", "published "} {
		_, err := ParseStatus(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"admin", "editor", "author"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.True(t, role.Valid())
	}

	_, err := ParseRole("reviewer")
	assert.Error(t, err)
}

func TestParseVerdict(t *testing.T) {
	for _, raw := range []string{"approve", "reject", "changes_requested"} {
		_, err := ParseVerdict(raw)
		require.NoError(t, err)
	}

	_, err := ParseVerdict("maybe")
	assert.Error(t, err)
}

func TestHistoryActorForRole(t *testing.T) {
	// Admins act in an editorial capacity in the ledger.
	assert.Equal(t, ActorEditor, HistoryActorForRole(RoleAdmin))
	assert.Equal(t, ActorEditor, HistoryActorForRole(RoleEditor))
	assert.Equal(t, ActorAuthor, HistoryActorForRole(RoleAuthor))
}

func TestAuthorListScanRoundTrip(t *testing.T) {
	list := AuthorList{{Name: "Ada Lovelace", Affiliation: "Analytical Engine Lab"}}

	value, err := list.Value()
	require.NoError(t, err)

	var scanned AuthorList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)

	var empty AuthorList
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
