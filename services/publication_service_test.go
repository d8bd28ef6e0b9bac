package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func takenSet(slugs ...string) func(string) (bool, error) {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return func(candidate string) (bool, error) {
		return set[candidate], nil
	}
}

func TestNextSlug(t *testing.T) {
	slug, err := nextSlug("Peer Review at Scale", takenSet())
	assert.NoError(t, err)
	assert.Equal(t, "peer-review-at-scale", slug)
}

func TestNextSlugWalksSuffixes(t *testing.T) {
	// A re-promoted article collides with its own previous slug, so every
	// re-projection of the same title lands on a fresh suffix.
	slug, err := nextSlug("Peer Review at Scale", takenSet("peer-review-at-scale"))
	assert.NoError(t, err)
	assert.Equal(t, "peer-review-at-scale-2", slug)

	slug, err = nextSlug("Peer Review at Scale",
		takenSet("peer-review-at-scale", "peer-review-at-scale-2"))
	assert.NoError(t, err)
	assert.Equal(t, "peer-review-at-scale-3", slug)
}

func TestNextSlugEmptyTitle(t *testing.T) {
	_, err := nextSlug("???", takenSet())
	assert.ErrorIs(t, err, ErrValidation)
}
