package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi-dev/portal_konten_be/internal/seed"
)

func TestAccessorsReturnCopies(t *testing.T) {
	a := seed.Feeds()
	require.NotEmpty(t, a)
	a[0].Title = "dicoret-coret"

	b := seed.Feeds()
	assert.NotEqual(t, "dicoret-coret", b[0].Title, "mutasi caller tidak boleh bocor ke seed")
}

func TestFeedIDsUnique(t *testing.T) {
	seen := map[uint]bool{}
	for _, f := range seed.Feeds() {
		assert.False(t, seen[f.ID], "ID seed feed harus unik")
		seen[f.ID] = true
	}
}

func TestMaxFeedID(t *testing.T) {
	max := seed.MaxFeedID()
	for _, f := range seed.Feeds() {
		assert.LessOrEqual(t, f.ID, max)
	}
	assert.NotZero(t, max)
}
