package catalog

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestIdentity_Deterministic(t *testing.T) {
	assert.Equal(t, UnitID("Space Marines", "Intercessor Squad"), UnitID("Space Marines", "Intercessor Squad"))
	assert.Equal(t, FactionID("Orks"), FactionID("Orks"))
	assert.Equal(t, DetachmentID("Orks", "Waaagh! Tribe"), DetachmentID("Orks", "Waaagh! Tribe"))
	assert.Equal(t,
		EnhancementID("Orks", "Waaagh! Tribe", "Headwoppa's Killchoppa"),
		EnhancementID("Orks", "Waaagh! Tribe", "Headwoppa's Killchoppa"))
}

func TestIdentity_DistinctSeeds(t *testing.T) {
	ids := []string{
		FactionID("Space Marines"),
		UnitID("Space Marines", "Space Marines"),
		DetachmentID("Space Marines", "Space Marines"),
		UnitID("Space Marines", "Intercessor Squad"),
		UnitID("Orks", "Intercessor Squad"),
	}
	seen := map[string]struct{}{}
	for _, id := range ids {
		assert.Regexp(t, idPattern, id)
		_, dup := seen[id]
		assert.False(t, dup, "identifier collision: %s", id)
		seen[id] = struct{}{}
	}
}
