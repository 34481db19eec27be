package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// idNamespace seeds the UUIDv5 derivation. Changing it would re-key every
// emitted record, so it is fixed for the life of the stored data.
var idNamespace = uuid.MustParse("8f3c1d6a-5b0e-4d2f-9c47-aa21e09db513")

// deterministicID hashes a semantic seed ("unit:<faction>:<name>") into a
// stable hyphenated hex identifier. Identical seeds always yield identical
// identifiers, which is what lets the destination upsert-on-conflict across
// repeated runs.
func deterministicID(kind string, parts ...string) string {
	seed := kind + ":" + strings.Join(parts, ":")
	return uuid.NewSHA1(idNamespace, []byte(seed)).String()
}

// FactionID derives the stable identifier of a faction.
func FactionID(faction string) string {
	return deterministicID("faction", faction)
}

// UnitID derives the stable identifier of a unit within a faction.
func UnitID(faction, unit string) string {
	return deterministicID("unit", faction, unit)
}

// DetachmentID derives the stable identifier of a detachment within a faction.
func DetachmentID(faction, detachment string) string {
	return deterministicID("detachment", faction, detachment)
}

// EnhancementID derives the stable identifier of an enhancement within a
// detachment.
func EnhancementID(faction, detachment, enhancement string) string {
	return deterministicID("enhancement", faction, detachment, enhancement)
}
