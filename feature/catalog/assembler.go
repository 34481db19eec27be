package catalog

import (
	"strings"

	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/extract"
	"catalog-pipeline/feature/catalog/models"
)

// organizationalPrefixes are grouping labels catalogue titles carry in
// front of the faction name proper.
var organizationalPrefixes = []string{
	"Imperium - ",
	"Chaos - ",
	"Xenos - ",
	"Aeldari - ",
	"Unaligned Forces - ",
}

// librarySuffixes mark auxiliary catalogues that feed a main one.
var librarySuffixes = []string{
	" - Library",
	" Library",
	" - Forge World",
}

// DocumentBundle is the per-document assembly result, scoped to the
// document's own faction label. Identifiers stay empty until the
// faction-level merge rebases them onto the final faction name.
type DocumentBundle struct {
	Faction     string
	Units       []models.Unit
	Detachments []models.Detachment
}

// CleanFactionName strips the organizational prefixes and library suffixes
// from a raw catalogue title.
func CleanFactionName(raw string) string {
	name := strings.TrimSpace(raw)
	for _, prefix := range organizationalPrefixes {
		name = strings.TrimPrefix(name, prefix)
	}
	for _, suffix := range librarySuffixes {
		name = strings.TrimSuffix(name, suffix)
	}
	return strings.TrimSpace(name)
}

// BuildDocument assembles one parsed catalogue into a document bundle.
// It discovers unit entries among the top-level selection entries and
// cross-references, extracts every facet, and drops entries that are
// hidden, lack a stat line, or have no positive points tier.
func BuildDocument(cat *bscribe.Catalogue, idx *bscribe.Index) *DocumentBundle {
	bundle := &DocumentBundle{
		Faction: CleanFactionName(cat.Name),
	}

	seen := make(map[string]struct{})
	for _, entry := range cat.SelectionEntries {
		if unit, ok := buildUnit(entry, idx); ok {
			addUnit(bundle, unit, seen)
		}
	}
	for _, link := range cat.EntryLinks {
		if link.Hidden {
			continue
		}
		target := idx.ResolveEntry(link)
		if target == nil {
			continue
		}
		if unit, ok := buildUnit(target, idx); ok {
			addUnit(bundle, unit, seen)
		}
	}

	bundle.Detachments = extract.Detachments(cat, idx)

	return bundle
}

func addUnit(bundle *DocumentBundle, unit models.Unit, seen map[string]struct{}) {
	key := strings.ToLower(unit.Name)
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}
	bundle.Units = append(bundle.Units, unit)
}

// buildUnit extracts one unit from an entry, reporting false when the entry
// is not a unit or is expected input noise (hidden, no stat profile, no
// positive cost).
func buildUnit(entry *bscribe.SelectionEntry, idx *bscribe.Index) (models.Unit, bool) {
	if entry == nil || entry.Hidden || entry.Name == "" {
		return models.Unit{}, false
	}

	// Large single-model types (knights, tanks bought alone) are structured
	// as model entries with a direct cost rather than unit entries.
	switch entry.Type {
	case bscribe.EntryTypeUnit:
	case bscribe.EntryTypeModel:
		if extract.DirectCost(entry) <= 0 {
			return models.Unit{}, false
		}
	default:
		return models.Unit{}, false
	}

	stats := extract.Stats(entry)
	if stats == nil {
		return models.Unit{}, false
	}

	tiers := extract.Tiers(entry)
	if len(tiers) == 0 {
		return models.Unit{}, false
	}

	role := extract.Role(entry)
	unit := models.Unit{
		Name:      entry.Name,
		Role:      role,
		Stats:     *stats,
		Keywords:  extract.Keywords(entry),
		Unique:    extract.IsUnique(entry, role),
		Tiers:     tiers,
		Weapons:   extract.Weapons(entry, idx),
		Abilities: extract.Abilities(entry, idx),
		Wargear:   extract.Wargear(entry, idx),
	}
	return unit, true
}

// MergeBundles folds one faction's document bundles (primary catalogue
// first, then libraries) into a single faction. Units and detachments
// deduplicate by name, first seen wins. Every identity is then rebased onto
// the merge-level faction name, so a unit keeps the same identifier no
// matter which document defined it.
func MergeBundles(faction string, bundles []*DocumentBundle) *models.Faction {
	out := &models.Faction{
		ID:   FactionID(faction),
		Name: faction,
	}

	seenUnits := make(map[string]struct{})
	seenDets := make(map[string]struct{})
	for _, bundle := range bundles {
		if bundle == nil {
			continue
		}
		for _, unit := range bundle.Units {
			key := strings.ToLower(unit.Name)
			if _, dup := seenUnits[key]; dup {
				continue
			}
			seenUnits[key] = struct{}{}
			out.Units = append(out.Units, unit)
		}
		for _, det := range bundle.Detachments {
			key := strings.ToLower(det.Name)
			if _, dup := seenDets[key]; dup {
				continue
			}
			seenDets[key] = struct{}{}
			out.Detachments = append(out.Detachments, det)
		}
	}

	if len(out.Detachments) == 0 {
		out.Detachments = append(out.Detachments, defaultDetachment())
	}

	rebaseIdentity(out)
	return out
}

// defaultDetachment keeps a faction usable downstream when its documents
// expose no detachment structure at all.
func defaultDetachment() models.Detachment {
	return models.Detachment{
		Name: "Standard Detachment",
		Rule: "This army has no detachment rules defined. Build your roster using the faction's datasheets as normal.",
	}
}

func rebaseIdentity(f *models.Faction) {
	for i := range f.Units {
		f.Units[i].ID = UnitID(f.Name, f.Units[i].Name)
		f.Units[i].FactionID = f.ID
	}
	for i := range f.Detachments {
		det := &f.Detachments[i]
		det.ID = DetachmentID(f.Name, det.Name)
		det.FactionID = f.ID
		for j := range det.Enhancements {
			det.Enhancements[j].ID = EnhancementID(f.Name, det.Name, det.Enhancements[j].Name)
			det.Enhancements[j].DetachmentID = det.ID
		}
	}
}
