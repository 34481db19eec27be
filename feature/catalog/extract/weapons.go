package extract

import (
	"strings"

	"catalog-pipeline/core/utils"
	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"
)

// Profile type names that yield weapon records.
const (
	profileRangedWeapons = "Ranged Weapons"
	profileMeleeWeapons  = "Melee Weapons"
)

// Weapons collects every weapon profile reachable from a unit entry: direct
// profiles, child sub-entries and groups, entry links, and profile-kind info
// links pointing into the shared profile pool, all resolved via the index.
// Weapons are deduplicated within the unit by (name, kind), first
// occurrence wins.
func Weapons(entry *bscribe.SelectionEntry, idx *bscribe.Index) []models.Weapon {
	var out []models.Weapon
	seen := make(map[string]struct{})
	collectWeapons(entry, idx, 0, seen, &out)
	return out
}

func collectWeapons(entry *bscribe.SelectionEntry, idx *bscribe.Index, depth int, seen map[string]struct{}, out *[]models.Weapon) {
	if entry == nil || depth > maxDepth {
		return
	}

	for _, p := range entry.Profiles {
		if w, ok := weaponFromProfile(p); ok {
			addWeapon(w, seen, out)
		}
	}
	for _, child := range entry.SelectionEntries {
		collectWeapons(child, idx, depth+1, seen, out)
	}
	for _, g := range entry.SelectionEntryGroups {
		collectGroupWeapons(g, idx, depth+1, seen, out)
	}
	for _, link := range entry.EntryLinks {
		if target := idx.ResolveEntry(link); target != nil {
			collectWeapons(target, idx, depth+1, seen, out)
		}
		if group := idx.ResolveGroup(link); group != nil {
			collectGroupWeapons(group, idx, depth+1, seen, out)
		}
	}
	for _, link := range entry.InfoLinks {
		if link.Type != bscribe.LinkTypeProfile {
			continue
		}
		if p := idx.Profile(link.TargetID); p != nil {
			if w, ok := weaponFromProfile(p); ok {
				addWeapon(w, seen, out)
			}
		}
	}
}

func collectGroupWeapons(g *bscribe.SelectionEntryGroup, idx *bscribe.Index, depth int, seen map[string]struct{}, out *[]models.Weapon) {
	if g == nil || depth > maxDepth {
		return
	}
	for _, child := range g.SelectionEntries {
		collectWeapons(child, idx, depth+1, seen, out)
	}
	for _, nested := range g.SelectionEntryGroups {
		collectGroupWeapons(nested, idx, depth+1, seen, out)
	}
	for _, link := range g.EntryLinks {
		if target := idx.ResolveEntry(link); target != nil {
			collectWeapons(target, idx, depth+1, seen, out)
		}
		if group := idx.ResolveGroup(link); group != nil {
			collectGroupWeapons(group, idx, depth+1, seen, out)
		}
	}
}

func addWeapon(w models.Weapon, seen map[string]struct{}, out *[]models.Weapon) {
	key := strings.ToLower(w.Name) + "|" + string(w.Kind)
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}
	*out = append(*out, w)
}

// weaponFromProfile converts a weapon-typed profile into a Weapon record.
// Absent characteristics fall back to sane defaults so a sparse profile
// still yields a usable record.
func weaponFromProfile(p *bscribe.Profile) (models.Weapon, bool) {
	var kind models.WeaponKind
	switch {
	case strings.EqualFold(p.TypeName, profileRangedWeapons):
		kind = models.WeaponRanged
	case strings.EqualFold(p.TypeName, profileMeleeWeapons):
		kind = models.WeaponMelee
	default:
		return models.Weapon{}, false
	}

	w := models.Weapon{
		Name:     p.Name,
		Kind:     kind,
		Attacks:  "1",
		Skill:    "4+",
		Strength: 4,
		ArmorPen: 0,
		Damage:   "1",
	}

	if kind == models.WeaponRanged {
		w.Range = characteristic(p, "Range")
	}
	if v := characteristic(p, "A", "Attacks"); v != "" {
		w.Attacks = v
	}
	if v := characteristic(p, "BS", "WS", "Skill"); v != "" {
		w.Skill = v
	}
	if v := characteristic(p, "S", "Strength"); v != "" {
		w.Strength = utils.ToInt(v)
	}
	if v := characteristic(p, "AP"); v != "" {
		w.ArmorPen = utils.ToInt(v)
	}
	if v := characteristic(p, "D", "Damage"); v != "" {
		w.Damage = v
	}
	w.Keywords = splitKeywords(characteristic(p, "Keywords"))

	return w, true
}
