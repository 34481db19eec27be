package extract

import (
	"strings"

	"catalog-pipeline/core/utils"
	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"
)

// rolePriority maps category labels to roles in priority order. A unit
// carrying several mapped categories resolves to the first match.
var rolePriority = []struct {
	category string
	role     models.Role
}{
	{"Epic Hero", models.RoleEpicHero},
	{"Character", models.RoleCharacter},
	{"Battleline", models.RoleBattleline},
	{"Infantry", models.RoleInfantry},
	{"Mounted", models.RoleMounted},
	{"Beast", models.RoleBeast},
	{"Beasts", models.RoleBeast},
	{"Vehicle", models.RoleVehicle},
	{"Monster", models.RoleMonster},
	{"Fortification", models.RoleFortification},
	{"Dedicated Transport", models.RoleDedicatedTransport},
	{"Allied Units", models.RoleAllied},
}

// keywordDenylist holds category labels that are organizational noise, not
// datasheet keywords.
var keywordDenylist = []string{
	"Warlord",
	"Legends",
}

const factionCategoryPrefix = "Faction: "

// Role resolves a unit's single battlefield role from its category labels,
// falling back to infantry when none match.
func Role(entry *bscribe.SelectionEntry) models.Role {
	categories := categoryNames(entry)
	for _, rp := range rolePriority {
		if containsFold(categories, rp.category) {
			return rp.role
		}
	}
	return models.RoleInfantry
}

// Keywords returns the unit's category labels in encounter order, skipping
// faction-prefixed labels, configuration placeholders and the denylist.
func Keywords(entry *bscribe.SelectionEntry) []string {
	var out []string
	for _, name := range categoryNames(entry) {
		if strings.HasPrefix(name, factionCategoryPrefix) {
			continue
		}
		if strings.HasPrefix(name, "Configuration") {
			continue
		}
		if containsFold(keywordDenylist, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// IsUnique reports whether at most one of the unit may exist in a roster:
// epic heroes always, otherwise a roster-scoped max-1 selections constraint.
func IsUnique(entry *bscribe.SelectionEntry, role models.Role) bool {
	if role == models.RoleEpicHero {
		return true
	}
	if entry == nil {
		return false
	}
	for _, c := range entry.Constraints {
		if c.Type == constraintMax &&
			strings.EqualFold(c.Field, fieldSelections) &&
			strings.EqualFold(c.Scope, "roster") &&
			utils.ToInt(c.Value) == 1 {
			return true
		}
	}
	return false
}

func categoryNames(entry *bscribe.SelectionEntry) []string {
	if entry == nil {
		return nil
	}
	names := make([]string, 0, len(entry.CategoryLinks))
	for _, link := range entry.CategoryLinks {
		if link.Name != "" {
			names = append(names, link.Name)
		}
	}
	return names
}
