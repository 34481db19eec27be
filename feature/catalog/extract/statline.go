package extract

import (
	"strings"

	"catalog-pipeline/core/utils"
	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"
)

const profileUnit = "Unit"

// Stats returns the first Unit-typed profile found by depth-first search:
// direct profiles, then child sub-entries, then group children. A unit
// entry without a stat profile returns nil and is excluded from output by
// the assembler.
func Stats(entry *bscribe.SelectionEntry) *models.StatLine {
	p := findUnitProfile(entry, 0)
	if p == nil {
		return nil
	}

	return &models.StatLine{
		Movement:         characteristic(p, "M", "Movement"),
		Toughness:        utils.ToInt(characteristic(p, "T", "Toughness")),
		Save:             characteristic(p, "SV", "Save"),
		Wounds:           utils.ToInt(characteristic(p, "W", "Wounds")),
		Leadership:       utils.ToInt(characteristic(p, "LD", "Leadership")),
		ObjectiveControl: utils.ToInt(characteristic(p, "OC", "Objective Control")),
	}
}

func findUnitProfile(entry *bscribe.SelectionEntry, depth int) *bscribe.Profile {
	if entry == nil || depth > maxDepth {
		return nil
	}
	for _, p := range entry.Profiles {
		if strings.EqualFold(p.TypeName, profileUnit) {
			return p
		}
	}
	for _, child := range entry.SelectionEntries {
		if p := findUnitProfile(child, depth+1); p != nil {
			return p
		}
	}
	for _, g := range entry.SelectionEntryGroups {
		if p := findGroupUnitProfile(g, depth+1); p != nil {
			return p
		}
	}
	return nil
}

func findGroupUnitProfile(g *bscribe.SelectionEntryGroup, depth int) *bscribe.Profile {
	if g == nil || depth > maxDepth {
		return nil
	}
	for _, child := range g.SelectionEntries {
		if p := findUnitProfile(child, depth+1); p != nil {
			return p
		}
	}
	for _, nested := range g.SelectionEntryGroups {
		if p := findGroupUnitProfile(nested, depth+1); p != nil {
			return p
		}
	}
	return nil
}
