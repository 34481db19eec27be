package extract

import (
	"strings"

	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"
)

const wargearGroupName = "Wargear"

// Wargear extracts the mutually-exclusive loadout choices of a unit from
// its Wargear-named child groups.
//
// Direct upgrade entries become options in the "Wargear" group, first one
// default. Entry links become options too, default only when the group has
// none yet. Nested sub-groups (named weapon slots) each form their own
// option group with independent first-is-default tracking. Options are
// unique per (group, name), first occurrence wins.
func Wargear(entry *bscribe.SelectionEntry, idx *bscribe.Index) []models.WargearOption {
	if entry == nil {
		return nil
	}

	var out []models.WargearOption
	seen := make(map[string]struct{})
	for _, g := range entry.SelectionEntryGroups {
		if !strings.EqualFold(g.Name, wargearGroupName) {
			continue
		}
		collectOptions(g, idx, wargearGroupName, seen, &out)
	}
	return out
}

func collectOptions(g *bscribe.SelectionEntryGroup, idx *bscribe.Index, groupName string, seen map[string]struct{}, out *[]models.WargearOption) {
	hasDefault := groupHasDefault(*out, groupName)

	for _, child := range g.SelectionEntries {
		if child.Type != bscribe.EntryTypeUpgrade {
			continue
		}
		opt := models.WargearOption{
			Group:  groupName,
			Name:   child.Name,
			Points: DirectCost(child),
		}
		if addOption(opt, !hasDefault, seen, out) {
			hasDefault = true
		}
	}

	for _, link := range g.EntryLinks {
		target := idx.ResolveEntry(link)
		if target == nil {
			continue
		}
		points := LinkCost(link)
		if points == 0 {
			points = DirectCost(target)
		}
		opt := models.WargearOption{
			Group:  groupName,
			Name:   target.Name,
			Points: points,
		}
		if addOption(opt, !hasDefault, seen, out) {
			hasDefault = true
		}
	}

	for _, nested := range g.SelectionEntryGroups {
		collectOptions(nested, idx, nested.Name, seen, out)
	}
}

// addOption appends the option unless its (group, name) already exists.
// It reports whether the group now has a default.
func addOption(opt models.WargearOption, makeDefault bool, seen map[string]struct{}, out *[]models.WargearOption) bool {
	key := strings.ToLower(opt.Group) + "|" + strings.ToLower(opt.Name)
	if _, dup := seen[key]; dup {
		return false
	}
	seen[key] = struct{}{}
	opt.Default = makeDefault
	*out = append(*out, opt)
	return makeDefault
}

func groupHasDefault(opts []models.WargearOption, group string) bool {
	for _, o := range opts {
		if o.Group == group && o.Default {
			return true
		}
	}
	return false
}
