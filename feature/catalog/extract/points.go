package extract

import (
	"strings"

	"catalog-pipeline/core/utils"
	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"
)

const (
	costNamePoints  = "pts"
	fieldSelections = "selections"

	constraintMin = "min"
	constraintMax = "max"

	modifierSet      = "set"
	conditionAtLeast = "atLeast"
)

// Tiers derives the points tiers for a unit entry.
//
// The base tier pairs the entry's direct cost (default 0) with the minimum
// model count read from the min-selections constraint of its first
// model-type child (default 1). Additional tiers come from cost-setting
// modifiers gated by at-least-N-selections conditions.
//
// Tiers are collected unsorted and thresholds are not validated against
// their costs; consumers pick the highest tier whose threshold does not
// exceed the actual model count. Model counts are unique within the result,
// first occurrence wins. An empty result means the unit has no derivable
// positive cost and must be dropped.
func Tiers(entry *bscribe.SelectionEntry) []models.PointsTier {
	if entry == nil {
		return nil
	}

	var tiers []models.PointsTier
	seen := make(map[int]struct{})

	add := func(t models.PointsTier) {
		if t.Points <= 0 || t.ModelCount <= 0 {
			return
		}
		if _, dup := seen[t.ModelCount]; dup {
			return
		}
		seen[t.ModelCount] = struct{}{}
		tiers = append(tiers, t)
	}

	base := DirectCost(entry)
	add(models.PointsTier{ModelCount: minModelCount(entry), Points: base})

	costTypeID := pointsCostTypeID(entry)
	for _, m := range entry.Modifiers {
		if m.Type != modifierSet || !isPointsField(m.Field, costTypeID) {
			continue
		}
		for _, c := range m.Conditions {
			if c.Type != conditionAtLeast || !strings.EqualFold(c.Field, fieldSelections) {
				continue
			}
			add(models.PointsTier{
				ModelCount: utils.ToInt(c.Value),
				Points:     int(utils.ToFloat(m.Value)),
			})
		}
	}

	return tiers
}

// DirectCost returns the entry's own points cost, 0 when absent.
func DirectCost(entry *bscribe.SelectionEntry) int {
	if entry == nil {
		return 0
	}
	return costValue(entry.Costs)
}

// LinkCost returns the points cost attached to an entry link itself.
func LinkCost(link *bscribe.EntryLink) int {
	if link == nil {
		return 0
	}
	return costValue(link.Costs)
}

func costValue(costs []*bscribe.Cost) int {
	for _, c := range costs {
		if strings.EqualFold(c.Name, costNamePoints) || strings.EqualFold(c.Name, "points") {
			return int(utils.ToFloat(c.Value))
		}
	}
	return 0
}

func pointsCostTypeID(entry *bscribe.SelectionEntry) string {
	for _, c := range entry.Costs {
		if strings.EqualFold(c.Name, costNamePoints) || strings.EqualFold(c.Name, "points") {
			return c.TypeID
		}
	}
	return ""
}

// isPointsField reports whether a modifier field refers to the points cost.
// Catalogues address the cost either by its type identifier or by name.
func isPointsField(field, costTypeID string) bool {
	if costTypeID != "" && field == costTypeID {
		return true
	}
	return strings.EqualFold(field, costNamePoints) || strings.EqualFold(field, "points")
}

// minModelCount reads the minimum squad size for a unit entry. The min
// selections constraint lives on the model-type child entry; a max-only
// constraint still leaves the largest tier applicable at or above its
// threshold, so only min matters here.
func minModelCount(entry *bscribe.SelectionEntry) int {
	if v := minSelections(entry.Constraints); v > 0 {
		return v
	}
	for _, child := range entry.SelectionEntries {
		if child.Type != bscribe.EntryTypeModel {
			continue
		}
		if v := minSelections(child.Constraints); v > 0 {
			return v
		}
	}
	for _, g := range entry.SelectionEntryGroups {
		if v := minSelections(g.Constraints); v > 0 {
			return v
		}
	}
	return 1
}

func minSelections(constraints []*bscribe.Constraint) int {
	for _, c := range constraints {
		if c.Type == constraintMin && strings.EqualFold(c.Field, fieldSelections) {
			return utils.ToInt(c.Value)
		}
	}
	return 0
}
