package extract

import (
	"strings"
	"unicode/utf8"

	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"
)

const (
	enhancementsGroupName  = "Enhancements"
	enhancementsSuffix     = " Enhancements"
	maxDetachmentRuleChars = 1200
)

// enhancementGroup pairs a group label with the enhancement entries found
// under it. The label drives detachment attribution.
type enhancementGroup struct {
	name    string
	entries []*bscribe.SelectionEntry
}

// Detachments locates the detachment choice group of a document, extracts
// one Detachment per choice, and attributes enhancements to them by
// heuristic name matching. Identifiers are left empty; the assembler fills
// them once the faction label is final.
func Detachments(cat *bscribe.Catalogue, idx *bscribe.Index) []models.Detachment {
	group := findDetachmentGroup(cat, idx)
	if group == nil {
		return nil
	}

	entries := groupEntries(group, idx, 0)
	enhancements := findEnhancementGroups(cat, idx)

	var out []models.Detachment
	seen := make(map[string]struct{})
	for _, entry := range entries {
		if entry.Hidden || entry.Name == "" {
			continue
		}
		key := strings.ToLower(entry.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		det := models.Detachment{
			Name: entry.Name,
			Rule: detachmentRule(entry, idx),
		}
		for _, eg := range enhancements {
			for _, cand := range eg.entries {
				if !attributed(eg.name, cand, det.Name) {
					continue
				}
				det.Enhancements = append(det.Enhancements, models.Enhancement{
					Name:        cand.Name,
					Points:      DirectCost(cand),
					Description: enhancementDescription(cand),
				})
			}
		}
		out = append(out, det)
	}

	return out
}

// MatchesDetachment is the structural half of the attribution heuristic:
// after stripping an " Enhancements" suffix, the group name and the
// detachment name must contain one another (either direction,
// case-insensitive). Short detachment names can false-positive against
// unrelated group names; that ambiguity is inherent to the source data.
func MatchesDetachment(groupName, detachmentName string) bool {
	g := strings.ToLower(strings.TrimSuffix(groupName, enhancementsSuffix))
	d := strings.ToLower(detachmentName)
	if g == "" || d == "" {
		return false
	}
	return strings.Contains(g, d) || strings.Contains(d, g)
}

// attributed applies the full precedence: structural group-name containment
// first, exact annotation match second.
func attributed(groupName string, entry *bscribe.SelectionEntry, detachmentName string) bool {
	if MatchesDetachment(groupName, detachmentName) {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(entry.Comment), detachmentName)
}

// findDetachmentGroup searches, in order, the shared group pool, the shared
// entry pool, and the top-level entries for a group named Detachment(s),
// following entry links with a bounded depth.
func findDetachmentGroup(cat *bscribe.Catalogue, idx *bscribe.Index) *bscribe.SelectionEntryGroup {
	for _, g := range cat.SharedSelectionEntryGroups {
		if found := detachmentGroupIn(g, idx, 0); found != nil {
			return found
		}
	}
	for _, e := range cat.SharedSelectionEntries {
		if found := detachmentGroupInEntry(e, idx, 0); found != nil {
			return found
		}
	}
	for _, e := range cat.SelectionEntries {
		if found := detachmentGroupInEntry(e, idx, 0); found != nil {
			return found
		}
	}
	return nil
}

func isDetachmentGroupName(name string) bool {
	return strings.EqualFold(name, "Detachment") || strings.EqualFold(name, "Detachments")
}

func detachmentGroupIn(g *bscribe.SelectionEntryGroup, idx *bscribe.Index, depth int) *bscribe.SelectionEntryGroup {
	if g == nil || depth > maxDepth {
		return nil
	}
	if isDetachmentGroupName(g.Name) {
		return g
	}
	for _, nested := range g.SelectionEntryGroups {
		if found := detachmentGroupIn(nested, idx, depth+1); found != nil {
			return found
		}
	}
	for _, link := range g.EntryLinks {
		if target := idx.ResolveGroup(link); target != nil {
			if found := detachmentGroupIn(target, idx, depth+1); found != nil {
				return found
			}
		}
		if target := idx.ResolveEntry(link); target != nil {
			if found := detachmentGroupInEntry(target, idx, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}

func detachmentGroupInEntry(e *bscribe.SelectionEntry, idx *bscribe.Index, depth int) *bscribe.SelectionEntryGroup {
	if e == nil || depth > maxDepth {
		return nil
	}
	for _, g := range e.SelectionEntryGroups {
		if found := detachmentGroupIn(g, idx, depth+1); found != nil {
			return found
		}
	}
	for _, child := range e.SelectionEntries {
		if found := detachmentGroupInEntry(child, idx, depth+1); found != nil {
			return found
		}
	}
	for _, link := range e.EntryLinks {
		if target := idx.ResolveGroup(link); target != nil {
			if found := detachmentGroupIn(target, idx, depth+1); found != nil {
				return found
			}
		}
		if target := idx.ResolveEntry(link); target != nil {
			if found := detachmentGroupInEntry(target, idx, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}

// groupEntries returns the group's direct entries plus link targets.
func groupEntries(g *bscribe.SelectionEntryGroup, idx *bscribe.Index, depth int) []*bscribe.SelectionEntry {
	if g == nil || depth > maxDepth {
		return nil
	}
	var out []*bscribe.SelectionEntry
	out = append(out, g.SelectionEntries...)
	for _, link := range g.EntryLinks {
		if target := idx.ResolveEntry(link); target != nil {
			out = append(out, target)
		}
	}
	for _, nested := range g.SelectionEntryGroups {
		out = append(out, groupEntries(nested, idx, depth+1)...)
	}
	return out
}

// findEnhancementGroups collects every Enhancements-named group in the
// shared group pool, recursively. Named sub-groups carry the detachment
// association; a group with direct child entries also counts as a group
// under its own name.
func findEnhancementGroups(cat *bscribe.Catalogue, idx *bscribe.Index) []enhancementGroup {
	var out []enhancementGroup
	for _, g := range cat.SharedSelectionEntryGroups {
		collectEnhancementGroups(g, idx, 0, &out)
	}
	return out
}

func collectEnhancementGroups(g *bscribe.SelectionEntryGroup, idx *bscribe.Index, depth int, out *[]enhancementGroup) {
	if g == nil || depth > maxDepth {
		return
	}
	if strings.EqualFold(g.Name, enhancementsGroupName) {
		for _, sub := range g.SelectionEntryGroups {
			entries := groupEntries(sub, idx, depth+1)
			if len(entries) > 0 {
				*out = append(*out, enhancementGroup{name: sub.Name, entries: entries})
			}
		}
		if len(g.SelectionEntries) > 0 || len(g.EntryLinks) > 0 {
			direct := g.SelectionEntries
			for _, link := range g.EntryLinks {
				if target := idx.ResolveEntry(link); target != nil {
					direct = append(direct, target)
				}
			}
			if len(direct) > 0 {
				*out = append(*out, enhancementGroup{name: g.Name, entries: direct})
			}
		}
		return
	}
	for _, nested := range g.SelectionEntryGroups {
		collectEnhancementGroups(nested, idx, depth+1, out)
	}
}

// detachmentRule pulls the free-text rule description off a detachment
// entry, preferring ability profiles over rule children, length-capped.
func detachmentRule(entry *bscribe.SelectionEntry, idx *bscribe.Index) string {
	for _, p := range entry.Profiles {
		if desc := characteristic(p, "Description"); desc != "" {
			return capText(desc, maxDetachmentRuleChars)
		}
	}
	for _, r := range entry.Rules {
		if desc := strings.TrimSpace(r.Description); desc != "" {
			return capText(desc, maxDetachmentRuleChars)
		}
	}
	for _, link := range entry.InfoLinks {
		if link.Type != bscribe.LinkTypeRule {
			continue
		}
		if rule := idx.Rule(link.TargetID); rule != nil {
			if desc := strings.TrimSpace(rule.Description); desc != "" {
				return capText(desc, maxDetachmentRuleChars)
			}
		}
	}
	return ""
}

func enhancementDescription(entry *bscribe.SelectionEntry) string {
	for _, p := range entry.Profiles {
		if desc := characteristic(p, "Description"); desc != "" {
			return desc
		}
	}
	for _, r := range entry.Rules {
		if desc := strings.TrimSpace(r.Description); desc != "" {
			return desc
		}
	}
	return ""
}

func capText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	// Back off a partial multi-byte rune at the cut point.
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
