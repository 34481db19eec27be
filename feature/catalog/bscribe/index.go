package bscribe

// Index maps identifiers to nodes for O(1) cross-reference resolution.
// It is built once per document by a single walk over every
// nested-definition container and shared pool, and queried read-only
// afterwards. Duplicate identifiers are not expected in well-formed input;
// if one occurs, the later-visited node silently wins.
type Index struct {
	entries  map[string]*SelectionEntry
	groups   map[string]*SelectionEntryGroup
	profiles map[string]*Profile
	rules    map[string]*Rule
}

// BuildIndex walks the catalogue and registers every entry, group, profile
// and rule it contains, regardless of nesting depth.
func BuildIndex(cat *Catalogue) *Index {
	idx := &Index{
		entries:  make(map[string]*SelectionEntry),
		groups:   make(map[string]*SelectionEntryGroup),
		profiles: make(map[string]*Profile),
		rules:    make(map[string]*Rule),
	}

	for _, e := range cat.SelectionEntries {
		idx.addEntry(e)
	}
	for _, e := range cat.SharedSelectionEntries {
		idx.addEntry(e)
	}
	for _, g := range cat.SharedSelectionEntryGroups {
		idx.addGroup(g)
	}
	for _, p := range cat.SharedProfiles {
		idx.addProfile(p)
	}
	for _, r := range cat.SharedRules {
		idx.addRule(r)
	}
	for _, r := range cat.Rules {
		idx.addRule(r)
	}

	return idx
}

// Entry returns the selection entry with the given identifier, or nil.
func (idx *Index) Entry(id string) *SelectionEntry {
	return idx.entries[id]
}

// Group returns the selection entry group with the given identifier, or nil.
func (idx *Index) Group(id string) *SelectionEntryGroup {
	return idx.groups[id]
}

// Profile returns the profile with the given identifier, or nil.
func (idx *Index) Profile(id string) *Profile {
	return idx.profiles[id]
}

// Rule returns the rule with the given identifier, or nil.
func (idx *Index) Rule(id string) *Rule {
	return idx.rules[id]
}

// ResolveEntry follows an entry link of selectionEntry type.
// An unresolvable target contributes nothing: nil is returned.
func (idx *Index) ResolveEntry(link *EntryLink) *SelectionEntry {
	if link == nil || link.Type != LinkTypeSelectionEntry {
		return nil
	}
	return idx.entries[link.TargetID]
}

// ResolveGroup follows an entry link of selectionEntryGroup type.
func (idx *Index) ResolveGroup(link *EntryLink) *SelectionEntryGroup {
	if link == nil || link.Type != LinkTypeSelectionEntryGroup {
		return nil
	}
	return idx.groups[link.TargetID]
}

func (idx *Index) addEntry(e *SelectionEntry) {
	if e == nil {
		return
	}
	if e.ID != "" {
		idx.entries[e.ID] = e
	}
	for _, p := range e.Profiles {
		idx.addProfile(p)
	}
	for _, r := range e.Rules {
		idx.addRule(r)
	}
	for _, child := range e.SelectionEntries {
		idx.addEntry(child)
	}
	for _, g := range e.SelectionEntryGroups {
		idx.addGroup(g)
	}
}

func (idx *Index) addGroup(g *SelectionEntryGroup) {
	if g == nil {
		return
	}
	if g.ID != "" {
		idx.groups[g.ID] = g
	}
	for _, child := range g.SelectionEntries {
		idx.addEntry(child)
	}
	for _, nested := range g.SelectionEntryGroups {
		idx.addGroup(nested)
	}
}

func (idx *Index) addProfile(p *Profile) {
	if p != nil && p.ID != "" {
		idx.profiles[p.ID] = p
	}
}

func (idx *Index) addRule(r *Rule) {
	if r != nil && r.ID != "" {
		idx.rules[r.ID] = r
	}
}
