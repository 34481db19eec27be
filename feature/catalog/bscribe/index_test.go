package bscribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalogue))
	require.NoError(t, err)

	idx := BuildIndex(cat)

	// Top-level and shared entries are all reachable by identifier.
	assert.NotNil(t, idx.Entry("unit-captain"))
	assert.NotNil(t, idx.Entry("shared-bolter"))
	assert.NotNil(t, idx.Group("group-wargear"))
	// Entries nested inside shared groups are indexed too.
	assert.NotNil(t, idx.Entry("upgrade-shield"))
	// Profiles and rules encountered during the walk are indexed.
	assert.NotNil(t, idx.Profile("prof-bolter"))
	assert.NotNil(t, idx.Rule("rule-oath"))

	assert.Nil(t, idx.Entry("no-such-id"))
}

func TestBuildIndex_DuplicateLastWins(t *testing.T) {
	first := &SelectionEntry{ID: "dup", Name: "First"}
	second := &SelectionEntry{ID: "dup", Name: "Second"}
	cat := &Catalogue{
		Name:                   "Test",
		SelectionEntries:       []*SelectionEntry{first},
		SharedSelectionEntries: []*SelectionEntry{second},
	}

	idx := BuildIndex(cat)
	assert.Equal(t, "Second", idx.Entry("dup").Name)
}

func TestResolveEntry(t *testing.T) {
	target := &SelectionEntry{ID: "target", Name: "Target"}
	group := &SelectionEntryGroup{ID: "target-group", Name: "Group"}
	cat := &Catalogue{
		Name:                       "Test",
		SharedSelectionEntries:     []*SelectionEntry{target},
		SharedSelectionEntryGroups: []*SelectionEntryGroup{group},
	}
	idx := BuildIndex(cat)

	tests := []struct {
		name string
		link *EntryLink
		want *SelectionEntry
	}{
		{"entry link", &EntryLink{TargetID: "target", Type: LinkTypeSelectionEntry}, target},
		{"wrong type", &EntryLink{TargetID: "target", Type: LinkTypeSelectionEntryGroup}, nil},
		{"dangling target", &EntryLink{TargetID: "missing", Type: LinkTypeSelectionEntry}, nil},
		{"nil link", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.ResolveEntry(tt.link))
		})
	}

	assert.Equal(t, group, idx.ResolveGroup(&EntryLink{TargetID: "target-group", Type: LinkTypeSelectionEntryGroup}))
	assert.Nil(t, idx.ResolveGroup(&EntryLink{TargetID: "target-group", Type: LinkTypeSelectionEntry}))
}

func TestBuildIndex_DeeplyNested(t *testing.T) {
	inner := &SelectionEntry{ID: "inner", Name: "Inner"}
	cat := &Catalogue{
		Name: "Test",
		SharedSelectionEntryGroups: []*SelectionEntryGroup{{
			ID: "outer-group",
			SelectionEntryGroups: []*SelectionEntryGroup{{
				ID: "mid-group",
				SelectionEntries: []*SelectionEntry{{
					ID:               "mid-entry",
					SelectionEntries: []*SelectionEntry{inner},
				}},
			}},
		}},
	}

	idx := BuildIndex(cat)
	assert.Equal(t, inner, idx.Entry("inner"))
	assert.NotNil(t, idx.Group("mid-group"))
	assert.NotNil(t, idx.Entry("mid-entry"))
}
