package extract

import (
	"testing"

	"catalog-pipeline/feature/catalog/bscribe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detachmentCatalogue() *bscribe.Catalogue {
	return &bscribe.Catalogue{
		Name: "Imperium - Space Marines",
		SharedSelectionEntryGroups: []*bscribe.SelectionEntryGroup{
			{
				ID: "g-det", Name: "Detachment",
				SelectionEntries: []*bscribe.SelectionEntry{
					{
						ID: "det-gladius", Name: "Gladius Task Force",
						Profiles: []*bscribe.Profile{{
							Name: "Combat Doctrines", TypeName: "Abilities",
							Characteristics: []*bscribe.Characteristic{
								{Name: "Description", Value: "At the start of your command phase, select one doctrine."},
							},
						}},
					},
					{
						ID: "det-raiders", Name: "Index Raiders",
						Rules: []*bscribe.Rule{{Name: "Raiding Party", Description: "Units gain Scouts 6\"."}},
					},
				},
			},
			{
				ID: "g-enh", Name: "Enhancements",
				SelectionEntryGroups: []*bscribe.SelectionEntryGroup{
					{
						ID: "g-enh-gladius", Name: "Gladius Task Force Enhancements",
						SelectionEntries: []*bscribe.SelectionEntry{
							{ID: "enh-1", Name: "Artificer Armour",
								Costs: []*bscribe.Cost{{Name: "pts", Value: "10"}},
								Profiles: []*bscribe.Profile{{
									Name: "Artificer Armour", TypeName: "Abilities",
									Characteristics: []*bscribe.Characteristic{{Name: "Description", Value: "2+ save."}},
								}}},
						},
					},
					{
						ID: "g-enh-raiders", Name: "Index Raiders Enhancements",
						SelectionEntries: []*bscribe.SelectionEntry{
							{ID: "enh-2", Name: "Master of the Vanguard",
								Costs: []*bscribe.Cost{{Name: "pts", Value: "15"}}},
						},
					},
					{
						// Unrelated group: must attach to no detachment.
						ID: "g-enh-oath", Name: "Oath of Moment",
						SelectionEntries: []*bscribe.SelectionEntry{
							{ID: "enh-3", Name: "Orphaned Relic",
								Costs: []*bscribe.Cost{{Name: "pts", Value: "25"}}},
						},
					},
				},
			},
		},
	}
}

func TestDetachments(t *testing.T) {
	cat := detachmentCatalogue()
	idx := bscribe.BuildIndex(cat)

	dets := Detachments(cat, idx)
	require.Len(t, dets, 2)

	gladius := dets[0]
	assert.Equal(t, "Gladius Task Force", gladius.Name)
	assert.Contains(t, gladius.Rule, "select one doctrine")
	require.Len(t, gladius.Enhancements, 1)
	assert.Equal(t, "Artificer Armour", gladius.Enhancements[0].Name)
	assert.Equal(t, 10, gladius.Enhancements[0].Points)
	assert.Equal(t, "2+ save.", gladius.Enhancements[0].Description)

	raiders := dets[1]
	assert.Equal(t, "Index Raiders", raiders.Name)
	assert.Contains(t, raiders.Rule, "Scouts")
	require.Len(t, raiders.Enhancements, 1)
	assert.Equal(t, "Master of the Vanguard", raiders.Enhancements[0].Name)
}

func TestDetachments_NoneFound(t *testing.T) {
	cat := &bscribe.Catalogue{Name: "Test"}
	idx := bscribe.BuildIndex(cat)
	assert.Empty(t, Detachments(cat, idx))
}

func TestDetachments_GroupBehindEntryLink(t *testing.T) {
	// The detachment group sits in the shared pool and is only reachable by
	// following a link from a configuration entry.
	hidden := &bscribe.SelectionEntryGroup{
		ID: "g-hidden", Name: "Detachments",
		SelectionEntries: []*bscribe.SelectionEntry{{ID: "det-1", Name: "Warhost"}},
	}
	cat := &bscribe.Catalogue{
		Name: "Test",
		SharedSelectionEntryGroups: []*bscribe.SelectionEntryGroup{{
			ID: "g-setup", Name: "Army Setup",
			EntryLinks: []*bscribe.EntryLink{{TargetID: "g-hidden", Type: bscribe.LinkTypeSelectionEntryGroup}},
		}},
		// The target group itself lives under a configuration entry, so the
		// search reaches it through the link, not the shared pool walk.
		SelectionEntries: []*bscribe.SelectionEntry{{
			ID: "cfg", Name: "Detachment Choice", Type: "upgrade",
			SelectionEntryGroups: []*bscribe.SelectionEntryGroup{hidden},
		}},
	}

	idx := bscribe.BuildIndex(cat)
	dets := Detachments(cat, idx)
	require.Len(t, dets, 1)
	assert.Equal(t, "Warhost", dets[0].Name)
}

func TestDetachments_AnnotationMatch(t *testing.T) {
	cat := &bscribe.Catalogue{
		Name: "Test",
		SharedSelectionEntryGroups: []*bscribe.SelectionEntryGroup{
			{
				ID: "g-det", Name: "Detachment",
				SelectionEntries: []*bscribe.SelectionEntry{{ID: "det-1", Name: "Hive Fleet Onslaught"}},
			},
			{
				ID: "g-enh", Name: "Enhancements",
				SelectionEntryGroups: []*bscribe.SelectionEntryGroup{{
					ID: "g-sub", Name: "Bio-artefacts",
					SelectionEntries: []*bscribe.SelectionEntry{{
						ID: "enh-1", Name: "Adrenal Chitin", Comment: "hive fleet onslaught",
						Costs: []*bscribe.Cost{{Name: "pts", Value: "20"}},
					}},
				}},
			},
		},
	}

	idx := bscribe.BuildIndex(cat)
	dets := Detachments(cat, idx)
	require.Len(t, dets, 1)
	require.Len(t, dets[0].Enhancements, 1)
	assert.Equal(t, "Adrenal Chitin", dets[0].Enhancements[0].Name)
}

func TestMatchesDetachment(t *testing.T) {
	tests := []struct {
		group      string
		detachment string
		want       bool
	}{
		{"Index Raiders Enhancements", "Index Raiders", true},
		{"index raiders enhancements", "INDEX RAIDERS", true},
		// Containment runs both directions.
		{"Raiders", "Index Raiders", true},
		{"Oath of Moment", "Gladius Task Force", false},
		{"Enhancements", "Gladius Task Force", false},
		{"", "Gladius Task Force", false},
	}
	for _, tt := range tests {
		t.Run(tt.group+"/"+tt.detachment, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesDetachment(tt.group, tt.detachment))
		})
	}
}

func TestDetachments_RuleCapped(t *testing.T) {
	long := make([]byte, maxDetachmentRuleChars+500)
	for i := range long {
		long[i] = 'x'
	}
	cat := &bscribe.Catalogue{
		Name: "Test",
		SharedSelectionEntryGroups: []*bscribe.SelectionEntryGroup{{
			ID: "g-det", Name: "Detachment",
			SelectionEntries: []*bscribe.SelectionEntry{{
				ID: "det-1", Name: "Long-Winded Host",
				Rules: []*bscribe.Rule{{Name: "Wall of Text", Description: string(long)}},
			}},
		}},
	}

	idx := bscribe.BuildIndex(cat)
	dets := Detachments(cat, idx)
	require.Len(t, dets, 1)
	assert.Len(t, dets[0].Rule, maxDetachmentRuleChars)
}
