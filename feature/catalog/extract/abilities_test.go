package extract

import (
	"testing"

	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abilityProfile(name, description string) *bscribe.Profile {
	return &bscribe.Profile{
		ID: "prof-" + name, Name: name, TypeName: "Abilities",
		Characteristics: []*bscribe.Characteristic{
			{Name: "Description", Value: description},
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want models.AbilityKind
	}{
		{"Invulnerable Save 4+", models.AbilityInvulnerable},
		{"4+ invulnerable save", models.AbilityInvulnerable},
		{"Leader", models.AbilityCore},
		{"Deep Strike", models.AbilityCore},
		{"feel no pain 5+", models.AbilityCore},
		{"Oath of Moment", models.AbilityFaction},
		{"Shadow in the Warp", models.AbilityFaction},
		{"Rites of Battle", models.AbilityUnique},
		{"Vengeance of the Machine Spirit", models.AbilityUnique},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestAbilities_DirectProfilesOnly(t *testing.T) {
	entry := &bscribe.SelectionEntry{
		ID: "e1", Name: "Captain",
		Profiles: []*bscribe.Profile{
			abilityProfile("Rites of Battle", "Once per battle..."),
		},
		// Abilities are not inherited from sub-components.
		SelectionEntries: []*bscribe.SelectionEntry{{
			ID: "child", Name: "Child",
			Profiles: []*bscribe.Profile{abilityProfile("Hidden Ability", "Should not surface")},
		}},
	}

	abilities := Abilities(entry, emptyIndex())
	require.Len(t, abilities, 1)
	assert.Equal(t, "Rites of Battle", abilities[0].Name)
	assert.Equal(t, models.AbilityUnique, abilities[0].Kind)
	assert.Equal(t, "Once per battle...", abilities[0].Description)
}

func TestAbilities_RuleLinkAllowlisted(t *testing.T) {
	cat := &bscribe.Catalogue{
		Name: "Test",
		SharedRules: []*bscribe.Rule{
			{ID: "rule-oath", Name: "Oath of Moment", Description: "Select one enemy unit..."},
			{ID: "rule-notes", Name: "Designer Notes", Description: "Not a datasheet ability"},
		},
	}
	idx := bscribe.BuildIndex(cat)

	entry := &bscribe.SelectionEntry{
		ID: "e1", Name: "Intercessors",
		InfoLinks: []*bscribe.InfoLink{
			{TargetID: "rule-oath", Type: bscribe.LinkTypeRule},
			{TargetID: "rule-notes", Type: bscribe.LinkTypeRule},
			{TargetID: "rule-missing", Type: bscribe.LinkTypeRule},
		},
	}

	abilities := Abilities(entry, idx)
	require.Len(t, abilities, 1)
	assert.Equal(t, "Oath of Moment", abilities[0].Name)
	assert.Equal(t, models.AbilityFaction, abilities[0].Kind)
}

func TestAbilities_RuleLinkSkippedWhenPresentByName(t *testing.T) {
	cat := &bscribe.Catalogue{
		Name:        "Test",
		SharedRules: []*bscribe.Rule{{ID: "rule-oath", Name: "Oath of Moment", Description: "..."}},
	}
	idx := bscribe.BuildIndex(cat)

	entry := &bscribe.SelectionEntry{
		ID: "e1", Name: "Intercessors",
		Profiles: []*bscribe.Profile{
			// Case differs; the duplicate check is case-insensitive.
			abilityProfile("OATH OF MOMENT", "Already present as a profile"),
		},
		InfoLinks: []*bscribe.InfoLink{{TargetID: "rule-oath", Type: bscribe.LinkTypeRule}},
	}

	abilities := Abilities(entry, idx)
	require.Len(t, abilities, 1)
	assert.Equal(t, "OATH OF MOMENT", abilities[0].Name)
	assert.Equal(t, "Already present as a profile", abilities[0].Description)
}
