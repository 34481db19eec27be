package extract

import (
	"testing"

	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func entryWithCategories(names ...string) *bscribe.SelectionEntry {
	e := &bscribe.SelectionEntry{ID: "e1", Name: "Unit"}
	for _, n := range names {
		e.CategoryLinks = append(e.CategoryLinks, &bscribe.CategoryLink{Name: n})
	}
	return e
}

func TestRole_Priority(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		want       models.Role
	}{
		{"single match", []string{"Vehicle"}, models.RoleVehicle},
		{"battleline precedes vehicle", []string{"Vehicle", "Battleline"}, models.RoleBattleline},
		{"epic hero precedes character", []string{"Character", "Epic Hero"}, models.RoleEpicHero},
		{"character precedes infantry", []string{"Infantry", "Character"}, models.RoleCharacter},
		{"beasts plural form", []string{"Beasts"}, models.RoleBeast},
		{"dedicated transport", []string{"Dedicated Transport"}, models.RoleDedicatedTransport},
		{"fallback infantry", []string{"Some Homebrew Label"}, models.RoleInfantry},
		{"no categories", nil, models.RoleInfantry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Role(entryWithCategories(tt.categories...)))
		})
	}
}

func TestKeywords(t *testing.T) {
	entry := entryWithCategories(
		"Infantry",
		"Faction: Adeptus Astartes",
		"Configuration",
		"Configuration: Detachment Choice",
		"Warlord",
		"Grenades",
		"Imperium",
	)

	assert.Equal(t, []string{"Infantry", "Grenades", "Imperium"}, Keywords(entry))
}

func TestKeywords_OrderPreserved(t *testing.T) {
	entry := entryWithCategories("Smoke", "Vehicle", "Grenades")
	assert.Equal(t, []string{"Smoke", "Vehicle", "Grenades"}, Keywords(entry))
}

func TestIsUnique(t *testing.T) {
	rosterMax1 := &bscribe.SelectionEntry{
		ID: "e1",
		Constraints: []*bscribe.Constraint{
			{Type: "max", Value: "1", Field: "selections", Scope: "roster"},
		},
	}
	parentMax1 := &bscribe.SelectionEntry{
		ID: "e2",
		Constraints: []*bscribe.Constraint{
			{Type: "max", Value: "1", Field: "selections", Scope: "parent"},
		},
	}
	rosterMax3 := &bscribe.SelectionEntry{
		ID: "e3",
		Constraints: []*bscribe.Constraint{
			{Type: "max", Value: "3", Field: "selections", Scope: "roster"},
		},
	}

	assert.True(t, IsUnique(&bscribe.SelectionEntry{}, models.RoleEpicHero))
	assert.True(t, IsUnique(nil, models.RoleEpicHero))
	assert.True(t, IsUnique(rosterMax1, models.RoleCharacter))
	assert.False(t, IsUnique(parentMax1, models.RoleCharacter))
	assert.False(t, IsUnique(rosterMax3, models.RoleCharacter))
	assert.False(t, IsUnique(&bscribe.SelectionEntry{}, models.RoleBattleline))
}
