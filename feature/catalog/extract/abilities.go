package extract

import (
	"strings"

	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"
)

const profileAbilities = "Abilities"

// coreAbilities are the game-wide ability names shared by every army.
var coreAbilities = []string{
	"Leader",
	"Deep Strike",
	"Scouts",
	"Infiltrators",
	"Lone Operative",
	"Stealth",
	"Fights First",
	"Feel No Pain",
	"Deadly Demise",
	"Firing Deck",
	"Hover",
}

// factionAbilities are army-wide ability names granted by a faction rather
// than a single datasheet.
var factionAbilities = []string{
	"Oath of Moment",
	"Shadow in the Warp",
	"Synapse",
	"Power from Pain",
	"Strands of Fate",
	"Waaagh!",
	"Miracle Dice",
	"Dark Pacts",
	"Reanimation Protocols",
	"Acts of Faith",
}

// factionRuleAllowlist names the document-level rules that, when referenced
// from a unit via a rule-kind info link, should surface as faction abilities
// on that unit. Everything else a rule link points at (weapon notes, USR
// reminders) stays off the datasheet.
var factionRuleAllowlist = []string{
	"Oath of Moment",
	"Shadow in the Warp",
	"Synapse",
	"Power from Pain",
	"Waaagh!",
	"Reanimation Protocols",
}

// Abilities reads the ability profiles attached directly to a unit entry.
// Abilities are not inherited from sub-components, so unlike weapons this
// never recurses into children. Rule-kind info links contribute additional
// faction abilities when allow-listed and not already present by name.
func Abilities(entry *bscribe.SelectionEntry, idx *bscribe.Index) []models.Ability {
	if entry == nil {
		return nil
	}

	var out []models.Ability
	for _, p := range entry.Profiles {
		if !strings.EqualFold(p.TypeName, profileAbilities) {
			continue
		}
		out = append(out, models.Ability{
			Name:        p.Name,
			Kind:        Classify(p.Name),
			Description: characteristic(p, "Description"),
		})
	}

	for _, link := range entry.InfoLinks {
		if link.Type != bscribe.LinkTypeRule {
			continue
		}
		rule := idx.Rule(link.TargetID)
		if rule == nil {
			continue
		}
		if !containsFold(factionRuleAllowlist, rule.Name) {
			continue
		}
		if hasAbility(out, rule.Name) {
			continue
		}
		out = append(out, models.Ability{
			Name:        rule.Name,
			Kind:        models.AbilityFaction,
			Description: strings.TrimSpace(rule.Description),
		})
	}

	return out
}

// Classify buckets an ability by a priority-ordered, case-insensitive
// substring match against its name: invulnerable-save pattern first, then
// the core list, then the faction list, defaulting to unique.
func Classify(name string) models.AbilityKind {
	lower := strings.ToLower(name)

	if strings.Contains(lower, "invulnerable save") || strings.Contains(lower, "invulnerable") {
		return models.AbilityInvulnerable
	}
	for _, core := range coreAbilities {
		if strings.Contains(lower, strings.ToLower(core)) {
			return models.AbilityCore
		}
	}
	for _, faction := range factionAbilities {
		if strings.Contains(lower, strings.ToLower(faction)) {
			return models.AbilityFaction
		}
	}
	return models.AbilityUnique
}

func hasAbility(list []models.Ability, name string) bool {
	for _, a := range list {
		if strings.EqualFold(a.Name, name) {
			return true
		}
	}
	return false
}
