package models

// Role classifies a unit's battlefield role. The values form a closed
// enumeration; classification priority lives in the extract package.
type Role string

const (
	RoleEpicHero           Role = "epic_hero"
	RoleCharacter          Role = "character"
	RoleBattleline         Role = "battleline"
	RoleInfantry           Role = "infantry"
	RoleMounted            Role = "mounted"
	RoleBeast              Role = "beast"
	RoleVehicle            Role = "vehicle"
	RoleMonster            Role = "monster"
	RoleFortification      Role = "fortification"
	RoleDedicatedTransport Role = "dedicated_transport"
	RoleAllied             Role = "allied"
)

// WeaponKind distinguishes ranged from melee weapon profiles.
type WeaponKind string

const (
	WeaponRanged WeaponKind = "ranged"
	WeaponMelee  WeaponKind = "melee"
)

// AbilityKind classifies an ability by origin.
type AbilityKind string

const (
	AbilityCore         AbilityKind = "core"
	AbilityFaction      AbilityKind = "faction"
	AbilityUnique       AbilityKind = "unique"
	AbilityInvulnerable AbilityKind = "invulnerable"
)

// Faction is the root of a compiled bundle: one logical army grouping,
// assembled from one or more catalogue documents.
type Faction struct {
	ID          string
	Name        string
	Units       []Unit
	Detachments []Detachment
}

// Detachment is an army-wide rule set belonging to one faction.
type Detachment struct {
	ID           string
	FactionID    string
	Name         string
	Rule         string
	Enhancements []Enhancement
}

// Enhancement is a named upgrade unlocked by a detachment.
type Enhancement struct {
	ID           string
	DetachmentID string
	Name         string
	Points       int
	Description  string
}

// StatLine holds the characteristic block of a unit profile.
// Movement and Save stay free-form ("6\"", "2+"); the rest are integers.
type StatLine struct {
	Movement         string
	Toughness        int
	Save             string
	Wounds           int
	Leadership       int
	ObjectiveControl int
}

// Unit is one selectable datasheet within a faction.
type Unit struct {
	ID        string
	FactionID string
	Name      string
	Role      Role
	Stats     StatLine
	Keywords  []string
	Unique    bool
	Tiers     []PointsTier
	Weapons   []Weapon
	Abilities []Ability
	Wargear   []WargearOption
}

// PointsTier is a (model count, points) pair describing cost scaling by
// squad size. Consumers pick the highest tier whose ModelCount does not
// exceed the actual model count.
type PointsTier struct {
	ModelCount int
	Points     int
}

// Weapon is one weapon profile carried by a unit. Attacks, Skill and Damage
// are short descriptive strings since they may be dice expressions.
type Weapon struct {
	Name     string
	Kind     WeaponKind
	Range    string
	Attacks  string
	Skill    string
	Strength int
	ArmorPen int
	Damage   string
	Keywords []string
}

// Ability is one named rule attached to a unit.
type Ability struct {
	Name        string
	Kind        AbilityKind
	Description string
}

// WargearOption is one choice inside a mutually-exclusive loadout group.
// Exactly one option per group carries Default.
type WargearOption struct {
	Group   string
	Name    string
	Default bool
	Points  int
}
