package models

import (
	"strings"
)

// keywordSeparator joins keyword lists into a single column. Commas appear
// inside weapon keywords in source data ("rapid fire 2, heavy"), so a
// separator that never occurs in catalogue text is used instead.
const keywordSeparator = "|"

// JoinKeywords flattens a keyword list for column storage.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, keywordSeparator)
}

// SplitKeywords restores a keyword list from column storage.
func SplitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, keywordSeparator)
}

// FactionRow represents the 'factions' table.
type FactionRow struct {
	ID   string `gorm:"column:id;primaryKey;size:36"`
	Name string `gorm:"column:name;size:255;uniqueIndex"`
}

func (FactionRow) TableName() string {
	return "factions"
}

// FromFaction converts a canonical Faction to its row form.
func FromFaction(f Faction) FactionRow {
	return FactionRow{ID: f.ID, Name: f.Name}
}

// DetachmentRow represents the 'detachments' table.
type DetachmentRow struct {
	ID        string `gorm:"column:id;primaryKey;size:36"`
	FactionID string `gorm:"column:faction_id;size:36;uniqueIndex:idx_detachments_faction_name"`
	Name      string `gorm:"column:name;size:255;uniqueIndex:idx_detachments_faction_name"`
	Rule      string `gorm:"column:rule;type:text"`
}

func (DetachmentRow) TableName() string {
	return "detachments"
}

// FromDetachment converts a canonical Detachment to its row form.
func FromDetachment(d Detachment) DetachmentRow {
	return DetachmentRow{ID: d.ID, FactionID: d.FactionID, Name: d.Name, Rule: d.Rule}
}

// EnhancementRow represents the 'enhancements' table.
type EnhancementRow struct {
	ID           string `gorm:"column:id;primaryKey;size:36"`
	DetachmentID string `gorm:"column:detachment_id;size:36;index"`
	Name         string `gorm:"column:name;size:255"`
	Points       int    `gorm:"column:points"`
	Description  string `gorm:"column:description;type:text"`
}

func (EnhancementRow) TableName() string {
	return "enhancements"
}

// FromEnhancement converts a canonical Enhancement to its row form.
func FromEnhancement(e Enhancement) EnhancementRow {
	return EnhancementRow{
		ID:           e.ID,
		DetachmentID: e.DetachmentID,
		Name:         e.Name,
		Points:       e.Points,
		Description:  e.Description,
	}
}

// UnitRow represents the 'units' table.
type UnitRow struct {
	ID               string `gorm:"column:id;primaryKey;size:36"`
	FactionID        string `gorm:"column:faction_id;size:36;uniqueIndex:idx_units_faction_name"`
	Name             string `gorm:"column:name;size:255;uniqueIndex:idx_units_faction_name"`
	Role             string `gorm:"column:role;size:32"`
	Movement         string `gorm:"column:movement;size:16"`
	Toughness        int    `gorm:"column:toughness"`
	Save             string `gorm:"column:save;size:16"`
	Wounds           int    `gorm:"column:wounds"`
	Leadership       int    `gorm:"column:leadership"`
	ObjectiveControl int    `gorm:"column:objective_control"`
	Keywords         string `gorm:"column:keywords;type:text"`
	IsUnique         bool   `gorm:"column:is_unique"`
}

func (UnitRow) TableName() string {
	return "units"
}

// FromUnit converts a canonical Unit to its row form. Child collections
// (tiers, weapons, abilities, wargear) convert separately.
func FromUnit(u Unit) UnitRow {
	return UnitRow{
		ID:               u.ID,
		FactionID:        u.FactionID,
		Name:             u.Name,
		Role:             string(u.Role),
		Movement:         u.Stats.Movement,
		Toughness:        u.Stats.Toughness,
		Save:             u.Stats.Save,
		Wounds:           u.Stats.Wounds,
		Leadership:       u.Stats.Leadership,
		ObjectiveControl: u.Stats.ObjectiveControl,
		Keywords:         JoinKeywords(u.Keywords),
		IsUnique:         u.Unique,
	}
}

// PointsTierRow represents the 'unit_tiers' table.
type PointsTierRow struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	UnitID     string `gorm:"column:unit_id;size:36;index"`
	ModelCount int    `gorm:"column:model_count"`
	Points     int    `gorm:"column:points"`
}

func (PointsTierRow) TableName() string {
	return "unit_tiers"
}

// FromPointsTier converts a canonical PointsTier to its row form.
func FromPointsTier(unitID string, t PointsTier) PointsTierRow {
	return PointsTierRow{UnitID: unitID, ModelCount: t.ModelCount, Points: t.Points}
}

// WeaponRow represents the 'weapons' table.
type WeaponRow struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	UnitID   string `gorm:"column:unit_id;size:36;index"`
	Name     string `gorm:"column:name;size:255"`
	Kind     string `gorm:"column:kind;size:16"`
	Range    string `gorm:"column:weapon_range;size:16"`
	Attacks  string `gorm:"column:attacks;size:16"`
	Skill    string `gorm:"column:skill;size:16"`
	Strength int    `gorm:"column:strength"`
	ArmorPen int    `gorm:"column:armor_pen"`
	Damage   string `gorm:"column:damage;size:16"`
	Keywords string `gorm:"column:keywords;type:text"`
}

func (WeaponRow) TableName() string {
	return "weapons"
}

// FromWeapon converts a canonical Weapon to its row form.
func FromWeapon(unitID string, w Weapon) WeaponRow {
	return WeaponRow{
		UnitID:   unitID,
		Name:     w.Name,
		Kind:     string(w.Kind),
		Range:    w.Range,
		Attacks:  w.Attacks,
		Skill:    w.Skill,
		Strength: w.Strength,
		ArmorPen: w.ArmorPen,
		Damage:   w.Damage,
		Keywords: JoinKeywords(w.Keywords),
	}
}

// AbilityRow represents the 'abilities' table.
type AbilityRow struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	UnitID      string `gorm:"column:unit_id;size:36;index"`
	Name        string `gorm:"column:name;size:255"`
	Kind        string `gorm:"column:kind;size:16"`
	Description string `gorm:"column:description;type:text"`
}

func (AbilityRow) TableName() string {
	return "abilities"
}

// FromAbility converts a canonical Ability to its row form.
func FromAbility(unitID string, a Ability) AbilityRow {
	return AbilityRow{UnitID: unitID, Name: a.Name, Kind: string(a.Kind), Description: a.Description}
}

// WargearOptionRow represents the 'wargear_options' table.
type WargearOptionRow struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	UnitID    string `gorm:"column:unit_id;size:36;uniqueIndex:idx_wargear_unit_group_name"`
	GroupName string `gorm:"column:group_name;size:255;uniqueIndex:idx_wargear_unit_group_name"`
	Name      string `gorm:"column:name;size:255;uniqueIndex:idx_wargear_unit_group_name"`
	IsDefault bool   `gorm:"column:is_default"`
	Points    int    `gorm:"column:points"`
}

func (WargearOptionRow) TableName() string {
	return "wargear_options"
}

// FromWargearOption converts a canonical WargearOption to its row form.
func FromWargearOption(unitID string, o WargearOption) WargearOptionRow {
	return WargearOptionRow{
		UnitID:    unitID,
		GroupName: o.Group,
		Name:      o.Name,
		IsDefault: o.Default,
		Points:    o.Points,
	}
}
