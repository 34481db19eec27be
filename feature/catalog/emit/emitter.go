package emit

import (
	"context"
	"fmt"

	"catalog-pipeline/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Emitter writes compiled faction bundles into the destination database.
type Emitter struct {
	db *gorm.DB
}

// New creates an emitter bound to a destination connection.
func New(db *gorm.DB) *Emitter {
	return &Emitter{db: db}
}

// Migrate creates or updates the pipeline-owned tables.
func (e *Emitter) Migrate() error {
	return e.db.AutoMigrate(
		&models.FactionRow{},
		&models.DetachmentRow{},
		&models.EnhancementRow{},
		&models.UnitRow{},
		&models.PointsTierRow{},
		&models.WeaponRow{},
		&models.AbilityRow{},
		&models.WargearOptionRow{},
	)
}

// Apply writes a batch of faction bundles in one transaction.
//
// The batch represents a complete replacement of game-reference data, so
// pipeline-owned tables are cleared first (children before parents), then
// factions, detachments and units are upserted by natural key and their
// child rows plain-inserted. User-authored tables reference these rows via
// cascading foreign keys and are never touched here.
func (e *Emitter) Apply(ctx context.Context, factions []*models.Faction) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearTables(tx); err != nil {
			return err
		}
		for _, faction := range factions {
			if faction == nil {
				continue
			}
			if err := writeFaction(tx, faction); err != nil {
				return fmt.Errorf("faction %s: %w", faction.Name, err)
			}
		}
		return nil
	})
}

// clearTables empties every pipeline-owned table, leaf tables first.
func clearTables(tx *gorm.DB) error {
	tables := []any{
		&models.WargearOptionRow{},
		&models.AbilityRow{},
		&models.WeaponRow{},
		&models.PointsTierRow{},
		&models.EnhancementRow{},
		&models.UnitRow{},
		&models.DetachmentRow{},
		&models.FactionRow{},
	}
	for _, table := range tables {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

func writeFaction(tx *gorm.DB, faction *models.Faction) error {
	row := models.FromFaction(*faction)
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to upsert faction: %w", err)
	}

	for _, det := range faction.Detachments {
		if err := writeDetachment(tx, det); err != nil {
			return err
		}
	}
	for _, unit := range faction.Units {
		if err := writeUnit(tx, unit); err != nil {
			return err
		}
	}
	return nil
}

func writeDetachment(tx *gorm.DB, det models.Detachment) error {
	row := models.FromDetachment(det)
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "faction_id"}, {Name: "name"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to upsert detachment %s: %w", det.Name, err)
	}

	// Enhancements are fully replaced with their detachment; plain insert.
	for _, enh := range det.Enhancements {
		enhRow := models.FromEnhancement(enh)
		if err := tx.Create(&enhRow).Error; err != nil {
			return fmt.Errorf("failed to insert enhancement %s: %w", enh.Name, err)
		}
	}
	return nil
}

func writeUnit(tx *gorm.DB, unit models.Unit) error {
	row := models.FromUnit(unit)
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "faction_id"}, {Name: "name"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to upsert unit %s: %w", unit.Name, err)
	}

	// Child rows are always fully replaced alongside their owning unit, so
	// no natural-key conflict is meaningful: plain inserts.
	for _, tier := range unit.Tiers {
		tierRow := models.FromPointsTier(unit.ID, tier)
		if err := tx.Create(&tierRow).Error; err != nil {
			return fmt.Errorf("failed to insert tier for %s: %w", unit.Name, err)
		}
	}
	for _, weapon := range unit.Weapons {
		weaponRow := models.FromWeapon(unit.ID, weapon)
		if err := tx.Create(&weaponRow).Error; err != nil {
			return fmt.Errorf("failed to insert weapon %s: %w", weapon.Name, err)
		}
	}
	for _, ability := range unit.Abilities {
		abilityRow := models.FromAbility(unit.ID, ability)
		if err := tx.Create(&abilityRow).Error; err != nil {
			return fmt.Errorf("failed to insert ability %s: %w", ability.Name, err)
		}
	}
	for _, opt := range unit.Wargear {
		optRow := models.FromWargearOption(unit.ID, opt)
		if err := tx.Create(&optRow).Error; err != nil {
			return fmt.Errorf("failed to insert wargear option %s: %w", opt.Name, err)
		}
	}
	return nil
}
