// Package models defines the canonical entities the pipeline emits and
// their database row forms.
//
// Canonical types (Faction, Unit, Weapon, ...) are what the extractors and
// the assembler work with: plain structs, no persistence concerns. The Row
// types mirror them one-to-one with GORM column mappings and natural-key
// unique indexes; FromX converters bridge the two at emit time.
package models
