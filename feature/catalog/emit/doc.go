// Package emit serializes compiled faction bundles into the destination
// database's upsert protocol.
//
// A batch is all-or-nothing: one transaction clears the pipeline-owned
// tables and rewrites them. Factions, detachments and units upsert by
// natural key (name; faction+name); tiers, weapons, abilities, wargear and
// enhancements are plain inserts since they are always replaced together
// with their owner. Deterministic identifiers keep user-authored rows
// pointing at the same records across runs.
package emit
