// Package catalog orchestrates the transformation pipeline.
//
// One compile run walks a manifest of (faction name, document set) pairs.
// Per document: parse (bscribe), index, assemble into a DocumentBundle via
// the extractors. Per faction: merge bundles with first-seen-wins name
// dedup, synthesize a default detachment when none was found, and rebase
// every identity onto the merged faction name through deterministic UUIDv5
// derivation. Two runs over the same input always produce the same
// identifiers, which is what makes the destination write idempotent.
package catalog
