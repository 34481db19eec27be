// Package extract derives single facets of a unit entry: stat line, weapon
// profiles, abilities, points tiers, role, keywords, uniqueness, wargear
// option groups, and the detachment/enhancement structure of a document.
//
// Every extractor is a pure function over an entry node plus the entry
// index. Walks that follow cross-references carry an explicit depth budget
// (maxDepth) because entry links can form cycles in malformed data; an
// exhausted budget truncates the walk instead of failing the unit.
package extract
