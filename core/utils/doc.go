// Package utils provides loose-typed conversion helpers.
//
// Catalogue documents carry every value as a string attribute, and several
// of them mix numbers with notation ("2+", "12\"", "D6+1"). These helpers
// centralize the forgiving conversions the extractors rely on.
package utils
