// Package bscribe loads catalogue documents into an attributed tree and
// indexes their entries for cross-reference resolution.
//
// A catalogue looks tree-shaped but is not: entries are defined once
// (often in shared pools) and referenced many times through entry and info
// links. Parse produces the raw tree; BuildIndex produces the immutable
// identifier lookup every later extraction stage resolves links through.
package bscribe
