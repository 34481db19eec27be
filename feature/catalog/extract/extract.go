package extract

import (
	"strings"

	"catalog-pipeline/feature/catalog/bscribe"
)

// maxDepth is the traversal budget for any recursive walk that follows
// cross-references. Links can form accidental cycles (A→B→A) in malformed
// data; once the budget is spent the walk truncates silently and keeps
// whatever it resolved so far.
const maxDepth = 6

// characteristic returns the first non-empty characteristic value matching
// any of the given names, case-insensitively.
func characteristic(p *bscribe.Profile, names ...string) string {
	if p == nil {
		return ""
	}
	for _, want := range names {
		for _, c := range p.Characteristics {
			if strings.EqualFold(c.Name, want) {
				if v := strings.TrimSpace(c.Value); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

// splitKeywords splits a comma-separated keyword field, trimming whitespace
// and dropping empty or placeholder tokens.
func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		kw := strings.TrimSpace(part)
		if kw == "" || kw == "-" {
			continue
		}
		out = append(out, kw)
	}
	return out
}

// containsFold reports whether list has name, case-insensitively.
func containsFold(list []string, name string) bool {
	for _, item := range list {
		if strings.EqualFold(item, name) {
			return true
		}
	}
	return false
}
