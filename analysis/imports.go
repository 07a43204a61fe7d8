package analysis

import (
	"regexp"
	"strings"
)

// importPattern matches an import declaration: the keyword followed by a
// qualified name whose segments are joined by '::', optionally ending in the
// '::*' wildcard.
var importPattern = regexp.MustCompile(`(?m)^\s*import\s+([A-Za-z_][A-Za-z0-9_]*(?:::[A-Za-z_][A-Za-z0-9_]*)*(?:::\*)?)`)

// ImportsDeclared returns the qualified paths imported by the document,
// deduplicated, in first-seen order.
func ImportsDeclared(text string) []string {
	var paths []string
	seen := map[string]bool{}

	for _, match := range importPattern.FindAllStringSubmatch(text, -1) {
		path := match[1]
		if seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths
}

// LastSegment returns the final non-wildcard segment of a qualified path,
// the label under which an import surfaces in completion.
func LastSegment(path string) string {
	path = strings.TrimSuffix(path, "::*")
	if i := strings.LastIndex(path, "::"); i >= 0 {
		return path[i+2:]
	}
	return path
}
