package analysis

import (
	"regexp"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

type declarationPattern struct {
	kind    protocol.SymbolKind
	pattern *regexp.Regexp
}

// Declaration patterns for the recognized module constructs. ParaSail's
// sister conventions use module/package as introducers, so those are
// recognized alongside the ParaSail forms. Every pattern is tried against
// every line; a line matching several patterns yields several entries.
var declarationPatterns = []declarationPattern{
	{protocol.SymbolKindFunction, regexp.MustCompile(`^\s*(?:abstract\s+)?(?:concurrent\s+)?func\s+([A-Za-z_][A-Za-z0-9_]*)`)},
	{protocol.SymbolKindStruct, regexp.MustCompile(`^\s*type\s+([A-Za-z_][A-Za-z0-9_]*)`)},
	{protocol.SymbolKindInterface, regexp.MustCompile(`^\s*(?:abstract\s+)?(?:concurrent\s+)?interface\s+([A-Za-z_][A-Za-z0-9_]*)`)},
	{protocol.SymbolKindClass, regexp.MustCompile(`^\s*(?:abstract\s+)?(?:concurrent\s+)?class\s+([A-Za-z_][A-Za-z0-9_]*)`)},
	{protocol.SymbolKindModule, regexp.MustCompile(`^\s*module\s+([A-Za-z_][A-Za-z0-9_]*)`)},
	{protocol.SymbolKindPackage, regexp.MustCompile(`^\s*package\s+([A-Za-z_][A-Za-z0-9_]*)`)},
}

// SymbolsIn scans the document line by line and returns a flat outline of
// the declarations found, in line order. Each entry's range spans the whole
// physical line; its selection range spans only the declared name.
func SymbolsIn(text string) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol

	for lineIndex, line := range splitLines(text) {
		for _, declaration := range declarationPatterns {
			location := declaration.pattern.FindStringSubmatchIndex(line)
			if location == nil {
				continue
			}

			name := line[location[2]:location[3]]
			nameStart := u16len(line[:location[2]])

			symbols = append(symbols, protocol.DocumentSymbol{
				Name: name,
				Kind: declaration.kind,
				Range: protocol.Range{
					Start: protocol.Position{Line: protocol.UInteger(lineIndex), Character: 0},
					End:   protocol.Position{Line: protocol.UInteger(lineIndex), Character: protocol.UInteger(u16len(line))},
				},
				SelectionRange: protocol.Range{
					Start: protocol.Position{Line: protocol.UInteger(lineIndex), Character: protocol.UInteger(nameStart)},
					End:   protocol.Position{Line: protocol.UInteger(lineIndex), Character: protocol.UInteger(nameStart + u16len(name))},
				},
			})
		}
	}
	return symbols
}
