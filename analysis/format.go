package analysis

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Reindent normalizes leading whitespace: each line's indentation is snapped
// down to the nearest multiple of tabSize spaces. It does not infer
// indentation from block nesting; call sites wanting structural reformatting
// must layer that on top. An edit is emitted only for lines whose
// indentation actually changes, covering exactly the leading-whitespace
// span, which makes the operation idempotent.
func Reindent(text string, tabSize protocol.UInteger) []protocol.TextEdit {
	if tabSize == 0 {
		tabSize = 4
	}

	var edits []protocol.TextEdit
	for lineIndex, line := range splitLines(text) {
		existing := 0
		for existing < len(line) && (line[existing] == ' ' || line[existing] == '\t') {
			existing++
		}
		if existing == 0 {
			continue
		}

		expected := strings.Repeat(" ", int(tabSize)*(existing/int(tabSize)))
		if line[:existing] == expected {
			continue
		}

		edits = append(edits, protocol.TextEdit{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(lineIndex), Character: 0},
				End:   protocol.Position{Line: protocol.UInteger(lineIndex), Character: protocol.UInteger(existing)},
			},
			NewText: expected,
		})
	}
	return edits
}
