// Package analysis turns ParaSail source text into diagnostics, completion
// candidates, hover documentation, a symbol outline and formatting edits.
// It holds no state of its own; every operation is a function over document
// text, a position and a Settings value.
package analysis

import (
	"strings"
	"unicode"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineAt returns the line with the given zero-based index, without its
// terminator.
func lineAt(text string, line protocol.UInteger) (string, bool) {
	lines := splitLines(text)
	if int(line) >= len(lines) {
		return "", false
	}
	return lines[int(line)], true
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Positions use UTF-16 code-unit columns, so all scanning happens over the
// encoded line rather than bytes or runes.
func encodeLine(line string) []uint16 {
	return utf16.Encode([]rune(line))
}

func u16len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// isWordUnit treats letters, digits, underscore and ':' as token material.
// Colons are only meaningful as the '::' namespace separator; stray ones are
// trimmed off the extracted token afterwards.
func isWordUnit(u uint16) bool {
	r := rune(u)
	return r == '_' || r == ':' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordAt returns the token containing the given position, expanding left and
// right from the column within the containing line. Positions beyond the end
// of the line are clamped; positions outside any token report false.
func WordAt(text string, position protocol.Position) (string, bool) {
	line, ok := lineAt(text, position.Line)
	if !ok {
		return "", false
	}

	units := encodeLine(line)
	col := int(position.Character)
	if col > len(units) {
		col = len(units)
	}

	inside := func(i int) bool {
		return i >= 0 && i < len(units) && isWordUnit(units[i])
	}

	// A cursor sitting just past the end of a token still counts as on it.
	if !inside(col) {
		if !inside(col - 1) {
			return "", false
		}
		col--
	}

	start, end := col, col+1
	for start > 0 && isWordUnit(units[start-1]) {
		start--
	}
	for end < len(units) && isWordUnit(units[end]) {
		end++
	}

	word := strings.Trim(string(utf16.Decode(units[start:end])), ":")
	if word == "" {
		return "", false
	}
	return word, true
}

// PrefixBefore returns the partial token ending exactly at the cursor, used
// to filter completion candidates. At line start, or with no token to the
// left, the prefix is empty.
func PrefixBefore(text string, position protocol.Position) string {
	line, ok := lineAt(text, position.Line)
	if !ok {
		return ""
	}

	units := encodeLine(line)
	col := int(position.Character)
	if col > len(units) {
		col = len(units)
	}

	start := col
	for start > 0 && isWordUnit(units[start-1]) {
		start--
	}

	return strings.TrimLeft(string(utf16.Decode(units[start:col])), ":")
}
