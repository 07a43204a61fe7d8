package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func pos(line, character protocol.UInteger) protocol.Position {
	return protocol.Position{Line: line, Character: character}
}

func TestWordAt(t *testing.T) {
	text := "if Count > 0 then\n   import PSL::Core::IO\nend if"

	word, ok := WordAt(text, pos(0, 4))
	require.True(t, ok)
	assert.Equal(t, "Count", word)

	// Cursor just past the end of a token still hits it.
	word, ok = WordAt(text, pos(0, 8))
	require.True(t, ok)
	assert.Equal(t, "Count", word)

	// Qualified names are a single token.
	word, ok = WordAt(text, pos(1, 15))
	require.True(t, ok)
	assert.Equal(t, "PSL::Core::IO", word)

	_, ok = WordAt(text, pos(0, 10))
	assert.False(t, ok, "cursor on whitespace")
}

func TestWordAtClampsBeyondLine(t *testing.T) {
	word, ok := WordAt("then", pos(0, 500))
	require.True(t, ok)
	assert.Equal(t, "then", word)

	_, ok = WordAt("then", pos(9, 0))
	assert.False(t, ok, "line out of range")

	_, ok = WordAt("", pos(0, 0))
	assert.False(t, ok, "empty document")
}

func TestWordAtIsContainedInLine(t *testing.T) {
	text := "func Area(R : Univ_Real) -> Univ_Real is\n\treturn 3.14 * R ** 2\nend func Area"
	for line := protocol.UInteger(0); line < 3; line++ {
		source, ok := lineAt(text, line)
		require.True(t, ok)
		for character := protocol.UInteger(0); character <= protocol.UInteger(len(source)+2); character++ {
			if word, ok := WordAt(text, pos(line, character)); ok {
				assert.Contains(t, source, word)
			}
		}
	}
}

func TestPrefixBefore(t *testing.T) {
	assert.Equal(t, "fun", PrefixBefore("  fun", pos(0, 5)))
	assert.Equal(t, "", PrefixBefore("  fun", pos(0, 2)), "cursor before the token")
	assert.Equal(t, "fu", PrefixBefore("  func", pos(0, 4)), "cursor mid-token")
	assert.Equal(t, "", PrefixBefore("", pos(0, 0)), "line start")
	assert.Equal(t, "PSL::Co", PrefixBefore("import PSL::Co", pos(0, 14)))
	assert.Equal(t, "fun", PrefixBefore("fun", pos(0, 99)), "column clamped to line length")
	assert.Equal(t, "", PrefixBefore("fun", pos(7, 0)), "line out of range")
}
