package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestSymbolsInFindsFunction(t *testing.T) {
	symbols := SymbolsIn("func Foo() -> Integer is\nend func Foo")

	require.Len(t, symbols, 1)
	assert.Equal(t, "Foo", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[0].Kind)
	assert.Equal(t, protocol.UInteger(0), symbols[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(5), symbols[0].SelectionRange.Start.Character)
	assert.Equal(t, protocol.UInteger(8), symbols[0].SelectionRange.End.Character)
}

func TestSymbolsInKinds(t *testing.T) {
	text := "interface Stack<Element is Assignable<>> is\n" +
		"   func Push(var S : Stack; E : Element)\n" +
		"end interface Stack\n" +
		"class Stack is\n" +
		"exports\n" +
		"end class Stack\n" +
		"type Int_Stack is Stack<Univ_Integer>\n" +
		"concurrent interface Queue<> is\n" +
		"end interface Queue\n" +
		"module Shapes is\n" +
		"package Legacy is\n"

	kinds := map[string]protocol.SymbolKind{}
	for _, symbol := range SymbolsIn(text) {
		kinds[symbol.Name] = symbol.Kind
	}

	assert.Equal(t, protocol.SymbolKindClass, kinds["Stack"]) // the class declaration is the last Stack entry
	assert.Equal(t, protocol.SymbolKindFunction, kinds["Push"])
	assert.Equal(t, protocol.SymbolKindStruct, kinds["Int_Stack"])
	assert.Equal(t, protocol.SymbolKindInterface, kinds["Queue"])
	assert.Equal(t, protocol.SymbolKindModule, kinds["Shapes"])
	assert.Equal(t, protocol.SymbolKindPackage, kinds["Legacy"])
}

func TestSymbolsInLineOrderAndCount(t *testing.T) {
	text := "func A() is\nend func A\nfunc B() is\nend func B"
	symbols := SymbolsIn(text)

	require.Len(t, symbols, 2)
	assert.Equal(t, "A", symbols[0].Name)
	assert.Equal(t, "B", symbols[1].Name)
	assert.Less(t, symbols[0].Range.Start.Line, symbols[1].Range.Start.Line)
}

func TestSymbolsNameRangeIsStrictSubrange(t *testing.T) {
	text := "interface Stack<> is\n" +
		"   abstract func Pop(var S : Stack) -> Element\n" +
		"end interface Stack\n" +
		"type Count is new Univ_Integer"

	symbols := SymbolsIn(text)
	require.NotEmpty(t, symbols)

	for _, symbol := range symbols {
		assert.Equal(t, symbol.Range.Start.Line, symbol.SelectionRange.Start.Line)
		assert.Equal(t, symbol.Range.End.Line, symbol.SelectionRange.End.Line)
		assert.Greater(t, symbol.SelectionRange.Start.Character, symbol.Range.Start.Character)
		assert.LessOrEqual(t, symbol.SelectionRange.End.Character, symbol.Range.End.Character)
		assert.Less(t, symbol.SelectionRange.Start.Character, symbol.SelectionRange.End.Character)
	}
}

func TestSymbolsInEmptyDocument(t *testing.T) {
	assert.Empty(t, SymbolsIn(""))
	assert.Empty(t, SymbolsIn("// nothing declared here\nnull"))
}
