package analysis

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// preludeImports are the namespaces treated as imported when the
// implicitImports setting is on, mirroring the interpreter's preloaded
// standard library.
var preludeImports = []string{"PSL::Core", "PSL::Containers"}

// Complete gathers completion candidates from every source: reserved words
// matching the token prefix at the cursor, library symbols containing it,
// templates triggered by the current line, and the document's imports. The
// sources are concatenated without ranking; presentation order is the
// client's concern.
func Complete(text string, position protocol.Position, settings Settings) []protocol.CompletionItem {
	line, _ := lineAt(text, position.Line)
	prefix := strings.ToLower(PrefixBefore(text, position))

	var items []protocol.CompletionItem

	keywordKind := protocol.CompletionItemKindKeyword
	for _, keyword := range Keywords() {
		if strings.HasPrefix(keyword, prefix) {
			items = append(items, protocol.CompletionItem{
				Label: keyword,
				Kind:  &keywordKind,
			})
		}
	}

	moduleKind := protocol.CompletionItemKindModule
	for _, symbol := range LookupLibrary(prefix) {
		items = append(items, protocol.CompletionItem{
			Label:         symbol.Name,
			Kind:          &moduleKind,
			Documentation: symbol.Doc,
		})
	}

	snippetKind := protocol.CompletionItemKindSnippet
	snippetFormat := protocol.InsertTextFormatSnippet
	for _, template := range TemplatesMatching(line) {
		template := template
		items = append(items, protocol.CompletionItem{
			Label:            template.Label,
			Kind:             &snippetKind,
			Detail:           &template.Detail,
			InsertText:       &template.Snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	referenceKind := protocol.CompletionItemKindReference
	for _, path := range importsForCompletion(text, settings) {
		path := path
		items = append(items, protocol.CompletionItem{
			Label:  LastSegment(path),
			Kind:   &referenceKind,
			Detail: &path,
		})
	}

	return items
}

func importsForCompletion(text string, settings Settings) []string {
	paths := ImportsDeclared(text)
	if !settings.ImplicitImports {
		return paths
	}

	seen := map[string]bool{}
	for _, path := range paths {
		seen[path] = true
	}
	for _, path := range preludeImports {
		if !seen[path] {
			paths = append(paths, path)
		}
	}
	return paths
}

// ResolveDocumentation fills in a completion item's documentation lazily by
// looking its label up in the keyword catalog. Items that already carry
// documentation, and labels that are not reserved words, pass through
// unchanged.
func ResolveDocumentation(item *protocol.CompletionItem) *protocol.CompletionItem {
	if item.Documentation == nil {
		if doc, ok := LookupKeyword(item.Label); ok {
			item.Documentation = doc
		}
	}
	return item
}

// Hover returns the keyword documentation for the token at the given
// position. Library symbols and user identifiers produce no hover.
func Hover(text string, position protocol.Position) (string, bool) {
	word, ok := WordAt(text, position)
	if !ok {
		return "", false
	}
	return LookupKeyword(word)
}

// Outline returns the document's flat symbol outline.
func Outline(text string) []protocol.DocumentSymbol {
	return SymbolsIn(text)
}

// Format returns the reindentation edits for the document, or nothing at
// all when formatting is disabled.
func Format(text string, tabSize protocol.UInteger, settings Settings) []protocol.TextEdit {
	if !settings.EnableFormatting {
		return nil
	}
	return Reindent(text, tabSize)
}
