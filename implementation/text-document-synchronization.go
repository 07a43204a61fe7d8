package implementation

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// TextDocumentDidOpen implements protocol.TextDocumentDidOpenFunc
func TextDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	setDocument(params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version)
	go validateDocumentState(params.TextDocument.URI, context.Notify)
	return nil
}

// TextDocumentDidChange implements protocol.TextDocumentDidChangeFunc
func TextDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if content, ok := getDocument(params.TextDocument.URI); ok {
		for _, change := range params.ContentChanges {
			if change_, ok := change.(protocol.TextDocumentContentChangeEvent); ok {
				startIndex, endIndex := rangeToIndex(content, &change_.Range)
				content = content[:startIndex] + change_.Text + content[endIndex:]
			} else if change_, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
				content = change_.Text
			}
		}
		setDocument(params.TextDocument.URI, content, params.TextDocument.Version)
		go validateDocumentState(params.TextDocument.URI, context.Notify)
	}
	return nil
}

// TextDocumentDidSave implements protocol.TextDocumentDidSaveFunc
func TextDocumentDidSave(context *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}

// TextDocumentDidClose implements protocol.TextDocumentDidCloseFunc
func TextDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	deleteDocumentState(params.TextDocument.URI)
	deleteDocument(params.TextDocument.URI)

	go context.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})

	return nil
}

func rangeToIndex(content string, rng *protocol.Range) (int, int) {
	return positionToIndex(content, rng.Start), positionToIndex(content, rng.End)
}

// positionToIndex converts a protocol position into a byte offset. Columns
// count UTF-16 code units; positions past the line or document end clamp.
func positionToIndex(content string, position protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < position.Line; line++ {
		next := strings.IndexByte(content[offset:], '\n')
		if next < 0 {
			return len(content)
		}
		offset += next + 1
	}

	remaining := int(position.Character)
	for index, r := range content[offset:] {
		if remaining <= 0 || r == '\n' {
			return offset + index
		}
		if r >= 0x10000 {
			remaining -= 2
		} else {
			remaining--
		}
	}
	return len(content)
}
