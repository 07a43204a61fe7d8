package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/adl5423/parasail-ls/analysis"
)

// TextDocumentCompletion implements protocol.TextDocumentCompletionFunc
func TextDocumentCompletion(context *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	content, ok := getDocument(params.TextDocument.URI)
	if !ok {
		return []protocol.CompletionItem{}, nil
	}
	return analysis.Complete(content, params.Position, currentSettings()), nil
}

// CompletionItemResolve implements protocol.CompletionItemResolveFunc
func CompletionItemResolve(context *glsp.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	return analysis.ResolveDocumentation(params), nil
}

// TextDocumentHover implements protocol.TextDocumentHoverFunc
func TextDocumentHover(context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	content, ok := getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	documentation, ok := analysis.Hover(content, params.Position)
	if !ok {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: documentation,
		},
	}, nil
}

// TextDocumentDocumentSymbol implements protocol.TextDocumentDocumentSymbolFunc
func TextDocumentDocumentSymbol(context *glsp.Context, params *protocol.DocumentSymbolParams) (interface{}, error) {
	content, ok := getDocument(params.TextDocument.URI)
	if !ok {
		return []protocol.DocumentSymbol{}, nil
	}
	return analysis.Outline(content), nil
}

// TextDocumentFormatting implements protocol.TextDocumentFormattingFunc
func TextDocumentFormatting(context *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	// FormattingOptions is a plain JSON map, so numbers arrive as float64.
	tabSize := protocol.UInteger(4)
	if value, ok := params.Options[protocol.FormattingOptionTabSize].(float64); ok && value > 0 {
		tabSize = protocol.UInteger(value)
	}

	return analysis.Format(content, tabSize, currentSettings()), nil
}
