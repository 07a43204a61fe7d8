package implementation

import (
	logging "github.com/op/go-logging"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = logging.MustGetLogger("parasail-ls")

// Handler wires the protocol callbacks consumed by the glsp server. It is
// populated in init rather than a composite literal because Initialize
// reads Handler back to build the server capabilities.
var Handler protocol.Handler

func init() {
	Handler = protocol.Handler{
		Initialize:  Initialize,
		Initialized: Initialized,
		Shutdown:    Shutdown,

		TextDocumentDidOpen:   TextDocumentDidOpen,
		TextDocumentDidChange: TextDocumentDidChange,
		TextDocumentDidSave:   TextDocumentDidSave,
		TextDocumentDidClose:  TextDocumentDidClose,

		TextDocumentCompletion:     TextDocumentCompletion,
		CompletionItemResolve:      CompletionItemResolve,
		TextDocumentHover:          TextDocumentHover,
		TextDocumentDocumentSymbol: TextDocumentDocumentSymbol,
		TextDocumentFormatting:     TextDocumentFormatting,

		WorkspaceDidChangeConfiguration: WorkspaceDidChangeConfiguration,
	}
}
