package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ServerVersion is reported to the client during initialization.
var ServerVersion = "0.1.0"

// protocol.InitializeFunc signature
func Initialize(context *glsp.Context, params *protocol.InitializeParams) (interface{}, error) {
	capabilities := Handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindIncremental
	capabilities.HoverProvider = true
	capabilities.DocumentSymbolProvider = true
	capabilities.DocumentFormattingProvider = true

	resolveProvider := true
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{":"},
		ResolveProvider:   &resolveProvider,
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "parasail-ls",
			Version: &ServerVersion,
		},
	}, nil
}

// protocol.InitializedFunc signature
func Initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

// protocol.ShutdownFunc signature
func Shutdown(context *glsp.Context) error {
	return nil
}
