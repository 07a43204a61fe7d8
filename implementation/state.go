package implementation

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"golang.org/x/sync/errgroup"

	"github.com/adl5423/parasail-ls/analysis"
)

// DocumentState caches the last published diagnostics for a document,
// together with the generation of the validation pass that produced them.
type DocumentState struct {
	mutex       sync.Mutex
	generation  uint64
	Diagnostics []protocol.Diagnostic
}

var documentStates sync.Map // protocol.DocumentUri to *DocumentState

// settingsCell is the single mutable configuration slot. It is written only
// by WorkspaceDidChangeConfiguration; every operation reads a copy.
var (
	settingsMutex  sync.RWMutex
	serverSettings = analysis.DefaultSettings()
)

func currentSettings() analysis.Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return serverSettings
}

func replaceSettings(settings analysis.Settings) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()
	serverSettings = settings
}

// validateDocumentState runs one validation pass over the document's
// current content and publishes the outcome. Superseded passes are not
// cancelled: whichever subprocess reports last wins, which can briefly show
// diagnostics for a stale version of the text. A failed pass publishes
// nothing, leaving the previous diagnostic set in place.
func validateDocumentState(uri protocol.DocumentUri, notify glsp.NotifyFunc) *DocumentState {
	documentState := _getOrCreateDocumentState(uri)

	content, ok := getDocument(uri)
	if !ok {
		return documentState
	}

	generation := atomic.AddUint64(&documentState.generation, 1)

	diagnostics, err := analysis.Validate(context.Background(), content, currentSettings())
	if err != nil {
		log.Errorf("validation pass %d for %s: %s", generation, uri, err)
		return documentState
	}

	documentState.mutex.Lock()
	documentState.Diagnostics = diagnostics
	documentState.mutex.Unlock()

	notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})

	return documentState
}

func deleteDocumentState(uri protocol.DocumentUri) {
	documentStates.Delete(uri)
}

func _getOrCreateDocumentState(uri protocol.DocumentUri) *DocumentState {
	if documentState, ok := documentStates.Load(uri); ok {
		return documentState.(*DocumentState)
	}
	documentState, _ := documentStates.LoadOrStore(uri, &DocumentState{})
	return documentState.(*DocumentState)
}

// revalidateOpenDocuments re-runs validation for every open document, used
// after a settings change. Passes run concurrently; they share nothing but
// the temporary-file namespace.
func revalidateOpenDocuments(notify glsp.NotifyFunc) {
	var group errgroup.Group
	for _, uri := range openDocumentURIs() {
		uri := uri
		group.Go(func() error {
			validateDocumentState(uri, notify)
			return nil
		})
	}
	_ = group.Wait()
}
