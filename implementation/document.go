package implementation

import (
	"strings"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// documentStore holds opened documents.
type documentStore struct {
	mutex     sync.RWMutex
	documents map[protocol.DocumentUri]*document
}

// document represents an open ParaSail buffer.
type document struct {
	URI     protocol.DocumentUri
	Path    string
	Content string
	Version protocol.Integer
}

var documents = documentStore{documents: map[protocol.DocumentUri]*document{}}

func setDocument(uri protocol.DocumentUri, content string, version protocol.Integer) {
	documents.mutex.Lock()
	defer documents.mutex.Unlock()
	documents.documents[uri] = &document{
		URI:     uri,
		Path:    uriToInternalPath(uri),
		Content: content,
		Version: version,
	}
}

func getDocument(uri protocol.DocumentUri) (string, bool) {
	documents.mutex.RLock()
	defer documents.mutex.RUnlock()
	if document, ok := documents.documents[uri]; ok {
		return document.Content, true
	}
	return "", false
}

func deleteDocument(uri protocol.DocumentUri) {
	documents.mutex.Lock()
	defer documents.mutex.Unlock()
	delete(documents.documents, uri)
}

func openDocumentURIs() []protocol.DocumentUri {
	documents.mutex.RLock()
	defer documents.mutex.RUnlock()
	uris := make([]protocol.DocumentUri, 0, len(documents.documents))
	for uri := range documents.documents {
		uris = append(uris, uri)
	}
	return uris
}

func uriToInternalPath(uri protocol.DocumentUri) string {
	return strings.TrimPrefix(string(uri), "file://")
}
