package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/adl5423/parasail-ls/analysis"
)

// WorkspaceDidChangeConfiguration implements protocol.WorkspaceDidChangeConfigurationFunc
func WorkspaceDidChangeConfiguration(context *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	replaceSettings(parseSettings(params.Settings))
	go revalidateOpenDocuments(context.Notify)
	return nil
}

// parseSettings extracts this server's settings from the raw configuration
// payload. Clients usually nest them under a "parasail" section; a flat
// object is tolerated too. Unknown or mistyped fields keep their defaults.
func parseSettings(raw interface{}) analysis.Settings {
	settings := analysis.DefaultSettings()

	section, ok := raw.(map[string]interface{})
	if !ok {
		return settings
	}
	if nested, ok := section["parasail"].(map[string]interface{}); ok {
		section = nested
	}

	if value, ok := section["maxNumberOfProblems"].(float64); ok {
		settings.MaxNumberOfProblems = int(value)
	}
	if value, ok := section["enableFormatting"].(bool); ok {
		settings.EnableFormatting = value
	}
	if value, ok := section["implicitImports"].(bool); ok {
		settings.ImplicitImports = value
	}
	if value, ok := section["interpreterPath"].(string); ok && value != "" {
		settings.InterpreterPath = value
	}
	if values, ok := section["libraryPaths"].([]interface{}); ok {
		for _, value := range values {
			if path, ok := value.(string); ok {
				settings.LibraryPaths = append(settings.LibraryPaths, path)
			}
		}
	}

	return settings
}
