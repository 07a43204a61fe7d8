package implementation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/adl5423/parasail-ls/analysis"
)

func TestParseSettingsNested(t *testing.T) {
	// The payload arrives as decoded JSON, so numbers are float64.
	var raw interface{}
	payload := `{
		"parasail": {
			"maxNumberOfProblems": 25,
			"enableFormatting": false,
			"implicitImports": false,
			"interpreterPath": "/opt/parasail/bin/interp.csh",
			"libraryPaths": ["/opt/parasail/lib/aaa.psi", "/opt/parasail/lib/reflection.psl"]
		}
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	settings := parseSettings(raw)
	assert.Equal(t, 25, settings.MaxNumberOfProblems)
	assert.False(t, settings.EnableFormatting)
	assert.False(t, settings.ImplicitImports)
	assert.Equal(t, "/opt/parasail/bin/interp.csh", settings.InterpreterPath)
	assert.Equal(t, []string{"/opt/parasail/lib/aaa.psi", "/opt/parasail/lib/reflection.psl"}, settings.LibraryPaths)
}

func TestParseSettingsFlat(t *testing.T) {
	var raw interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"maxNumberOfProblems": 7}`), &raw))

	settings := parseSettings(raw)
	assert.Equal(t, 7, settings.MaxNumberOfProblems)
	assert.True(t, settings.EnableFormatting, "untouched fields keep defaults")
}

func TestParseSettingsMalformed(t *testing.T) {
	assert.Equal(t, analysis.DefaultSettings(), parseSettings(nil))
	assert.Equal(t, analysis.DefaultSettings(), parseSettings("not an object"))

	var raw interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"parasail": {"maxNumberOfProblems": "lots"}}`), &raw))
	assert.Equal(t, analysis.DefaultSettings().MaxNumberOfProblems, parseSettings(raw).MaxNumberOfProblems)
}

func TestWorkspaceDidChangeConfigurationReplacesSettings(t *testing.T) {
	withSettings(t, analysis.DefaultSettings())

	var raw interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"parasail": {"maxNumberOfProblems": 3}}`), &raw))

	err := WorkspaceDidChangeConfiguration(mockContext(), &protocol.DidChangeConfigurationParams{Settings: raw})
	require.NoError(t, err)
	assert.Equal(t, 3, currentSettings().MaxNumberOfProblems)
}
