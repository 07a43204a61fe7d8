package analysis

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	logging "github.com/op/go-logging"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = logging.MustGetLogger("parasail-ls.analysis")

// diagnosticLine is the only contract with the interpreter: zero or more
// stderr lines of the form "<line>:<column>: <Severity>: <message>", with
// 1-based positions. Anything else on stderr is noise and is dropped.
var diagnosticLine = regexp.MustCompile(`^(\d+):(\d+):\s*(Error|Warning|Info):\s*(.*)$`)

const diagnosticSource = "parasail-ls"

// Validate writes the text to a fresh temporary file, runs the configured
// interpreter over it together with any configured library paths, and
// parses the interpreter's stderr into diagnostics. The interpreter's exit
// code is not inspected; a failing exit with parseable errors is the normal
// case. Only spawn and temp-file failures are reported as errors; the
// caller is expected to log them and publish nothing for the pass.
func Validate(ctx context.Context, text string, settings Settings) ([]protocol.Diagnostic, error) {
	path := filepath.Join(os.TempDir(), "parasail-"+uuid.NewString()+".psl")
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Warningf("temp file not removed: %s", err)
		}
	}()

	args := append(append([]string{}, settings.LibraryPaths...), path)
	command := exec.CommandContext(ctx, settings.InterpreterPath, args...)

	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		var exitError *exec.ExitError
		if !errors.As(err, &exitError) {
			return nil, err
		}
	}

	diagnostics := ParseDiagnostics(stderr.String(), settings.MaxNumberOfProblems)
	return clampToDocument(diagnostics, text), nil
}

// clampToDocument keeps every reported position within the text the pass
// ran against; interpreters occasionally point one past the last line for
// end-of-input errors.
func clampToDocument(diagnostics []protocol.Diagnostic, text string) []protocol.Diagnostic {
	lines := splitLines(text)
	lastLine := protocol.UInteger(len(lines) - 1)

	for i := range diagnostics {
		diagnostic := &diagnostics[i]
		if diagnostic.Range.Start.Line > lastLine {
			diagnostic.Range.Start.Line = lastLine
			diagnostic.Range.End.Line = lastLine
		}
		width := protocol.UInteger(u16len(lines[diagnostic.Range.Start.Line]))
		if diagnostic.Range.Start.Character > width {
			diagnostic.Range.Start.Character = width
		}
		if diagnostic.Range.End.Character > width {
			diagnostic.Range.End.Character = width
		}
	}
	return diagnostics
}

// ParseDiagnostics converts interpreter stderr text into diagnostics, at
// most maxProblems of them (unlimited when maxProblems <= 0). Positions are
// converted from 1-based to 0-based; each diagnostic gets a one-character
// range at the reported location.
func ParseDiagnostics(output string, maxProblems int) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, raw := range strings.Split(output, "\n") {
		if maxProblems > 0 && len(diagnostics) >= maxProblems {
			break
		}

		match := diagnosticLine.FindStringSubmatch(strings.TrimSuffix(raw, "\r"))
		if match == nil {
			continue
		}

		line, _ := strconv.Atoi(match[1])
		column, _ := strconv.Atoi(match[2])
		if line < 1 || column < 1 {
			continue
		}

		severity := severityOf(match[3])
		source := diagnosticSource

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(line - 1), Character: protocol.UInteger(column - 1)},
				End:   protocol.Position{Line: protocol.UInteger(line - 1), Character: protocol.UInteger(column)},
			},
			Severity: &severity,
			Source:   &source,
			Message:  match[4],
		})
	}
	return diagnostics
}

func severityOf(label string) protocol.DiagnosticSeverity {
	switch label {
	case "Error":
		return protocol.DiagnosticSeverityError
	case "Warning":
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
