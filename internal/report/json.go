package report

import (
	"encoding/json"
	"io"

	"github.com/credaudit/credaudit/internal/model"
)

// JSONWriter outputs audit results in JSON format.
// This format is designed for tool integration and programmatic processing,
// including the compare subcommand which diffs two JSON reports.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is recorded in the report's metadata wrapper.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithVersion records the application version in the report metadata.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the audit result in JSON format, wrapped with version
// metadata so downstream tools can detect format changes.
func (w *JSONWriter) Write(result *model.AuditResult) (int, error) {
	return w.writeJSON(NewJSONReport(result, w.version))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONReport is a wrapper for the audit result with additional metadata.
//
// Design decision: We wrap the result rather than modifying AuditResult
// because this allows us to add output-specific fields without polluting
// the core data structure. The compare subcommand unmarshals this exact
// shape, so field names here are part of the tool's output contract.
type JSONReport struct {
	// Version is the credaudit version that generated this report.
	Version string `json:"version"`

	// Result is the full audit result.
	Result *model.AuditResult `json:"result"`
}

// NewJSONReport creates a JSONReport wrapper with version information.
func NewJSONReport(result *model.AuditResult, version string) *JSONReport {
	return &JSONReport{
		Version: version,
		Result:  result,
	}
}

// ReadJSONReport parses a JSON report previously written by JSONWriter.
// It is the inverse of Write and is used by the compare subcommand.
func ReadJSONReport(r io.Reader) (*JSONReport, error) {
	var jr JSONReport
	if err := json.NewDecoder(r).Decode(&jr); err != nil {
		return nil, err
	}
	return &jr, nil
}
