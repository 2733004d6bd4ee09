package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/credaudit/credaudit/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and a per-account result listing.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithMask hides usernames and sites in the rendered output.
func WithMask(mask bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.mask = mask
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the audit result in human-readable format.
func (w *SimpleWriter) Write(result *model.AuditResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeSummary(&sb, result)
	w.writeResults(&sb, result)
	w.writeReuseGroups(&sb, result)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with audit information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.AuditResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         CREDAUDIT REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Audit Date:  %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Sources:     %s\n", strings.Join(result.Sources, ", ")))
	sb.WriteString(fmt.Sprintf("Accounts:    %d\n", result.Report.Summary.Total))
	sb.WriteString("\n")
}

// writeSummary writes the analysis summary and active view settings.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, result *model.AuditResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	s := result.Report.Summary
	sb.WriteString(fmt.Sprintf("  Accounts audited:  %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("  Weak passwords:    %d\n", s.Weak))
	sb.WriteString(fmt.Sprintf("  Reuse groups:      %d\n", s.ReusedGroups))
	sb.WriteString(fmt.Sprintf("  Reused accounts:   %d\n", s.ReusedAccounts))
	sb.WriteString("\n")

	high, medium, low := countRisk(result.Rows)
	sb.WriteString(fmt.Sprintf("  HIGH:    %d\n", high))
	sb.WriteString(fmt.Sprintf("  MEDIUM:  %d\n", medium))
	sb.WriteString(fmt.Sprintf("  LOW:     %d\n", low))
	sb.WriteString("\n")

	if w.verbose {
		v := result.View
		sb.WriteString(fmt.Sprintf("  View: min length %d, filter %q, sort %q", v.MinLength, v.Issues, v.Sort))
		if v.Search != "" {
			sb.WriteString(fmt.Sprintf(", search %q", v.Search))
		}
		sb.WriteString("\n\n")
	}
}

// countRisk tallies rows by risk level.
func countRisk(rows []model.ResultRow) (high, medium, low int) {
	for _, row := range rows {
		switch row.Risk {
		case model.RiskHigh:
			high++
		case model.RiskMedium:
			medium++
		default:
			low++
		}
	}
	return high, medium, low
}

// writeResults writes the per-account result listing.
func (w *SimpleWriter) writeResults(sb *strings.Builder, result *model.AuditResult) {
	if len(result.Rows) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RESULTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(result.Rows) == 0 {
		sb.WriteString("  No accounts match the current view.\n\n")
		return
	}

	for _, row := range result.Rows {
		site, username := w.account(row.Site, row.Username)
		indicator := w.getRiskIndicator(row.Risk)

		sb.WriteString(fmt.Sprintf("  [%s] %s  %s  %s\n", indicator, row.RiskText, site, username))
		if row.ReuseCount >= 2 {
			sb.WriteString(fmt.Sprintf("        Password shared with %d account(s)\n", row.ReuseCount-1))
		}
		for _, reason := range row.Reasons {
			sb.WriteString(fmt.Sprintf("        * %s\n", reason))
		}
		if w.verbose && row.URL != "" {
			sb.WriteString(fmt.Sprintf("        URL: %s\n", row.URL))
		}
	}
	sb.WriteString("\n")
}

// getRiskIndicator returns a visual indicator for the risk level.
func (w *SimpleWriter) getRiskIndicator(risk model.RiskLevel) string {
	switch risk {
	case model.RiskHigh:
		return "!!"
	case model.RiskMedium:
		return "!"
	case model.RiskLow:
		return "-"
	default:
		return "?"
	}
}

// writeReuseGroups writes the reuse group section.
func (w *SimpleWriter) writeReuseGroups(sb *strings.Builder, result *model.AuditResult) {
	groups := result.Report.ReuseGroups
	if len(groups) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("REUSED PASSWORDS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(groups) == 0 {
		sb.WriteString("  No password reuse detected.\n\n")
		return
	}

	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("  Group %s: %d accounts share one password\n", g.Fingerprint, g.Count))
		for _, a := range g.Accounts {
			site, username := w.account(a.Site, a.Username)
			sb.WriteString(fmt.Sprintf("    - %s (%s)\n", site, username))
		}
		sb.WriteString("\n")
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by credaudit\n")
	sb.WriteString("https://github.com/credaudit/credaudit\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
