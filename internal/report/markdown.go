package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/credaudit/credaudit/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs audit results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownMask hides usernames and sites in the rendered output.
func WithMarkdownMask(mask bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.mask = mask
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the audit result in Markdown format.
func (w *MarkdownWriter) Write(result *model.AuditResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeSummary(md, result)
	w.writeResults(md, result)
	w.writeReuseGroups(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with audit information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.AuditResult) {
	md.H1("Credential Audit Report")
	md.PlainText("")

	v := result.View
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Audit Date", result.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Sources", "`" + strings.Join(result.Sources, "`, `") + "`"},
			{"Minimum Length", strconv.Itoa(v.MinLength)},
			{"Filter", v.Issues},
			{"Sort", v.Sort},
		},
	})
	md.PlainText("")
}

// writeSummary writes the analysis summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, result *model.AuditResult) {
	md.H2("Summary")
	md.PlainText("")

	s := result.Report.Summary
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Accounts audited", strconv.Itoa(s.Total)},
			{"Weak passwords", strconv.Itoa(s.Weak)},
			{"Reuse groups", strconv.Itoa(s.ReusedGroups)},
			{"Reused accounts", strconv.Itoa(s.ReusedAccounts)},
		},
	})
	md.PlainText("")

	high, medium, low := countRisk(result.Rows)
	if high+medium+low > 0 {
		w.writePieChart(md, high, medium, low)
	}

	w.writeAlert(md, s, high)
}

// writePieChart writes a mermaid pie chart for risk distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, high, medium, low int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Account Risk Distribution"),
		piechart.WithShowData(true),
	)

	if high > 0 {
		chart.LabelAndIntValue("High", uint64(high))
	}
	if medium > 0 {
		chart.LabelAndIntValue("Medium", uint64(medium))
	}
	if low > 0 {
		chart.LabelAndIntValue("Low", uint64(low))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the audit outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, s model.Summary, high int) {
	switch {
	case high > 0:
		md.Cautionf(
			"%d account(s) combine heavy password reuse with a weak password. Change these first.",
			high,
		)
	case s.Weak > 0 || s.ReusedAccounts > 0:
		md.Warningf(
			"%d weak password(s) and %d reused account(s) found. Plan rotations for these.",
			s.Weak, s.ReusedAccounts,
		)
	default:
		md.Tip("No weak or reused passwords detected.")
	}
	md.PlainText("")
}

// writeResults writes the per-account result table.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, result *model.AuditResult) {
	md.H2("Accounts")
	md.PlainText("")

	if len(result.Rows) == 0 {
		md.PlainText("No accounts match the current view.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		site, username := w.account(row.Site, row.Username)

		reasons := "-"
		if len(row.Reasons) > 0 {
			reasons = strings.Join(row.Reasons, "; ")
		}
		reuse := "-"
		if row.ReuseCount >= 2 {
			reuse = strconv.Itoa(row.ReuseCount)
		}

		rows[i] = []string{
			w.riskBadge(row.Risk) + " " + row.RiskText,
			truncateString(site, 40),
			truncateString(username, 40),
			reuse,
			truncateString(reasons, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Risk", "Site", "Username", "Reuse", "Issues"},
		Rows:   rows,
	})
	md.PlainText("")
}

// riskBadge returns an emoji badge for the risk level.
func (w *MarkdownWriter) riskBadge(risk model.RiskLevel) string {
	switch risk {
	case model.RiskHigh:
		return "🔴"
	case model.RiskMedium:
		return "🟡"
	case model.RiskLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// writeReuseGroups writes the reuse group section.
func (w *MarkdownWriter) writeReuseGroups(md *markdown.Markdown, result *model.AuditResult) {
	md.H2("Reused Passwords")
	md.PlainText("")

	groups := result.Report.ReuseGroups
	if len(groups) == 0 {
		md.PlainText("No password reuse detected.")
		md.PlainText("")
		return
	}

	for _, g := range groups {
		md.PlainTextf("### Group `%s` (%d accounts)", g.Fingerprint, g.Count)
		md.PlainText("")

		accounts := make([]string, len(g.Accounts))
		for i, a := range g.Accounts {
			site, username := w.account(a.Site, a.Username)
			accounts[i] = site + " (" + username + ")"
		}
		md.BulletList(accounts...)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [credaudit](https://github.com/credaudit/credaudit)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
