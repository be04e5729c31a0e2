package output

import (
	"fmt"
	"strings"

	"github.com/autotroph/gamecheck/internal/report"
)

// Section renders a styled section header.
func Section(title string) string {
	return StyleHeader.Render(title) + "\n" + StyleMuted.Render(strings.Repeat("─", len(title)))
}

// Banner renders the overall pass/warn/fail verdict line.
func Banner(status report.Severity) string {
	switch status {
	case report.Error:
		return StyleError.Render("Overall game-ready status: FAIL")
	case report.Warning:
		return StyleWarning.Render("Overall game-ready status: PASS WITH WARNINGS")
	default:
		return StyleSuccess.Render("Overall game-ready status: PASS")
	}
}

// RenderFileReport formats a complete scan report: verdict banner,
// file-level findings, a per-object summary table, and per-object detail
// sections. The engine makes no formatting decisions; everything here is
// derived from severities, messages, and metrics.
func RenderFileReport(r *report.FileReport) string {
	var sb strings.Builder

	sb.WriteString(Section("Game-Ready Check Report"))
	sb.WriteString("\n\n")
	sb.WriteString(" " + Banner(r.Status) + "\n")
	sb.WriteString(fmt.Sprintf(" %s %s\n", StyleMuted.Render("Scope:"), r.Scope))
	sb.WriteString(fmt.Sprintf(" %s %d error(s), %d warning(s)\n",
		StyleMuted.Render("Findings:"),
		r.TotalCount(report.Error), r.TotalCount(report.Warning)))

	if len(r.Findings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(Section("File"))
		sb.WriteString("\n")
		for _, f := range r.Findings {
			sb.WriteString(renderFinding(f))
		}
	}

	if len(r.Objects) > 0 {
		sb.WriteString("\n")
		sb.WriteString(Section("Objects"))
		sb.WriteString("\n")
		sb.WriteString(renderSummaryTable(r))

		for i := range r.Objects {
			sb.WriteString(renderObjectDetail(&r.Objects[i]))
		}
	}

	return sb.String()
}

func renderSummaryTable(r *report.FileReport) string {
	tbl := NewTable("Object", "Status", "Errors", "Warnings")
	for i := range r.Objects {
		obj := &r.Objects[i]
		status := obj.Status()
		label := SeverityStyle(status).Render(statusLabel(obj))
		tbl.AddRow(obj.Name, label,
			fmt.Sprintf("%d", obj.Count(report.Error)),
			fmt.Sprintf("%d", obj.Count(report.Warning)))
	}
	return tbl.Render()
}

func statusLabel(obj *report.ObjectReport) string {
	if obj.Excluded {
		return "excluded"
	}
	switch obj.Status() {
	case report.Error:
		return "FAIL"
	case report.Warning:
		return "PASS*"
	default:
		return "PASS"
	}
}

func renderObjectDetail(obj *report.ObjectReport) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(Section("Object: " + obj.Name))
	sb.WriteString("\n")

	if obj.Excluded {
		for _, f := range obj.Findings {
			sb.WriteString(renderFinding(f))
		}
		return sb.String()
	}

	for _, section := range report.Sections {
		findings := obj.SectionFindings(section)

		sb.WriteString(fmt.Sprintf("\n [%s]\n", StyleBold.Render(string(section))))
		if len(findings) == 0 {
			sb.WriteString(" " + StyleMuted.Render("no applicable checks") + "\n")
			continue
		}

		errors := 0
		warnings := 0
		for _, f := range findings {
			sb.WriteString(renderFinding(f))
			switch f.Severity {
			case report.Error:
				errors++
			case report.Warning:
				warnings++
			}
		}

		switch {
		case errors > 0:
			sb.WriteString(" " + StyleError.Render(fmt.Sprintf("%s: FAIL (%d error(s))", section, errors)) + "\n")
		case warnings > 0:
			sb.WriteString(" " + StyleWarning.Render(fmt.Sprintf("%s: PASS with warnings", section)) + "\n")
		default:
			sb.WriteString(" " + StyleSuccess.Render(fmt.Sprintf("%s: PASS", section)) + "\n")
		}
	}

	return sb.String()
}

func renderFinding(f report.Finding) string {
	tag := SeverityStyle(f.Severity).Render("[" + f.Severity.String() + "]")
	return fmt.Sprintf(" %s %s\n", tag, f.Message)
}
