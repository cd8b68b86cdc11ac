package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/piwi3910/BarCut/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginTop(1)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

func field(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func codeStyle(code model.ErrorCode) lipgloss.Style {
	switch code {
	case model.ErrNone:
		return okStyle
	case model.ErrSubopt:
		return warnStyle
	default:
		return errStyle
	}
}

// renderResult formats a packing result for the terminal.
func renderResult(name string, opts model.Options, result model.PackResult) string {
	if name == "" {
		name = "Cut list"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(name) + "\n")
	b.WriteString(field("Status", codeStyle(result.Error).Render(result.Error.String())) + "\n")
	b.WriteString(field("Stock", fmt.Sprintf("%s mm, trim %s, kerf %s",
		formatMM(opts.StdLength), formatMM(opts.TrimSize), formatMM(opts.SawKerf))) + "\n")
	b.WriteString(field("Bars", fmt.Sprintf("%d new, %d leftover (lower bound %d)",
		result.CountKind(model.BarNew), result.CountKind(model.BarLeftover), result.LowerBound)) + "\n")
	b.WriteString(field("Efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency())) + "\n")
	if result.Heuristic != "" {
		b.WriteString(field("Heuristic", result.Heuristic) + "\n")
	}

	if len(result.Bars) > 0 {
		b.WriteString(sectionStyle.Render("Bars") + "\n")
		for i, bar := range result.Bars {
			pieces := make([]string, len(bar.Items))
			for j, it := range bar.Items {
				pieces[j] = formatMM(it.Length)
				if it.Label != "" && it.Label != pieces[j] {
					pieces[j] = it.Label + " " + pieces[j]
				}
			}
			fmt.Fprintf(&b, "  %3d  %-8s %8s  | %s | left %s\n",
				i+1, bar.Kind, formatMM(bar.Length), strings.Join(pieces, ", "), formatMM(bar.Leftover))
		}
	}

	if len(result.Unplaced) > 0 {
		b.WriteString(sectionStyle.Render("Unplaced") + "\n")
		for _, it := range result.Unplaced {
			b.WriteString(errStyle.Render(fmt.Sprintf("  %s %s (%s mm)", it.ID, it.Label, formatMM(it.Length))) + "\n")
		}
	}
	if len(result.Unused) > 0 {
		parts := make([]string, len(result.Unused))
		for i, l := range result.Unused {
			parts[i] = formatMM(l)
		}
		b.WriteString(field("Unused stock", strings.Join(parts, ", ")) + "\n")
	}
	for _, w := range result.Warnings {
		b.WriteString(warnStyle.Render("warning: "+w.String()) + "\n")
	}
	return b.String()
}

func formatMM(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}
