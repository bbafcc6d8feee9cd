package view

import (
	"fcc_dashboard/internal/model"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleSubtitle = lipgloss.NewStyle().Bold(true)
	styleGray     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleUp       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleDown     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleHeader   = lipgloss.NewStyle().Bold(true).Underline(true)
	styleTile     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Width(28)
)

// RenderTerminal KPI 卡片、月度表和图表摘要
func RenderTerminal(d *model.Dashboard, records []model.MonthlyRecord) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render(d.Subtitle))
	b.WriteString("\n\n")

	tiles := make([]string, 0, len(d.KPIs))
	for _, k := range d.KPIs {
		tiles = append(tiles, renderTile(k))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	b.WriteString("\n\n")

	b.WriteString(renderTable(records))
	b.WriteString("\n")

	for _, c := range d.Charts {
		b.WriteString(renderChartSummary(c))
		b.WriteString("\n")
	}

	return b.String()
}

func renderTile(k model.KPISummary) string {
	delta := k.DeltaText
	switch {
	case k.Delta > 0:
		delta = styleUp.Render("↑ " + delta)
	case k.Delta < 0:
		delta = styleDown.Render("↓ " + delta)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		styleGray.Render(k.Label),
		lipgloss.NewStyle().Bold(true).Render(k.Value),
		delta,
	)
	return styleTile.Render(body)
}

func renderTable(records []model.MonthlyRecord) string {
	var b strings.Builder
	header := fmt.Sprintf("%-4s %11s %11s %10s %10s", "Mes", "Aprobación", "Decisiones", "Adopción", "Formación")
	b.WriteString(styleHeader.Render(header))
	b.WriteString("\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%-4s %11d %11d %9d%% %9d%%\n",
			r.Month, r.ApprovalTimeDays, r.DataDrivenDecisions, r.DigitalAdoptionPct, r.TrainingCompletionPct)
	}
	return b.String()
}

func renderChartSummary(c model.ChartSpec) string {
	line := fmt.Sprintf("[%s] %s", c.Kind, c.Title)
	if c.Reference != nil {
		return line + styleGray.Render(fmt.Sprintf("  %s (%g)", c.Reference.Label, c.Reference.Value))
	}

	parts := make([]string, 0, len(c.Series))
	for _, s := range c.Series {
		parts = append(parts, fmt.Sprintf("%s %v", s.Name, s.Values))
	}
	return line + styleGray.Render("  "+strings.Join(parts, " vs "))
}
