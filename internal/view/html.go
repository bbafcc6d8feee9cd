package view

import (
	"fcc_dashboard/internal/assets"
	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/util"
	"html/template"
	"io"
	"time"
)

var pageTemplate = template.Must(template.ParseFS(assets.Templates, "templates/dashboard.html"))

type Card struct {
	Label     string
	Value     string
	DeltaText string
	Class     string
	Arrow     string
}

type ChartImage struct {
	Kind     model.ChartKind
	Title    string
	ImageURL string
}

type MonthOption struct {
	Value    string
	Selected bool
}

type PageData struct {
	Dashboard     *model.Dashboard
	NarrativeHTML template.HTML
	Cards         []Card
	Charts        []ChartImage
	MonthOptions  []MonthOption
	GeneratedAt   string
}

// NewPageData imageURL 决定图片地址：在线页面指向接口，导出页面指向相对路径
func NewPageData(d *model.Dashboard, narrativeHTML string, imageURL func(model.ChartKind) string, now time.Time) PageData {
	data := PageData{
		Dashboard:   d,
		GeneratedAt: now.Format(util.TimeFormat),
	}
	if d.Narrative {
		// goldmark 默认不输出原始 HTML，内容来自内嵌文件
		data.NarrativeHTML = template.HTML(narrativeHTML)
	}

	for _, k := range d.KPIs {
		card := Card{Label: k.Label, Value: k.Value, DeltaText: k.DeltaText, Class: "flat", Arrow: "→"}
		switch {
		case k.Delta > 0:
			card.Class, card.Arrow = "up", "↑"
		case k.Delta < 0:
			card.Class, card.Arrow = "down", "↓"
		}
		data.Cards = append(data.Cards, card)
	}

	for _, c := range d.Charts {
		data.Charts = append(data.Charts, ChartImage{Kind: c.Kind, Title: c.Title, ImageURL: imageURL(c.Kind)})
	}

	selected := make(map[string]bool, len(d.Filters.Selected))
	for _, m := range d.Filters.Selected {
		selected[m] = true
	}
	for _, m := range d.Filters.Options {
		data.MonthOptions = append(data.MonthOptions, MonthOption{Value: m, Selected: selected[m]})
	}

	return data
}

func RenderPage(w io.Writer, data PageData) error {
	return pageTemplate.ExecuteTemplate(w, "dashboard.html", data)
}
