package view

import (
	"fcc_dashboard/internal/model"
	"fmt"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const smoothSteps = 8

var (
	colorGrid   = drawing.ColorFromHex("D0D4DA")
	colorText   = drawing.ColorFromHex("2A3F5F")
	dashPattern = []float64{6, 4}
)

// RenderChartPNG 将图表描述渲染为 PNG
func RenderChartPNG(w io.Writer, spec *model.ChartSpec, width, height int) error {
	if len(spec.Series) == 0 {
		return fmt.Errorf("chart %s has no series", spec.Kind)
	}

	switch spec.Kind {
	case model.ChartLine, model.ChartArea:
		return renderContinuous(w, spec, width, height)
	case model.ChartBar:
		return renderBar(w, spec, width, height)
	case model.ChartRadar:
		return renderRadar(w, spec, width, height)
	}
	return fmt.Errorf("no renderer for chart kind %q", spec.Kind)
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

func monthTicks(labels []string) []chart.Tick {
	ticks := make([]chart.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = chart.Tick{Value: float64(i), Label: l}
	}
	return ticks
}

// upperBound 给 y 轴顶部留出 15% 空间，并取整到 5
func upperBound(spec *model.ChartSpec) float64 {
	top := 0.0
	for _, s := range spec.Series {
		for _, v := range s.Values {
			top = math.Max(top, v)
		}
	}
	if spec.Reference != nil {
		top = math.Max(top, spec.Reference.Value)
	}
	return math.Ceil(top*1.15/5) * 5
}

func referenceStyle(ref *model.ReferenceLine) chart.Style {
	style := chart.Style{
		StrokeColor: hexColor(ref.Color),
		StrokeWidth: 2,
	}
	if ref.Dash {
		style.StrokeDashArray = dashPattern
	}
	return style
}

func renderContinuous(w io.Writer, spec *model.ChartSpec, width, height int) error {
	primary := spec.Series[0]
	xs := make([]float64, len(primary.Values))
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := primary.Values
	if spec.Smooth {
		xs, ys = catmullRom(xs, ys, smoothSteps)
	}

	color := hexColor(primary.Color)
	style := chart.Style{StrokeColor: color, StrokeWidth: 2.5}
	if spec.Markers {
		style.DotColor = color
		style.DotWidth = 4
	}
	if primary.Fill {
		style.FillColor = color.WithAlpha(90)
	}

	series := []chart.Series{
		chart.ContinuousSeries{Name: primary.Name, XValues: xs, YValues: ys, Style: style},
	}

	if ref := spec.Reference; ref != nil {
		last := float64(len(primary.Values) - 1)
		series = append(series,
			chart.ContinuousSeries{
				Name:    ref.Label,
				XValues: []float64{0, last},
				YValues: []float64{ref.Value, ref.Value},
				Style:   referenceStyle(ref),
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{XValue: last, YValue: ref.Value, Label: ref.Label}},
			},
		)
	}

	yMax := upperBound(spec)
	if spec.Kind == model.ChartArea {
		yMax = math.Max(yMax, 100)
	}

	graph := chart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20}},
		XAxis:      chart.XAxis{Ticks: monthTicks(spec.XLabels)},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

func renderBar(w io.Writer, spec *model.ChartSpec, width, height int) error {
	primary := spec.Series[0]
	lo, hi := minMax(primary.Values)

	bars := make([]chart.Value, len(primary.Values))
	for i, v := range primary.Values {
		c := hexColor(primary.Color)
		if spec.ColorByValue {
			c = valueColor(v, lo, hi)
		}
		bars[i] = chart.Value{
			Value: v,
			Label: spec.XLabels[i],
			Style: chart.Style{FillColor: c, StrokeColor: c},
		}
	}

	perBar := (width - 120) / len(bars)
	yRange := &chart.ContinuousRange{Min: 0, Max: upperBound(spec)}

	bc := chart.BarChart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		BarWidth:   perBar * 3 / 5,
		BarSpacing: perBar * 2 / 5,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		YAxis:      chart.YAxis{Range: yRange},
		Bars:       bars,
	}
	if spec.Reference != nil {
		bc.Elements = []chart.Renderable{horizontalLine(spec.Reference, yRange.Min, yRange.Max)}
	}

	return bc.Render(chart.PNG, w)
}

// horizontalLine 柱状图没有叠加序列，参考线直接画在画布上
func horizontalLine(ref *model.ReferenceLine, lo, hi float64) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		y := box.Bottom - int(math.Ceil((ref.Value-lo)/(hi-lo)*float64(box.Height())))

		r.SetStrokeColor(hexColor(ref.Color))
		r.SetStrokeWidth(2)
		if ref.Dash {
			r.SetStrokeDashArray(dashPattern)
		}
		r.MoveTo(box.Left, y)
		r.LineTo(box.Right, y)
		r.Stroke()
		r.SetStrokeDashArray(nil)

		if defaults.Font != nil {
			r.SetFont(defaults.Font)
		}
		r.SetFontSize(10)
		r.SetFontColor(hexColor(ref.Color))
		tb := r.MeasureText(ref.Label)
		r.Text(ref.Label, box.Right-tb.Width()-4, y-4)
	}
}

func minMax(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// valueColor 在浅蓝与深蓝之间按数值插值
func valueColor(v, lo, hi float64) drawing.Color {
	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	from, to := drawing.ColorFromHex("BFD3FF"), drawing.ColorFromHex("0D0887")
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return drawing.Color{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: 255}
}

// catmullRom 在相邻点之间插入 steps 个平滑点
func catmullRom(xs, ys []float64, steps int) ([]float64, []float64) {
	n := len(ys)
	if n < 3 {
		return xs, ys
	}

	outX := make([]float64, 0, (n-1)*steps+1)
	outY := make([]float64, 0, (n-1)*steps+1)
	for i := 0; i < n-1; i++ {
		p0 := ys[max(i-1, 0)]
		p1 := ys[i]
		p2 := ys[i+1]
		p3 := ys[min(i+2, n-1)]
		for s := 0; s < steps; s++ {
			t := float64(s) / float64(steps)
			t2, t3 := t*t, t*t*t
			y := 0.5 * (2*p1 + (p2-p0)*t + (2*p0-5*p1+4*p2-p3)*t2 + (3*p1-p0-3*p2+p3)*t3)
			outX = append(outX, xs[i]+(xs[i+1]-xs[i])*t)
			outY = append(outY, y)
		}
	}
	outX = append(outX, xs[n-1])
	outY = append(outY, ys[n-1])
	return outX, outY
}

func renderRadar(w io.Writer, spec *model.ChartSpec, width, height int) error {
	r, err := chart.PNG(width, height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)

	fillRect(r, 0, 0, width, height, drawing.ColorWhite)

	r.SetFontColor(colorText)
	r.SetFontSize(13)
	tb := r.MeasureText(spec.Title)
	r.Text(spec.Title, (width-tb.Width())/2, 24)

	rng := model.AxisRange{Min: 0, Max: 100}
	if spec.RadialRange != nil {
		rng = *spec.RadialRange
	}

	axes := len(spec.XLabels)
	cx, cy := width/2, height/2+20
	radius := float64(min(width, height-80))/2 - 40

	point := func(i int, v float64) (int, int) {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(axes)
		rr := radius * (v - rng.Min) / (rng.Max - rng.Min)
		return cx + int(math.Round(rr*math.Cos(angle))), cy + int(math.Round(rr*math.Sin(angle)))
	}

	// 网格与轴
	r.SetStrokeColor(colorGrid)
	r.SetStrokeWidth(1)
	r.SetFontSize(9)
	for ring := 1; ring <= 5; ring++ {
		v := rng.Min + (rng.Max-rng.Min)*float64(ring)/5
		polygon(r, axes, func(i int) (int, int) { return point(i, v) })
		r.Stroke()
		lx, ly := point(0, v)
		r.Text(fmt.Sprintf("%.0f", v), lx+4, ly)
	}
	for i := 0; i < axes; i++ {
		x, y := point(i, rng.Max)
		r.SetStrokeColor(colorGrid)
		r.MoveTo(cx, cy)
		r.LineTo(x, y)
		r.Stroke()

		r.SetFontSize(11)
		lb := r.MeasureText(spec.XLabels[i])
		lx, ly := point(i, rng.Max+(rng.Max-rng.Min)*0.1)
		r.Text(spec.XLabels[i], lx-lb.Width()/2, ly+lb.Height()/2)
	}

	for _, s := range spec.Series {
		c := hexColor(s.Color)
		r.SetStrokeColor(c)
		r.SetStrokeWidth(2)
		if s.Dash {
			r.SetStrokeDashArray(dashPattern)
		}
		values := s.Values
		polygon(r, axes, func(i int) (int, int) { return point(i, values[i]) })
		if s.Fill {
			r.SetFillColor(c.WithAlpha(90))
			r.FillStroke()
		} else {
			r.Stroke()
		}
		r.SetStrokeDashArray(nil)
	}

	// 图例
	r.SetFontSize(11)
	for i, s := range spec.Series {
		y := 50 + i*18
		r.SetStrokeColor(hexColor(s.Color))
		r.SetStrokeWidth(3)
		r.MoveTo(width-110, y)
		r.LineTo(width-90, y)
		r.Stroke()
		r.Text(s.Name, width-84, y+4)
	}

	return r.Save(w)
}

func polygon(r chart.Renderer, n int, at func(i int) (int, int)) {
	x, y := at(0)
	r.MoveTo(x, y)
	for i := 1; i < n; i++ {
		x, y = at(i)
		r.LineTo(x, y)
	}
	r.Close()
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetFillColor(c)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}
