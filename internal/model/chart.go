package model

// ChartKind 图表类型
type ChartKind string

const (
	ChartLine  ChartKind = "line"
	ChartBar   ChartKind = "bar"
	ChartArea  ChartKind = "area"
	ChartRadar ChartKind = "radar"
)

// ChartKinds 页面上的展示顺序
var ChartKinds = []ChartKind{ChartLine, ChartBar, ChartArea, ChartRadar}

// ParseChartKind 校验路径参数
func ParseChartKind(s string) (ChartKind, bool) {
	for _, k := range ChartKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// ChartSpec 与渲染技术无关的图表描述
type ChartSpec struct {
	Kind    ChartKind     `json:"kind" yaml:"kind"`
	Metric  Metric        `json:"metric" yaml:"metric"`
	Title   string        `json:"title" yaml:"title"`
	XLabels []string      `json:"xLabels" yaml:"x_labels"`
	Series  []ChartSeries `json:"series" yaml:"series"`

	// 折线/柱状/面积图的水平参考线；雷达图用目标序列代替
	Reference *ReferenceLine `json:"reference,omitempty" yaml:"reference,omitempty"`

	Smooth        bool       `json:"smooth" yaml:"smooth"`
	Markers       bool       `json:"markers" yaml:"markers"`
	ColorByValue  bool       `json:"colorByValue" yaml:"color_by_value"`
	RadialRange   *AxisRange `json:"radialRange,omitempty" yaml:"radial_range,omitempty"`
	SampleIndices []int      `json:"sampleIndices,omitempty" yaml:"sample_indices,omitempty"`
}

// ChartSeries 一条数据序列
type ChartSeries struct {
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
	Fill   bool      `json:"fill" yaml:"fill"`
	Dash   bool      `json:"dash" yaml:"dash"`
	Color  string    `json:"color,omitempty" yaml:"color,omitempty"`
}

// ReferenceLine 目标线
type ReferenceLine struct {
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
	Color string  `json:"color" yaml:"color"`
	Dash  bool    `json:"dash" yaml:"dash"`
}

type AxisRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}
