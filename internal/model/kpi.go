package model

// Direction 首月到末月的变化方向
type Direction string

const (
	DirectionIncreased Direction = "increased"
	DirectionDecreased Direction = "decreased"
	DirectionUnchanged Direction = "unchanged"
)

// DeltaKind 说明 Delta 的含义
type DeltaKind string

const (
	DeltaDaysSaved     DeltaKind = "days_saved"
	DeltaPercentChange DeltaKind = "percent_change"
	DeltaPoints        DeltaKind = "points"
)

// KPISummary 一个 KPI 卡片
type KPISummary struct {
	Key       Metric    `json:"key"`
	Label     string    `json:"label"`
	Current   int       `json:"current"`
	Delta     float64   `json:"delta"`
	DeltaKind DeltaKind `json:"deltaKind"`
	Direction Direction `json:"direction"`
	Unit      string    `json:"unit"`

	// 展示用文本，例如 "22 días" / "23 días"
	Value     string `json:"value"`
	DeltaText string `json:"deltaText"`
}

// DirectionOf 比较首末值
func DirectionOf(first, last int) Direction {
	switch {
	case last > first:
		return DirectionIncreased
	case last < first:
		return DirectionDecreased
	default:
		return DirectionUnchanged
	}
}
