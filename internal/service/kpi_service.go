package service

import (
	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/util"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type KPIService struct{}

func NewKPIService() *KPIService {
	return &KPIService{}
}

// ComputeKPIs 生成四个 KPI 卡片，顺序与页面一致
func (s *KPIService) ComputeKPIs(records []model.MonthlyRecord) ([]model.KPISummary, error) {
	if err := ValidateDataset(records); err != nil {
		return nil, err
	}

	first, last := records[0], records[len(records)-1]

	decisionsPct, err := PercentChange(first.DataDrivenDecisions, last.DataDrivenDecisions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", model.MetricDataDriven, err)
	}

	return []model.KPISummary{
		daysSaved(first, last),
		{
			Key:       model.MetricDataDriven,
			Label:     "Decisiones Basadas en Datos",
			Current:   last.DataDrivenDecisions,
			Delta:     decisionsPct.InexactFloat64(),
			DeltaKind: model.DeltaPercentChange,
			Direction: model.DirectionOf(first.DataDrivenDecisions, last.DataDrivenDecisions),
			Value:     fmt.Sprintf("%d", last.DataDrivenDecisions),
			DeltaText: decisionsPct.StringFixed(1) + "%",
		},
		pointChange(model.MetricDigitalAdoption, "Adopción Digital", first, last),
		pointChange(model.MetricTrainingCompletion, "Finalización Formación", first, last),
	}, nil
}

// PercentChange (last-first)/first*100，保留一位小数（四舍五入）
func PercentChange(first, last int) (decimal.Decimal, error) {
	if first == 0 {
		return decimal.Zero, util.ErrZeroBaseline
	}
	base := decimal.NewFromInt(int64(first))
	return decimal.NewFromInt(int64(last)).Sub(base).Div(base).Mul(hundred).Round(1), nil
}

// daysSaved 审批时间：delta = 首月 - 末月，正数表示缩短的天数
func daysSaved(first, last model.MonthlyRecord) model.KPISummary {
	saved := first.ApprovalTimeDays - last.ApprovalTimeDays
	return model.KPISummary{
		Key:       model.MetricApprovalTime,
		Label:     "Tiempo Actual Aprobación",
		Current:   last.ApprovalTimeDays,
		Delta:     float64(saved),
		DeltaKind: model.DeltaDaysSaved,
		Direction: model.DirectionOf(first.ApprovalTimeDays, last.ApprovalTimeDays),
		Unit:      "días",
		Value:     fmt.Sprintf("%d días", last.ApprovalTimeDays),
		DeltaText: fmt.Sprintf("%d días", saved),
	}
}

func pointChange(metric model.Metric, label string, first, last model.MonthlyRecord) model.KPISummary {
	from, to := first.Value(metric), last.Value(metric)
	return model.KPISummary{
		Key:       metric,
		Label:     label,
		Current:   to,
		Delta:     float64(to - from),
		DeltaKind: model.DeltaPoints,
		Direction: model.DirectionOf(from, to),
		Unit:      "%",
		Value:     fmt.Sprintf("%d%%", to),
		DeltaText: fmt.Sprintf("%d%%", to-from),
	}
}
