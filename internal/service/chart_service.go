package service

import (
	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/util"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	colorSeries = "#636EFA"
	colorTarget = "#EF553B"
	colorRed    = "#FF0000"
	colorGreen  = "#008000"

	// 雷达图目标值
	trainingTarget = 80
	adoptionTarget = 90
)

var (
	approvalTargetFactor  = decimal.RequireFromString("0.6")
	decisionsTargetFactor = decimal.RequireFromString("1.25")

	// 每季度最后一个月：3、6、9、12 月
	quarterSampleIndices = []int{2, 5, 8, 11}
	quarterLabels        = []string{"Q1", "Q2", "Q3", "Q4"}
)

type ChartService struct{}

func NewChartService() *ChartService {
	return &ChartService{}
}

// BuildChartSpecs 按 line、bar、area、radar 顺序生成图表描述
func (s *ChartService) BuildChartSpecs(records []model.MonthlyRecord) ([]model.ChartSpec, error) {
	if err := ValidateDataset(records); err != nil {
		return nil, err
	}

	return []model.ChartSpec{
		approvalTimeChart(records),
		decisionsChart(records),
		adoptionChart(records),
		trainingRadar(records),
	}, nil
}

// BuildChartSpec 只生成一种图表
func (s *ChartService) BuildChartSpec(records []model.MonthlyRecord, kind model.ChartKind) (*model.ChartSpec, error) {
	specs, err := s.BuildChartSpecs(records)
	if err != nil {
		return nil, err
	}
	for i := range specs {
		if specs[i].Kind == kind {
			return &specs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", util.ErrUnknownChart, kind)
}

// QuarterlySample 取第 3、6、9、12 个月的值
func QuarterlySample(records []model.MonthlyRecord, metric model.Metric) []float64 {
	values := make([]float64, len(quarterSampleIndices))
	for i, idx := range quarterSampleIndices {
		values[i] = float64(records[idx].Value(metric))
	}
	return values
}

func scaled(v int, factor decimal.Decimal) float64 {
	return decimal.NewFromInt(int64(v)).Mul(factor).InexactFloat64()
}

func approvalTimeChart(records []model.MonthlyRecord) model.ChartSpec {
	return model.ChartSpec{
		Kind:    model.ChartLine,
		Metric:  model.MetricApprovalTime,
		Title:   "Reducción del Tiempo de Aprobación de Proyectos de TI",
		XLabels: model.MonthLabels(records),
		Series: []model.ChartSeries{{
			Name:   "Tiempo de aprobación (días)",
			Values: model.Column(records, model.MetricApprovalTime),
			Color:  colorSeries,
		}},
		Reference: &model.ReferenceLine{
			Value: scaled(records[0].ApprovalTimeDays, approvalTargetFactor),
			Label: "Objetivo: -40%",
			Color: colorRed,
			Dash:  true,
		},
		Markers: true,
	}
}

func decisionsChart(records []model.MonthlyRecord) model.ChartSpec {
	return model.ChartSpec{
		Kind:    model.ChartBar,
		Metric:  model.MetricDataDriven,
		Title:   "Cantidad de Decisiones Basadas en Datos",
		XLabels: model.MonthLabels(records),
		Series: []model.ChartSeries{{
			Name:   "Decisiones basadas en datos",
			Values: model.Column(records, model.MetricDataDriven),
			Color:  colorSeries,
		}},
		Reference: &model.ReferenceLine{
			Value: scaled(records[0].DataDrivenDecisions, decisionsTargetFactor),
			Label: "Objetivo: +25%",
			Color: colorGreen,
			Dash:  true,
		},
		ColorByValue: true,
	}
}

func adoptionChart(records []model.MonthlyRecord) model.ChartSpec {
	return model.ChartSpec{
		Kind:    model.ChartArea,
		Metric:  model.MetricDigitalAdoption,
		Title:   "Evolución de la Adopción de Herramientas Digitales",
		XLabels: model.MonthLabels(records),
		Series: []model.ChartSeries{{
			Name:   "Adopción digital (%)",
			Values: model.Column(records, model.MetricDigitalAdoption),
			Fill:   true,
			Color:  colorSeries,
		}},
		Reference: &model.ReferenceLine{
			Value: adoptionTarget,
			Label: "Objetivo: 90%",
			Color: colorGreen,
			Dash:  true,
		},
		Smooth: true,
	}
}

func trainingRadar(records []model.MonthlyRecord) model.ChartSpec {
	target := make([]float64, len(quarterLabels))
	for i := range target {
		target[i] = trainingTarget
	}

	return model.ChartSpec{
		Kind:    model.ChartRadar,
		Metric:  model.MetricTrainingCompletion,
		Title:   "Tasa de Finalización del Programa de Formación en TI por Trimestre",
		XLabels: append([]string(nil), quarterLabels...),
		Series: []model.ChartSeries{
			{
				Name:   "Actual",
				Values: QuarterlySample(records, model.MetricTrainingCompletion),
				Fill:   true,
				Color:  colorSeries,
			},
			{
				Name:   "Objetivo",
				Values: target,
				Dash:   true,
				Color:  colorTarget,
			},
		},
		RadialRange:   &model.AxisRange{Min: 0, Max: 100},
		SampleIndices: append([]int(nil), quarterSampleIndices...),
	}
}
