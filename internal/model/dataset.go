package model

// Months 日历顺序的月份标签
var Months = [MonthsPerYear]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

const MonthsPerYear = 12

// MonthlyRecord 单月指标
type MonthlyRecord struct {
	Month                 string `json:"month" yaml:"month" binding:"required"`
	ApprovalTimeDays      int    `json:"approvalTimeDays" yaml:"approval_time_days"`
	DataDrivenDecisions   int    `json:"dataDrivenDecisions" yaml:"data_driven_decisions"`
	DigitalAdoptionPct    int    `json:"digitalAdoptionPct" yaml:"digital_adoption_pct"`
	TrainingCompletionPct int    `json:"trainingCompletionPct" yaml:"training_completion_pct"`
}

// Metric 标识数据集中的一列
type Metric string

const (
	MetricApprovalTime       Metric = "approval_time"
	MetricDataDriven         Metric = "data_driven_decisions"
	MetricDigitalAdoption    Metric = "digital_adoption"
	MetricTrainingCompletion Metric = "training_completion"
)

// Value 返回记录中该指标的值
func (r MonthlyRecord) Value(m Metric) int {
	switch m {
	case MetricApprovalTime:
		return r.ApprovalTimeDays
	case MetricDataDriven:
		return r.DataDrivenDecisions
	case MetricDigitalAdoption:
		return r.DigitalAdoptionPct
	case MetricTrainingCompletion:
		return r.TrainingCompletionPct
	}
	return 0
}

// Column 按月份顺序取出一列
func Column(records []MonthlyRecord, m Metric) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = float64(r.Value(m))
	}
	return values
}

// MonthLabels 返回记录中的月份标签
func MonthLabels(records []MonthlyRecord) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Month
	}
	return labels
}
