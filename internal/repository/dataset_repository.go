package repository

import (
	"fcc_dashboard/internal/model"
	"sync"
)

// canonicalDataset 编译期固定的 12 个月数据
var canonicalDataset = [model.MonthsPerYear]model.MonthlyRecord{
	{Month: "Ene", ApprovalTimeDays: 45, DataDrivenDecisions: 10, DigitalAdoptionPct: 20, TrainingCompletionPct: 50},
	{Month: "Feb", ApprovalTimeDays: 42, DataDrivenDecisions: 12, DigitalAdoptionPct: 30, TrainingCompletionPct: 55},
	{Month: "Mar", ApprovalTimeDays: 40, DataDrivenDecisions: 14, DigitalAdoptionPct: 40, TrainingCompletionPct: 60},
	{Month: "Abr", ApprovalTimeDays: 38, DataDrivenDecisions: 16, DigitalAdoptionPct: 50, TrainingCompletionPct: 65},
	{Month: "May", ApprovalTimeDays: 35, DataDrivenDecisions: 18, DigitalAdoptionPct: 60, TrainingCompletionPct: 70},
	{Month: "Jun", ApprovalTimeDays: 32, DataDrivenDecisions: 20, DigitalAdoptionPct: 65, TrainingCompletionPct: 72},
	{Month: "Jul", ApprovalTimeDays: 30, DataDrivenDecisions: 23, DigitalAdoptionPct: 70, TrainingCompletionPct: 74},
	{Month: "Ago", ApprovalTimeDays: 28, DataDrivenDecisions: 25, DigitalAdoptionPct: 75, TrainingCompletionPct: 76},
	{Month: "Sep", ApprovalTimeDays: 25, DataDrivenDecisions: 28, DigitalAdoptionPct: 80, TrainingCompletionPct: 78},
	{Month: "Oct", ApprovalTimeDays: 24, DataDrivenDecisions: 30, DigitalAdoptionPct: 85, TrainingCompletionPct: 80},
	{Month: "Nov", ApprovalTimeDays: 23, DataDrivenDecisions: 32, DigitalAdoptionPct: 88, TrainingCompletionPct: 82},
	{Month: "Dic", ApprovalTimeDays: 22, DataDrivenDecisions: 35, DigitalAdoptionPct: 90, TrainingCompletionPct: 85},
}

type DatasetRepository struct {
	once    sync.Once
	records []model.MonthlyRecord
}

func NewDatasetRepository() *DatasetRepository {
	return &DatasetRepository{}
}

// Records 返回数据集副本；底层表只构建一次
func (r *DatasetRepository) Records() []model.MonthlyRecord {
	r.once.Do(func() {
		r.records = canonicalDataset[:]
	})

	out := make([]model.MonthlyRecord, len(r.records))
	copy(out, r.records)
	return out
}
