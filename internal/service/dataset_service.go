package service

import (
	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/repository"
	"fcc_dashboard/internal/util"
	"fmt"
)

type DatasetService struct {
	DatasetRepo *repository.DatasetRepository
}

func NewDatasetService(datasetRepo *repository.DatasetRepository) *DatasetService {
	return &DatasetService{DatasetRepo: datasetRepo}
}

func (s *DatasetService) Records() []model.MonthlyRecord {
	return s.DatasetRepo.Records()
}

// ValidateDataset 要求恰好 12 条按日历顺序排列的记录，百分比在 0..100 之间
func ValidateDataset(records []model.MonthlyRecord) error {
	if len(records) != model.MonthsPerYear {
		return fmt.Errorf("%w: expected %d records, got %d", util.ErrInvalidDataset, model.MonthsPerYear, len(records))
	}

	for i, r := range records {
		if r.Month != model.Months[i] {
			return fmt.Errorf("%w: record %d has month %q, expected %q", util.ErrInvalidDataset, i, r.Month, model.Months[i])
		}
		if r.ApprovalTimeDays < 0 {
			return fmt.Errorf("%w: %s approval time is negative (%d)", util.ErrInvalidDataset, r.Month, r.ApprovalTimeDays)
		}
		if r.DataDrivenDecisions < 0 {
			return fmt.Errorf("%w: %s decision count is negative (%d)", util.ErrInvalidDataset, r.Month, r.DataDrivenDecisions)
		}
		if !isPercent(r.DigitalAdoptionPct) {
			return fmt.Errorf("%w: %s digital adoption %d%% out of range", util.ErrInvalidDataset, r.Month, r.DigitalAdoptionPct)
		}
		if !isPercent(r.TrainingCompletionPct) {
			return fmt.Errorf("%w: %s training completion %d%% out of range", util.ErrInvalidDataset, r.Month, r.TrainingCompletionPct)
		}
	}

	return nil
}

func isPercent(v int) bool {
	return v >= 0 && v <= 100
}
