package service

import (
	"context"
	"fcc_dashboard/internal/config"
	"fcc_dashboard/internal/model"
	"fcc_dashboard/pkg/monitoring"
	"fcc_dashboard/pkg/tracing"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DashboardService struct {
	DatasetService *DatasetService
	KPIService     *KPIService
	ChartService   *ChartService

	mu       sync.RWMutex
	settings config.DashboardConfig
}

func NewDashboardService(
	datasetService *DatasetService,
	kpiService *KPIService,
	chartService *ChartService,
	settings config.DashboardConfig,
) *DashboardService {
	return &DashboardService{
		DatasetService: datasetService,
		KPIService:     kpiService,
		ChartService:   chartService,
		settings:       settings,
	}
}

// UpdateSettings 配置热加载时替换标题等展示设置
func (s *DashboardService) UpdateSettings(settings config.DashboardConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *DashboardService) Settings() config.DashboardConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// GetDashboard selectedMonths 只回显在筛选框中，不参与计算
func (s *DashboardService) GetDashboard(ctx context.Context, selectedMonths []string) (*model.Dashboard, error) {
	_, span := tracing.Tracer.Start(ctx, "DashboardService.GetDashboard")
	defer span.End()

	records := s.DatasetService.Records()

	kpis, err := s.KPIService.ComputeKPIs(records)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	charts, err := s.ChartService.BuildChartSpecs(records)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	observeKPIs(kpis)

	settings := s.Settings()
	return &model.Dashboard{
		Title:     settings.Title,
		Subtitle:  settings.Subtitle,
		KPIs:      kpis,
		Charts:    charts,
		Filters:   monthFilter(selectedMonths),
		Narrative: settings.Narrative,
	}, nil
}

func (s *DashboardService) GetKPIs(ctx context.Context) ([]model.KPISummary, error) {
	_, span := tracing.Tracer.Start(ctx, "DashboardService.GetKPIs")
	defer span.End()

	kpis, err := s.KPIService.ComputeKPIs(s.DatasetService.Records())
	if err != nil {
		return nil, err
	}
	observeKPIs(kpis)
	return kpis, nil
}

func (s *DashboardService) GetCharts(ctx context.Context) ([]model.ChartSpec, error) {
	_, span := tracing.Tracer.Start(ctx, "DashboardService.GetCharts")
	defer span.End()

	return s.ChartService.BuildChartSpecs(s.DatasetService.Records())
}

func (s *DashboardService) GetChart(ctx context.Context, kind model.ChartKind) (*model.ChartSpec, error) {
	_, span := tracing.Tracer.Start(ctx, "DashboardService.GetChart",
		trace.WithAttributes(attribute.String("chart.kind", string(kind))))
	defer span.End()

	return s.ChartService.BuildChartSpec(s.DatasetService.Records(), kind)
}

// Preview 用调用方提供的数据集计算 KPI 与图表，不写回任何状态
func (s *DashboardService) Preview(ctx context.Context, records []model.MonthlyRecord) (*model.PreviewResponse, error) {
	_, span := tracing.Tracer.Start(ctx, "DashboardService.Preview",
		trace.WithAttributes(attribute.Int("records", len(records))))
	defer span.End()

	kpis, err := s.KPIService.ComputeKPIs(records)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	charts, err := s.ChartService.BuildChartSpecs(records)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &model.PreviewResponse{KPIs: kpis, Charts: charts}, nil
}

func monthFilter(selectedMonths []string) model.MonthFilter {
	options := model.Months[:]

	wanted := make(map[string]bool, len(selectedMonths))
	for _, m := range selectedMonths {
		wanted[m] = true
	}

	selected := make([]string, 0, len(options))
	for _, m := range options {
		if len(selectedMonths) == 0 || wanted[m] {
			selected = append(selected, m)
		}
	}

	return model.MonthFilter{
		Header:   "Filtros",
		Label:    "Seleccionar Meses",
		Options:  append([]string(nil), options...),
		Selected: selected,
	}
}

func observeKPIs(kpis []model.KPISummary) {
	for _, k := range kpis {
		monitoring.KPICurrent.WithLabelValues(string(k.Key)).Set(float64(k.Current))
		monitoring.KPIDelta.WithLabelValues(string(k.Key)).Set(k.Delta)
	}
}
