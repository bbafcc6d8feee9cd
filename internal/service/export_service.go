package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/util"
	"fcc_dashboard/internal/view"
	"fcc_dashboard/pkg/logger"
	"fcc_dashboard/pkg/monitoring"
	"fcc_dashboard/pkg/tracing"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type ExportService struct {
	DashboardService *DashboardService
	RenderService    *RenderService
	NarrativeService *NarrativeService
	StorageService   *StorageService

	now func() time.Time
}

func NewExportService(
	dashboardService *DashboardService,
	renderService *RenderService,
	narrativeService *NarrativeService,
	storageService *StorageService,
) *ExportService {
	return &ExportService{
		DashboardService: dashboardService,
		RenderService:    renderService,
		NarrativeService: narrativeService,
		StorageService:   storageService,
		now:              time.Now,
	}
}

type ExportedFile struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Size        int    `json:"size" yaml:"size"`
	ContentType string `json:"contentType" yaml:"content_type"`
}

type ExportResult struct {
	ID          string         `json:"id"`
	Prefix      string         `json:"prefix"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Files       []ExportedFile `json:"files"`
}

type exportManifest struct {
	ID          string                `yaml:"id"`
	Title       string                `yaml:"title"`
	GeneratedAt string                `yaml:"generated_at"`
	Files       []ExportedFile        `yaml:"files"`
	Dataset     []model.MonthlyRecord `yaml:"dataset"`
}

// chartFile 导出目录内的图片相对路径
func chartFile(kind model.ChartKind) string {
	return "charts/" + string(kind) + ".png"
}

// Export 生成静态仪表盘：四张图、index.html、dashboard.json，最后写 manifest.yaml
// 任一步失败时删除本次已写入的文件
func (s *ExportService) Export(ctx context.Context) (_ *ExportResult, err error) {
	id := uuid.New().String()
	ctx, span := tracing.Tracer.Start(ctx, "ExportService.Export")
	span.SetAttributes(attribute.String("export.id", id))
	defer span.End()
	defer func(start time.Time) { monitoring.ObserveExport(start, err) }(time.Now())

	now := s.now()
	result := &ExportResult{
		ID:          id,
		Prefix:      "dashboard-" + id,
		GeneratedAt: now,
	}

	dashboard, err := s.DashboardService.GetDashboard(ctx, nil)
	if err != nil {
		return nil, err
	}

	var written []string
	defer func() {
		if err != nil && len(written) > 0 {
			span.RecordError(err)
			s.StorageService.RemoveAll(context.WithoutCancel(ctx), written)
		}
	}()

	upload := func(name, contentType string, data []byte) error {
		if err := util.CheckContent(data, contentType); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		key := path.Join(result.Prefix, name)
		url, err := s.StorageService.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		written = append(written, key)
		result.Files = append(result.Files, ExportedFile{Name: name, URL: url, Size: len(data), ContentType: contentType})
		return nil
	}

	for i := range dashboard.Charts {
		spec := &dashboard.Charts[i]
		png, err := s.RenderService.RenderPNG(ctx, spec)
		if err != nil {
			return nil, err
		}
		if err := upload(chartFile(spec.Kind), util.MimePNG, png); err != nil {
			return nil, err
		}
	}

	narrativeHTML := ""
	if dashboard.Narrative {
		if narrativeHTML, err = s.NarrativeService.HTML(); err != nil {
			return nil, err
		}
	}
	var page bytes.Buffer
	if err := view.RenderPage(&page, view.NewPageData(dashboard, narrativeHTML, chartFile, now)); err != nil {
		return nil, err
	}
	if err := upload("index.html", util.MimeHTML, page.Bytes()); err != nil {
		return nil, err
	}

	payload, err := json.MarshalIndent(dashboard, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := upload("dashboard.json", util.MimeJSON, payload); err != nil {
		return nil, err
	}

	manifest, err := yaml.Marshal(exportManifest{
		ID:          id,
		Title:       dashboard.Title,
		GeneratedAt: now.Format(time.RFC3339),
		Files:       result.Files,
		Dataset:     s.DashboardService.DatasetService.Records(),
	})
	if err != nil {
		return nil, err
	}
	if err := upload("manifest.yaml", util.MimeYAML, manifest); err != nil {
		return nil, err
	}

	logger.Log.Info("dashboard exported",
		zap.String("id", id),
		zap.Int("files", len(result.Files)),
		zap.String("index", s.StorageService.URL(path.Join(result.Prefix, "index.html"))),
	)
	return result, nil
}
