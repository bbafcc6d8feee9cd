package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fcc_dashboard/internal/config"
	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/view"
	"fcc_dashboard/pkg/cache"
	"fcc_dashboard/pkg/logger"
	"fcc_dashboard/pkg/monitoring"
	"fcc_dashboard/pkg/tracing"
	"fmt"
	"hash/fnv"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type RenderService struct {
	Cache cache.Cache

	mu   sync.RWMutex
	size config.ChartConfig
}

func NewRenderService(c cache.Cache, size config.ChartConfig) *RenderService {
	if c == nil {
		c = cache.Noop{}
	}
	return &RenderService{Cache: c, size: size}
}

// Resize 新尺寸对应新的缓存键，旧条目自然过期
func (s *RenderService) Resize(size config.ChartConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = size
}

func (s *RenderService) Size() config.ChartConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// RenderPNG 先查缓存，未命中时渲染并写回；缓存故障只记日志
func (s *RenderService) RenderPNG(ctx context.Context, spec *model.ChartSpec) ([]byte, error) {
	ctx, span := tracing.Tracer.Start(ctx, "RenderService.RenderPNG",
		trace.WithAttributes(attribute.String("chart.kind", string(spec.Kind))))
	defer span.End()

	size := s.Size()
	key, err := cacheKey(spec, size)
	if err != nil {
		return nil, err
	}

	if data, ok, err := s.Cache.Get(ctx, key); err != nil {
		logger.Log.Warn("chart cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		monitoring.ChartRenders.WithLabelValues(string(spec.Kind), "hit").Inc()
		return data, nil
	}

	var buf bytes.Buffer
	if err := view.RenderChartPNG(&buf, spec, size.Width, size.Height); err != nil {
		return nil, fmt.Errorf("render %s chart: %w", spec.Kind, err)
	}
	monitoring.ChartRenders.WithLabelValues(string(spec.Kind), "miss").Inc()

	data := buf.Bytes()
	if err := s.Cache.Set(ctx, key, data); err != nil {
		logger.Log.Warn("chart cache write failed", zap.String("key", key), zap.Error(err))
	}

	logger.Log.Debug("chart rendered", zap.String("kind", string(spec.Kind)), zap.Int("bytes", len(data)))
	return data, nil
}

func cacheKey(spec *model.ChartSpec, size config.ChartConfig) (string, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return "", err
	}
	h := fnv.New64a()
	h.Write(raw)
	return fmt.Sprintf("chart:%s:%dx%d:%x", spec.Kind, size.Width, size.Height, h.Sum64()), nil
}
