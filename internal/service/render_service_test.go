package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"fcc_dashboard/internal/config"
	"fcc_dashboard/internal/model"
	"fcc_dashboard/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func TestRenderService_AllKinds(t *testing.T) {
	specs, err := NewChartService().BuildChartSpecs(canonicalRecords())
	require.NoError(t, err)

	svc := NewRenderService(nil, config.ChartConfig{Width: 640, Height: 360})
	for i := range specs {
		spec := &specs[i]
		t.Run(string(spec.Kind), func(t *testing.T) {
			data, err := svc.RenderPNG(context.Background(), spec)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, pngMagic))
		})
	}
}

func TestRenderService_CacheHit(t *testing.T) {
	spec, err := NewChartService().BuildChartSpec(canonicalRecords(), model.ChartLine)
	require.NoError(t, err)

	mem := cache.NewMemoryCache(8, time.Minute)
	svc := NewRenderService(mem, config.ChartConfig{Width: 400, Height: 300})

	first, err := svc.RenderPNG(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 1, mem.Len())

	second, err := svc.RenderPNG(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, mem.Len())

	svc.Resize(config.ChartConfig{Width: 500, Height: 300})
	_, err = svc.RenderPNG(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 2, mem.Len())
}

func TestRenderService_BrokenCacheStillRenders(t *testing.T) {
	spec, err := NewChartService().BuildChartSpec(canonicalRecords(), model.ChartRadar)
	require.NoError(t, err)

	svc := NewRenderService(brokenCache{}, config.ChartConfig{Width: 400, Height: 400})
	data, err := svc.RenderPNG(context.Background(), spec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestRenderService_EmptySeries(t *testing.T) {
	svc := NewRenderService(nil, config.ChartConfig{Width: 400, Height: 300})
	_, err := svc.RenderPNG(context.Background(), &model.ChartSpec{Kind: model.ChartLine})
	assert.Error(t, err)
}
