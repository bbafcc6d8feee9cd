package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fcc_dashboard/internal/config"
	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newExportService(t *testing.T) (*ExportService, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: dir},
	}
	dashboard := newDashboardService()
	svc := NewExportService(
		dashboard,
		NewRenderService(nil, config.ChartConfig{Width: 400, Height: 300}),
		NewNarrativeService(),
		NewStorageService(cfg),
	)
	svc.now = func() time.Time { return time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC) }
	return svc, dir
}

func TestExportService_Export(t *testing.T) {
	svc, dir := newExportService(t)

	result, err := svc.Export(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Prefix, "dashboard-"))
	names := make([]string, len(result.Files))
	for i, f := range result.Files {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"charts/line.png", "charts/bar.png", "charts/area.png", "charts/radar.png",
		"index.html", "dashboard.json", "manifest.yaml",
	}, names)

	root := filepath.Join(dir, result.Prefix)

	png, err := os.ReadFile(filepath.Join(root, "charts", "radar.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))

	page, err := os.ReadFile(filepath.Join(root, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `src="charts/line.png"`)
	assert.Contains(t, string(page), "Título")
	assert.Contains(t, string(page), "2024-12-31 18:00:00")

	raw, err := os.ReadFile(filepath.Join(root, "dashboard.json"))
	require.NoError(t, err)
	var d model.Dashboard
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Len(t, d.KPIs, 4)

	raw, err = os.ReadFile(filepath.Join(root, "manifest.yaml"))
	require.NoError(t, err)
	var m exportManifest
	require.NoError(t, yaml.Unmarshal(raw, &m))
	assert.Equal(t, result.ID, m.ID)
	assert.Equal(t, "2024-12-31T18:00:00Z", m.GeneratedAt)
	assert.Len(t, m.Files, 6)
	require.Len(t, m.Dataset, 12)
	assert.Equal(t, 45, m.Dataset[0].ApprovalTimeDays)
}

func TestExportService_UniquePrefix(t *testing.T) {
	svc, _ := newExportService(t)

	a, err := svc.Export(context.Background())
	require.NoError(t, err)
	b, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a.Prefix, b.Prefix)
}

func TestStorageService_FallsBackToLocal(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Type: util.StorageMinio, MinioEndpoint: "bad!host", LocalPath: t.TempDir()},
	}
	svc := NewStorageService(cfg)
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}

// failingProvider 在写入指定 key 时失败，记录所有删除操作
type failingProvider struct {
	LocalStorageProvider
	failOn  string
	removed []string
}

func (p *failingProvider) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	if strings.HasSuffix(key, p.failOn) {
		return "", errors.New("disk full")
	}
	return p.LocalStorageProvider.Put(ctx, key, reader, size, contentType)
}

func (p *failingProvider) Remove(ctx context.Context, key string) error {
	p.removed = append(p.removed, key)
	return p.LocalStorageProvider.Remove(ctx, key)
}

func TestExportService_RemovesPartialExport(t *testing.T) {
	svc, dir := newExportService(t)
	provider := &failingProvider{LocalStorageProvider: LocalStorageProvider{Root: dir}, failOn: "manifest.yaml"}
	svc.StorageService.Provider = provider

	result, err := svc.Export(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "disk full")

	require.Len(t, provider.removed, 6)
	for _, key := range provider.removed {
		_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
		assert.True(t, os.IsNotExist(statErr), key)
	}
}

func TestLocalStorageProvider_Put(t *testing.T) {
	dir := t.TempDir()
	p := &LocalStorageProvider{Root: dir}

	url, err := p.Put(context.Background(), "a/b/c.txt", strings.NewReader("hello"), 5, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "a", "b", "c.txt")), url)

	data, err := os.ReadFile(filepath.Join(dir, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	// 不残留临时文件
	entries, err := os.ReadDir(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, p.Remove(context.Background(), "a/b/c.txt"))
	_, err = os.Stat(filepath.Join(dir, "a", "b", "c.txt"))
	assert.True(t, os.IsNotExist(err))
}
