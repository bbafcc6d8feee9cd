package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fcc_dashboard/internal/config"
	"fcc_dashboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg.Storage.LocalPath = t.TempDir()
	cfg.Chart = config.ChartConfig{Width: 400, Height: 300}

	a, err := NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func do(a *App, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var resp envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRouter_Dashboard(t *testing.T) {
	a := newTestApp(t)

	w := do(a, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[model.Dashboard](t, w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Dashboard de Transformación Digital FCC", resp.Data.Title)
	require.Len(t, resp.Data.KPIs, 4)
	assert.Equal(t, 22, resp.Data.KPIs[0].Current)
	assert.Len(t, resp.Data.Charts, 4)
	assert.Len(t, resp.Data.Filters.Selected, 12)
}

func TestRouter_DashboardMonthsFilter(t *testing.T) {
	a := newTestApp(t)

	w := do(a, http.MethodGet, "/api/dashboard?months=Mar,Ene&months=Dic", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[model.Dashboard](t, w)
	assert.Equal(t, []string{"Ene", "Mar", "Dic"}, resp.Data.Filters.Selected)
	assert.Equal(t, 22, resp.Data.KPIs[0].Current)
}

func TestRouter_KPIsAndCharts(t *testing.T) {
	a := newTestApp(t)

	w := do(a, http.MethodGet, "/api/dashboard/kpis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	kpis := decode[[]model.KPISummary](t, w)
	require.Len(t, kpis.Data, 4)
	assert.Equal(t, "250.0%", kpis.Data[1].DeltaText)

	w = do(a, http.MethodGet, "/api/dashboard/charts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	charts := decode[[]model.ChartSpec](t, w)
	assert.Len(t, charts.Data, 4)

	w = do(a, http.MethodGet, "/api/dashboard/charts/bar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bar := decode[model.ChartSpec](t, w)
	assert.InDelta(t, 12.5, bar.Data.Reference.Value, 1e-9)

	w = do(a, http.MethodGet, "/api/dashboard/charts/pie", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(a, http.MethodGet, "/api/dashboard/charts/pie/image", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ChartImage(t *testing.T) {
	a := newTestApp(t)

	for _, kind := range model.ChartKinds {
		w := do(a, http.MethodGet, "/api/dashboard/charts/"+string(kind)+"/image", nil)
		require.Equal(t, http.StatusOK, w.Code, kind)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
	}
}

func TestRouter_DatasetAndNarrative(t *testing.T) {
	a := newTestApp(t)

	w := do(a, http.MethodGet, "/api/dashboard/dataset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dataset := decode[[]model.MonthlyRecord](t, w)
	require.Len(t, dataset.Data, 12)
	assert.Equal(t, "Ene", dataset.Data[0].Month)

	w = do(a, http.MethodGet, "/api/dashboard/narrative", nil)
	require.Equal(t, http.StatusOK, w.Code)
	narrative := decode[model.Narrative](t, w)
	assert.NotEmpty(t, narrative.Data.Markdown)
	assert.Contains(t, narrative.Data.HTML, "<table>")
}

func TestRouter_Preview(t *testing.T) {
	a := newTestApp(t)
	records := a.Services.Dataset.Records()

	body, err := json.Marshal(model.PreviewRequest{Records: records})
	require.NoError(t, err)
	w := do(a, http.MethodPost, "/api/dashboard/preview", body)
	require.Equal(t, http.StatusOK, w.Code)
	preview := decode[model.PreviewResponse](t, w)
	assert.Len(t, preview.Data.KPIs, 4)

	body, err = json.Marshal(model.PreviewRequest{Records: records[:11]})
	require.NoError(t, err)
	w = do(a, http.MethodPost, "/api/dashboard/preview", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid dataset")

	records[0].DataDrivenDecisions = 0
	body, err = json.Marshal(model.PreviewRequest{Records: records})
	require.NoError(t, err)
	w = do(a, http.MethodPost, "/api/dashboard/preview", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(a, http.MethodPost, "/api/dashboard/preview", []byte("{"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Page(t *testing.T) {
	a := newTestApp(t)

	w := do(a, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), "Dashboard de Transformación Digital FCC")
	assert.Contains(t, w.Body.String(), `src="/api/dashboard/charts/radar/image"`)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	a := newTestApp(t)

	w := do(a, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dataset":"up"`)
	assert.Contains(t, w.Body.String(), `"cache":"memory"`)

	do(a, http.MethodGet, "/api/dashboard/kpis", nil)
	w = do(a, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fcc_dashboard_kpi_current")
}

func TestApp_ApplyConfig(t *testing.T) {
	a := newTestApp(t)

	var got *config.Config
	a.RegisterConfigCallback(func(c *config.Config) { got = c })

	next := *a.Config
	next.Dashboard.Title = "Recargado"
	next.Chart = config.ChartConfig{Width: 320, Height: 240}
	a.ApplyConfig(&next)

	assert.Same(t, &next, got)
	assert.Equal(t, config.ChartConfig{Width: 320, Height: 240}, a.Services.Render.Size())

	w := do(a, http.MethodGet, "/api/dashboard", nil)
	resp := decode[model.Dashboard](t, w)
	assert.Equal(t, "Recargado", resp.Data.Title)
}
