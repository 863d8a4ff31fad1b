package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repoMocks "github.com/vfg2006/price-impact-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/price-impact-dashboard/internal/api/handler/mocks"
	"github.com/vfg2006/price-impact-dashboard/internal/api/handler/router"
	"github.com/vfg2006/price-impact-dashboard/internal/config"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
	"github.com/vfg2006/price-impact-dashboard/internal/usecases/analyzing"
	analyzerMocks "github.com/vfg2006/price-impact-dashboard/internal/usecases/analyzing/mocks"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var bounds = config.PriceChange{Min: -20, Max: 20, Step: 0.5, Default: 5}

func sampleAnalysis(priceChange float64) *domain.Analysis {
	rows := []domain.ChannelPlanSummary{
		{
			BusinessChannel:      "Retail",
			PlanType:             "Basic",
			TotalOriginalSales:   1000,
			TotalNewSales:        900,
			TotalOriginalRevenue: 100000,
			TotalNewRevenue:      99000,
			SalesImpact:          -100,
			RevenueImpact:        -1000,
		},
	}

	return &domain.Analysis{
		RunID:       "abc123",
		Title:       domain.AnalysisTitle(priceChange),
		PriceChange: priceChange,
		Summary:     rows,
		Chart:       domain.BuildChartData(rows),
		Explanations: []domain.SegmentExplanation{
			domain.ExplainSegment(rows[0], -0.01),
		},
		DroppedSegments: []domain.SegmentKey{{BusinessChannel: "Online", PlanType: "Trial"}},
		GeneratedAt:     time.Now(),
	}
}

func serve(h http.Handler, method, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, url, nil))
	return rec
}

func TestGetAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzerMocks.NewMockAnalyzer(ctrl)

	t.Run("sem parâmetro usa o valor padrão", func(t *testing.T) {
		mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)
		mockAnalyzer.EXPECT().Analyze(5.0).Return(sampleAnalysis(5), nil)

		rec := serve(GetAnalysis(mockAnalyzer), http.MethodGet, "/v1/analysis")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body domain.Analysis
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Price Change Impact Analysis ($ 5.0)", body.Title)
		require.Len(t, body.Summary, 1)
		assert.Equal(t, -1000.0, body.Summary[0].RevenueImpact)
	})

	t.Run("valor informado", func(t *testing.T) {
		mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)
		mockAnalyzer.EXPECT().Analyze(-2.5).Return(sampleAnalysis(-2.5), nil)

		rec := serve(GetAnalysis(mockAnalyzer), http.MethodGet, "/v1/analysis?price_change=-2.5")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valor não numérico", func(t *testing.T) {
		mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)

		rec := serve(GetAnalysis(mockAnalyzer), http.MethodGet, "/v1/analysis?price_change=abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_003")
	})

	t.Run("valor fora do intervalo", func(t *testing.T) {
		mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)
		mockAnalyzer.EXPECT().Analyze(25.0).Return(nil, &analyzing.PriceChangeError{Value: 25, Min: -20, Max: 20})

		rec := serve(GetAnalysis(mockAnalyzer), http.MethodGet, "/v1/analysis?price_change=25")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_004")
		assert.Contains(t, rec.Body.String(), `"max":20`)
	})

	t.Run("planilha não carregada", func(t *testing.T) {
		mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)
		mockAnalyzer.EXPECT().Analyze(5.0).Return(nil, analyzing.ErrDatasetUnavailable)

		rec := serve(GetAnalysis(mockAnalyzer), http.MethodGet, "/v1/analysis")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "DATA_001")
	})

	t.Run("erro inesperado", func(t *testing.T) {
		mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)
		mockAnalyzer.EXPECT().Analyze(5.0).Return(nil, errors.New("boom"))

		rec := serve(GetAnalysis(mockAnalyzer), http.MethodGet, "/v1/analysis")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetAnalysisChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzerMocks.NewMockAnalyzer(ctrl)

	t.Run("retorna PNG", func(t *testing.T) {
		mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)
		mockAnalyzer.EXPECT().Analyze(5.0).Return(sampleAnalysis(5), nil)

		rec := serve(GetAnalysisChart(mockAnalyzer), http.MethodGet, "/v1/analysis/chart.png")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
	})

	t.Run("sem segmentos retorna 204", func(t *testing.T) {
		empty := sampleAnalysis(5)
		empty.Summary = nil
		empty.Chart = domain.BuildChartData(nil)

		mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)
		mockAnalyzer.EXPECT().Analyze(5.0).Return(empty, nil)

		rec := serve(GetAnalysisChart(mockAnalyzer), http.MethodGet, "/v1/analysis/chart.png")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestExportAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzerMocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds)
	mockAnalyzer.EXPECT().Analyze(10.0).Return(sampleAnalysis(10), nil)

	rec := serve(ExportAnalysis(mockAnalyzer), http.MethodGet, "/v1/analysis/export.xlsx?price_change=10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "price-impact-10.0.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	channel, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Retail", channel)
}

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzerMocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().PriceChangeBounds().Return(bounds).Times(2)
	mockAnalyzer.EXPECT().Analyze(5.0).Return(sampleAnalysis(5), nil)

	rec := serve(Dashboard(mockAnalyzer), http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Price Change Impact Analysis ($ 5.0)")
	assert.Contains(t, body, `min="-20"`)
	assert.Contains(t, body, `max="20"`)
	assert.Contains(t, body, `step="0.5"`)
	assert.Contains(t, body, "$100,000.00")
	assert.Contains(t, body, "-$1,000.00")
	assert.Contains(t, body, ">1,000.00<")
	assert.Contains(t, body, ">-100.00<")
	assert.Contains(t, body, "Summary Impact of Price Change by Channel")
	assert.Contains(t, body, "Change in Sales and Revenue")
	assert.Contains(t, body, "Analysis of Sample Data for a Price Change of $ 5.0")
	assert.Contains(t, body, "Retail - Basic")
	assert.Contains(t, body, "Sales changed by -100.00 units, and revenue changed by $-1000.00.")
	assert.Contains(t, body, "/v1/analysis/chart.png?price_change=5")
	assert.Contains(t, body, "Online - Trial")
}

func TestDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReloader := mocks.NewMockDatasetReloader(ctrl)

	t.Run("recarga iniciada", func(t *testing.T) {
		mockReloader.EXPECT().TriggerManualSync().Return(true)

		rec := serve(ReloadDataset(mockReloader), http.MethodPost, "/v1/dataset/reload")

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("recarga já em andamento", func(t *testing.T) {
		mockReloader.EXPECT().TriggerManualSync().Return(false)

		rec := serve(ReloadDataset(mockReloader), http.MethodPost, "/v1/dataset/reload")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "DATA_002")
	})

	t.Run("status", func(t *testing.T) {
		mockReloader.EXPECT().GetStatus().Return(map[string]any{"reload_enabled": true})

		rec := serve(GetDatasetStatus(mockReloader), http.MethodGet, "/v1/dataset/status")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"reload_enabled":true}`, rec.Body.String())
	})
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repoMocks.NewMockDatasetRepository(ctrl)

	t.Run("planilha carregada", func(t *testing.T) {
		mockRepo.EXPECT().Current().Return(domain.NewDataset(nil, nil), nil)

		rec := serve(HealthcheckHandler(mockRepo), http.MethodGet, "/healthcheck")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("planilha não carregada", func(t *testing.T) {
		mockRepo.EXPECT().Current().Return(nil, errors.New("dataset not loaded"))

		rec := serve(HealthcheckHandler(mockRepo), http.MethodGet, "/healthcheck")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestWithCors(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	routes := WithCors([]string{"http://localhost:3000"},
		router.Route{Path: "/v1/analysis", Method: http.MethodGet, Handler: ok},
		router.Route{Path: "/v1/analysis", Method: http.MethodPost, Handler: ok},
		router.Route{Path: "/v1/dataset/status", Method: http.MethodGet, Handler: ok},
	)

	// Um OPTIONS por caminho
	require.Len(t, routes, 5)

	rt := router.New(router.WithRoutes(routes...))

	t.Run("aplica CORS na rota", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/analysis", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("responde ao preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/dataset/status", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	})
}
