package handler

import (
	"net/http"

	"github.com/vfg2006/price-impact-dashboard/infrastructure/repository"
	"github.com/vfg2006/price-impact-dashboard/internal/api/handler/router"
	"github.com/vfg2006/price-impact-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/price-impact-dashboard/pkg/middleware"
)

func Healthcheck(datasetRepo repository.DatasetRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(datasetRepo),
		},
	}
}

func Pages(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Dashboard(analyzer),
		},
	}
}

func Analysis(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis",
			Method:  http.MethodGet,
			Handler: GetAnalysis(analyzer),
		},
		{
			Path:    "/v1/analysis/chart.png",
			Method:  http.MethodGet,
			Handler: GetAnalysisChart(analyzer),
		},
		{
			Path:    "/v1/analysis/export.xlsx",
			Method:  http.MethodGet,
			Handler: ExportAnalysis(analyzer),
		},
	}
}

func Dataset(reloader DatasetReloader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(reloader),
		},
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(reloader),
		},
	}
}

// WithCors aplica o CORS às rotas informadas e registra o preflight OPTIONS de cada caminho
func WithCors(allowedOrigins []string, routes ...router.Route) []router.Route {
	cors := middleware.Cors(allowedOrigins)

	result := make([]router.Route, 0, len(routes)*2)
	preflight := make(map[string]bool)

	for _, route := range routes {
		route.Middlewares = append([]func(http.Handler) http.Handler{cors}, route.Middlewares...)
		result = append(result, route)

		if preflight[route.Path] {
			continue
		}
		preflight[route.Path] = true

		// O middleware responde ao OPTIONS antes de chegar ao handler
		result = append(result, router.Route{
			Path:        route.Path,
			Method:      http.MethodOptions,
			Handler:     http.NotFoundHandler(),
			Middlewares: []func(http.Handler) http.Handler{cors},
		})
	}

	return result
}
