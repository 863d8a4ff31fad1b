package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/internal/config"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
	"github.com/vfg2006/price-impact-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/price-impact-dashboard/pkg/apiErrors"
	"github.com/vfg2006/price-impact-dashboard/pkg/log"
	"github.com/vfg2006/price-impact-dashboard/pkg/utils"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"money":          utils.FormatMoney,
			"number":         utils.FormatNumber,
			"priceChange":    domain.FormatPriceChange,
			"sampleHeading":  domain.SampleAnalysisHeading,
			"summaryHeading": func() string { return domain.SummaryHeading },
			"chartHeading":   func() string { return domain.ChartHeading },
		}).
		ParseFS(templatesFS, "templates/dashboard.html"),
)

type dashboardView struct {
	Bounds   config.PriceChange
	Analysis *domain.Analysis
}

// Dashboard renderiza a página com o controle deslizante, a tabela, o gráfico e as explicações
func Dashboard(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - Dashboard")

		analysis, ok := analyze(w, r, analyzer)
		if !ok {
			return
		}

		var buf bytes.Buffer
		view := dashboardView{Bounds: analyzer.PriceChangeBounds(), Analysis: analysis}
		if err := dashboardTemplate.Execute(&buf, view); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar o dashboard")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao renderizar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
