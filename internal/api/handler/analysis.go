package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/chart"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/workbook"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
	"github.com/vfg2006/price-impact-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/price-impact-dashboard/pkg/apiErrors"
	"github.com/vfg2006/price-impact-dashboard/pkg/log"
	"github.com/vfg2006/price-impact-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PriceChangeParam é o parâmetro de query com a variação de preço em dólares
const PriceChangeParam = "price_change"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetAnalysis retorna o resumo, as séries do gráfico e as explicações em JSON
func GetAnalysis(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetAnalysis")

		analysis, ok := analyze(w, r, analyzer)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar a análise")
		}
	}
}

// GetAnalysisChart retorna o gráfico de barras empilhadas em PNG
func GetAnalysisChart(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetAnalysisChart")

		analysis, ok := analyze(w, r, analyzer)
		if !ok {
			return
		}

		var buf bytes.Buffer
		err := chart.RenderStackedBar(&buf, analysis.Chart, chart.DefaultWidth, chart.DefaultHeight)
		if errors.Is(err, chart.ErrEmptyChart) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar o gráfico")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao gerar o gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(buf.Bytes())
	}
}

// ExportAnalysis retorna o resumo como planilha xlsx
func ExportAnalysis(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - ExportAnalysis")

		analysis, ok := analyze(w, r, analyzer)
		if !ok {
			return
		}

		var buf bytes.Buffer
		table := domain.SummaryTable{PriceChange: analysis.PriceChange, Rows: analysis.Summary}
		if err := workbook.WriteSummary(&buf, table); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar a planilha de resumo")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao gerar a planilha", nil)
			return
		}

		filename := fmt.Sprintf("price-impact-%s.xlsx", domain.FormatPriceChange(analysis.PriceChange))
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Write(buf.Bytes())
	}
}

// analyze lê o parâmetro price_change e executa a análise. Em caso de erro a resposta
// já foi escrita e ok é falso.
func analyze(w http.ResponseWriter, r *http.Request, analyzer analyzing.Analyzer) (*domain.Analysis, bool) {
	bounds := analyzer.PriceChangeBounds()

	priceChange, err := utils.ParseFloatQuery(r, PriceChangeParam, bounds.Default)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "price_change deve ser numérico", nil)
		return nil, false
	}

	analysis, err := analyzer.Analyze(priceChange)
	if err != nil {
		writeAnalysisError(w, r, err)
		return nil, false
	}

	return analysis, true
}

func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	var rangeErr *analyzing.PriceChangeError

	switch {
	case errors.As(err, &rangeErr):
		apiErrors.WriteError(w, apiErrors.ErrOutOfRange, "price_change fora do intervalo permitido", map[string]float64{
			"min": rangeErr.Min,
			"max": rangeErr.Max,
		})
	case errors.Is(err, analyzing.ErrDatasetUnavailable):
		log.ForContext(r.Context()).WithError(err).Warn("Análise solicitada sem planilha carregada")
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, "Planilha ainda não carregada", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular a análise")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular a análise", nil)
	}
}
