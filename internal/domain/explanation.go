package domain

import (
	"fmt"
	"math"
	"strconv"
)

// SegmentExplanation é o texto explicativo de um segmento no dashboard
type SegmentExplanation struct {
	Segment        string  `json:"segment"`
	Elasticity     float64 `json:"elasticity"`
	ElasticityText string  `json:"elasticity_text"`
	ImpactText     string  `json:"impact_text"`
}

// ExplainSegment monta a explicação de um segmento a partir da elasticidade e do resumo
func ExplainSegment(summary ChannelPlanSummary, elasticity float64) SegmentExplanation {
	var elasticityText string
	if elasticity > 0 {
		elasticityText = fmt.Sprintf(
			"Positive (%.4f), indicating a %.2f%% increase in sales for each $1 increase in price.",
			elasticity, elasticity*100,
		)
	} else {
		elasticityText = fmt.Sprintf(
			"Negative (%.4f), indicating a %.2f%% decrease in sales for each $1 increase in price.",
			elasticity, math.Abs(elasticity*100),
		)
	}

	return SegmentExplanation{
		Segment:        summary.Key().Label(),
		Elasticity:     elasticity,
		ElasticityText: elasticityText,
		ImpactText: fmt.Sprintf(
			"Sales changed by %.2f units, and revenue changed by $%.2f.",
			summary.SalesImpact, summary.RevenueImpact,
		),
	}
}

// ExplainSummary gera uma explicação por linha do resumo usando o mapa de elasticidades
// do dataset. Linhas sem elasticidade cadastrada são ignoradas.
func ExplainSummary(dataset *Dataset, rows []ChannelPlanSummary) []SegmentExplanation {
	explanations := make([]SegmentExplanation, 0, len(rows))
	if dataset == nil {
		return explanations
	}

	for _, row := range rows {
		elasticity, ok := dataset.ElasticityFor(row.Key())
		if !ok {
			continue
		}
		explanations = append(explanations, ExplainSegment(row, elasticity))
	}
	return explanations
}

// FormatPriceChange formata a variação de preço sempre com ao menos uma casa decimal (5.0, -2.5)
func FormatPriceChange(priceChange float64) string {
	if priceChange == math.Trunc(priceChange) && !math.IsInf(priceChange, 0) {
		return strconv.FormatFloat(priceChange, 'f', 1, 64)
	}
	return strconv.FormatFloat(priceChange, 'f', -1, 64)
}

// AnalysisTitle retorna o título da página para a variação de preço
func AnalysisTitle(priceChange float64) string {
	return fmt.Sprintf("Price Change Impact Analysis ($ %s)", FormatPriceChange(priceChange))
}

// Títulos das seções do relatório
const (
	SummaryHeading = "Summary Impact of Price Change by Channel"
	ChartHeading   = "Change in Sales and Revenue"
)

// SampleAnalysisHeading retorna o título da seção de explicações
func SampleAnalysisHeading(priceChange float64) string {
	return fmt.Sprintf("Analysis of Sample Data for a Price Change of $ %s", FormatPriceChange(priceChange))
}
