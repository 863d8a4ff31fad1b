package domain

import "sort"

// ChannelPlanSummary agrega o impacto da variação de preço para um segmento
type ChannelPlanSummary struct {
	BusinessChannel      string  `json:"business_channel"`
	PlanType             string  `json:"plan_type"`
	TotalOriginalSales   float64 `json:"total_original_sales"`
	TotalNewSales        float64 `json:"total_new_sales"`
	TotalOriginalRevenue float64 `json:"total_original_revenue"`
	TotalNewRevenue      float64 `json:"total_new_revenue"`
	SalesImpact          float64 `json:"sales_impact"`
	RevenueImpact        float64 `json:"revenue_impact"`
}

func (s ChannelPlanSummary) Key() SegmentKey {
	return SegmentKey{BusinessChannel: s.BusinessChannel, PlanType: s.PlanType}
}

// SummaryTable é o resultado de um cálculo para uma variação de preço
type SummaryTable struct {
	PriceChange float64              `json:"price_change"`
	Rows        []ChannelPlanSummary `json:"rows"`
}

// ApplyPriceChange calcula os campos derivados de cada registro para a variação de preço.
// Os registros de entrada não são alterados. Não há limite inferior para NewSales:
// uma elasticidade negativa forte pode gerar vendas negativas.
func ApplyPriceChange(records []JoinedRecord, priceChange float64) []JoinedRecord {
	result := make([]JoinedRecord, len(records))
	for i, record := range records {
		record.NewPrice = record.OriginalPrice + priceChange
		record.SalesChange = record.Elasticity * priceChange
		record.NewSales = record.Sales * (1 + record.SalesChange)
		record.NewRevenue = record.NewSales * record.NewPrice
		result[i] = record
	}
	return result
}

// Summarize agrupa os registros por (canal, plano). A receita original é recalculada
// linha a linha a partir de Sales e OriginalPrice. O resultado é ordenado por segmento.
func Summarize(records []JoinedRecord) []ChannelPlanSummary {
	groups := make(map[SegmentKey]*ChannelPlanSummary)
	for _, record := range records {
		key := record.Key()
		group, exists := groups[key]
		if !exists {
			group = &ChannelPlanSummary{
				BusinessChannel: key.BusinessChannel,
				PlanType:        key.PlanType,
			}
			groups[key] = group
		}

		group.TotalOriginalSales += record.Sales
		group.TotalNewSales += record.NewSales
		group.TotalOriginalRevenue += record.Sales * record.OriginalPrice
		group.TotalNewRevenue += record.NewRevenue
	}

	summaries := make([]ChannelPlanSummary, 0, len(groups))
	for _, group := range groups {
		group.SalesImpact = group.TotalNewSales - group.TotalOriginalSales
		group.RevenueImpact = group.TotalNewRevenue - group.TotalOriginalRevenue
		summaries = append(summaries, *group)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Key().Less(summaries[j].Key())
	})

	return summaries
}

// ComputeSummary executa o pipeline completo (variação de preço + agregação) sobre o dataset
func ComputeSummary(dataset *Dataset, priceChange float64) SummaryTable {
	table := SummaryTable{PriceChange: priceChange, Rows: []ChannelPlanSummary{}}
	if dataset == nil {
		return table
	}

	table.Rows = Summarize(ApplyPriceChange(dataset.Records, priceChange))
	return table
}

func sortSegments(segments []SegmentKey) {
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Less(segments[j])
	})
}
