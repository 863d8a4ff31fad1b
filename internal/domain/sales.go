package domain

// SalesRecord representa uma linha da aba de vendas
type SalesRecord struct {
	BusinessChannel string  `json:"business_channel"`
	PlanType        string  `json:"plan_type"`
	OriginalPrice   float64 `json:"original_price"`
	Sales           float64 `json:"sales"`
	Row             int     `json:"-"` // Linha de origem na planilha
}

func (r SalesRecord) Key() SegmentKey {
	return SegmentKey{BusinessChannel: r.BusinessChannel, PlanType: r.PlanType}
}

// PlanElasticity representa uma linha da aba de preços dos planos.
// Elasticity é a variação fracionária das vendas para cada $1 de variação no preço;
// fica nil quando a célula está vazia na planilha.
type PlanElasticity struct {
	BusinessChannel string   `json:"business_channel"`
	PlanType        string   `json:"plan_type"`
	Elasticity      *float64 `json:"elasticity"`
	Row             int      `json:"-"`
}

func (p PlanElasticity) Key() SegmentKey {
	return SegmentKey{BusinessChannel: p.BusinessChannel, PlanType: p.PlanType}
}

// HasElasticity indica se a linha pode participar do cálculo
func (p PlanElasticity) HasElasticity() bool {
	return p.Elasticity != nil
}

// JoinedRecord é uma linha de vendas combinada com a elasticidade do seu segmento,
// acrescida dos campos derivados da variação de preço
type JoinedRecord struct {
	SalesRecord
	Elasticity  float64 `json:"elasticity"`
	NewPrice    float64 `json:"new_price"`
	SalesChange float64 `json:"sales_change"`
	NewSales    float64 `json:"new_sales"`
	NewRevenue  float64 `json:"new_revenue"`
}
