package domain

import "time"

// Dataset é a tabela combinada em memória usada em todos os cálculos.
// Depois de construído não é mais alterado; recargas geram um novo Dataset.
type Dataset struct {
	Records          []JoinedRecord
	Unmatched        []SalesRecord
	DiscardedPlans   []PlanElasticity
	Source           string
	LoadedAt         time.Time
	elasticityByPlan map[SegmentKey]float64
}

// NewDataset remove os planos sem elasticidade e faz o inner join das vendas com os planos
// por (canal, tipo de plano). Assim como um merge relacional, planos duplicados multiplicam
// as linhas de venda correspondentes. Vendas sem plano correspondente ficam em Unmatched.
func NewDataset(sales []SalesRecord, plans []PlanElasticity) *Dataset {
	ds := &Dataset{
		Records:          make([]JoinedRecord, 0, len(sales)),
		Unmatched:        make([]SalesRecord, 0),
		DiscardedPlans:   make([]PlanElasticity, 0),
		LoadedAt:         time.Now(),
		elasticityByPlan: make(map[SegmentKey]float64, len(plans)),
	}

	plansByKey := make(map[SegmentKey][]float64, len(plans))
	for _, plan := range plans {
		if !plan.HasElasticity() {
			ds.DiscardedPlans = append(ds.DiscardedPlans, plan)
			continue
		}

		key := plan.Key()
		plansByKey[key] = append(plansByKey[key], *plan.Elasticity)

		// Apenas a primeira ocorrência é usada nas explicações
		if _, exists := ds.elasticityByPlan[key]; !exists {
			ds.elasticityByPlan[key] = *plan.Elasticity
		}
	}

	for _, sale := range sales {
		elasticities, ok := plansByKey[sale.Key()]
		if !ok {
			ds.Unmatched = append(ds.Unmatched, sale)
			continue
		}

		for _, elasticity := range elasticities {
			ds.Records = append(ds.Records, JoinedRecord{
				SalesRecord: sale,
				Elasticity:  elasticity,
			})
		}
	}

	return ds
}

// ElasticityFor retorna a primeira elasticidade cadastrada para o segmento
func (d *Dataset) ElasticityFor(key SegmentKey) (float64, bool) {
	elasticity, ok := d.elasticityByPlan[key]
	return elasticity, ok
}

// UnmatchedSegments retorna os segmentos de vendas excluídos pelo join, sem repetição
func (d *Dataset) UnmatchedSegments() []SegmentKey {
	seen := make(map[SegmentKey]bool, len(d.Unmatched))
	segments := make([]SegmentKey, 0)
	for _, sale := range d.Unmatched {
		key := sale.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		segments = append(segments, key)
	}

	sortSegments(segments)
	return segments
}
