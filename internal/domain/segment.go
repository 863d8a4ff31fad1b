// Package domain contém as estruturas de dados e os cálculos de impacto de preço
package domain

import "fmt"

// SegmentKey identifica um segmento (canal de venda + tipo de plano)
type SegmentKey struct {
	BusinessChannel string `json:"business_channel"`
	PlanType        string `json:"plan_type"`
}

// Label retorna a chave composta exibida no gráfico ("Canal - Plano")
func (k SegmentKey) Label() string {
	return fmt.Sprintf("%s - %s", k.BusinessChannel, k.PlanType)
}

// Less ordena segmentos por canal e depois por plano
func (k SegmentKey) Less(other SegmentKey) bool {
	if k.BusinessChannel != other.BusinessChannel {
		return k.BusinessChannel < other.BusinessChannel
	}
	return k.PlanType < other.PlanType
}
