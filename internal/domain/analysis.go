package domain

import "time"

// Analysis é a resposta completa de uma execução do cálculo de impacto
type Analysis struct {
	RunID           string               `json:"run_id"`
	Title           string               `json:"title"`
	PriceChange     float64              `json:"price_change"`
	Summary         []ChannelPlanSummary `json:"summary"`
	Chart           ChartData            `json:"chart"`
	Explanations    []SegmentExplanation `json:"explanations"`
	DroppedSegments []SegmentKey         `json:"dropped_segments"`
	DatasetLoadedAt time.Time            `json:"dataset_loaded_at"`
	GeneratedAt     time.Time            `json:"generated_at"`
}
