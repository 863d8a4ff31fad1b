package analyzing

//go:generate mockgen -source=interfaces.go -destination=mocks/analyzer.go -package=mocks

import (
	"github.com/vfg2006/price-impact-dashboard/internal/config"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
)

// Analyzer calcula o impacto de uma variação de preço sobre o dataset atual
type Analyzer interface {
	// Analyze executa o cálculo completo (resumo, gráfico e explicações) para a variação informada
	Analyze(priceChange float64) (*domain.Analysis, error)

	// PriceChangeBounds retorna os limites e o valor padrão do controle deslizante
	PriceChangeBounds() config.PriceChange
}
