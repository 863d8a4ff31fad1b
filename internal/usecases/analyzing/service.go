package analyzing

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/repository"
	"github.com/vfg2006/price-impact-dashboard/internal/config"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
	"github.com/vfg2006/price-impact-dashboard/pkg/utils"
)

type Service struct {
	datasetRepository repository.DatasetRepository
	bounds            config.PriceChange
}

func NewService(cfg *config.Config, datasetRepo repository.DatasetRepository) Analyzer {
	return &Service{
		datasetRepository: datasetRepo,
		bounds:            cfg.PriceChange,
	}
}

func (s *Service) PriceChangeBounds() config.PriceChange {
	return s.bounds
}

func (s *Service) Analyze(priceChange float64) (*domain.Analysis, error) {
	if math.IsNaN(priceChange) || !s.bounds.Contains(priceChange) {
		return nil, &PriceChangeError{Value: priceChange, Min: s.bounds.Min, Max: s.bounds.Max}
	}

	dataset, err := s.datasetRepository.Current()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar o identificador da análise")
	}

	table := domain.ComputeSummary(dataset, priceChange)

	analysis := &domain.Analysis{
		RunID:           runID,
		Title:           domain.AnalysisTitle(priceChange),
		PriceChange:     priceChange,
		Summary:         table.Rows,
		Chart:           domain.BuildChartData(table.Rows),
		Explanations:    domain.ExplainSummary(dataset, table.Rows),
		DroppedSegments: dataset.UnmatchedSegments(),
		DatasetLoadedAt: dataset.LoadedAt,
		GeneratedAt:     time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"run_id":           runID,
		"price_change":     priceChange,
		"segments":         len(analysis.Summary),
		"dropped_segments": len(analysis.DroppedSegments),
	}).Debug("Análise de impacto calculada")

	return analysis, nil
}
