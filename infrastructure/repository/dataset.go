package repository

//go:generate mockgen -source=dataset.go -destination=mocks/dataset.go -package=mocks

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/workbook"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
)

var ErrDatasetNotLoaded = errors.New("dataset not loaded")

// DatasetRepository mantém o dataset atual em memória
type DatasetRepository interface {
	Current() (*domain.Dataset, error)
	Reload() (*domain.Dataset, error)
}

type datasetRepository struct {
	source  workbook.Source
	mu      sync.RWMutex
	current *domain.Dataset
}

func NewDatasetRepository(source workbook.Source) DatasetRepository {
	return &datasetRepository{
		source: source,
	}
}

func (r *datasetRepository) Current() (*domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil, ErrDatasetNotLoaded
	}

	return r.current, nil
}

// Reload lê a planilha novamente e substitui o dataset atual.
// Em caso de erro o dataset anterior continua em uso.
func (r *datasetRepository) Reload() (*domain.Dataset, error) {
	sales, plans, err := r.source.Load()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar a planilha: %w", err)
	}

	dataset := domain.NewDataset(sales, plans)
	dataset.Source = r.source.Location()

	logDataQuality(dataset)

	r.mu.Lock()
	r.current = dataset
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"source":          dataset.Source,
		"sales_rows":      len(sales),
		"plan_rows":       len(plans),
		"joined_records":  len(dataset.Records),
		"unmatched_rows":  len(dataset.Unmatched),
		"discarded_plans": len(dataset.DiscardedPlans),
	}).Info("Dataset carregado em memória")

	return dataset, nil
}

// logDataQuality registra as linhas que ficaram de fora do cálculo
func logDataQuality(dataset *domain.Dataset) {
	for _, plan := range dataset.DiscardedPlans {
		logrus.WithFields(logrus.Fields{
			"business_channel": plan.BusinessChannel,
			"plan_type":        plan.PlanType,
			"row":              plan.Row,
		}).Debug("Plano sem elasticidade descartado")
	}

	for _, segment := range dataset.UnmatchedSegments() {
		logrus.WithFields(logrus.Fields{
			"business_channel": segment.BusinessChannel,
			"plan_type":        segment.PlanType,
		}).Warn("Vendas sem elasticidade correspondente excluídas do cálculo")
	}
}
