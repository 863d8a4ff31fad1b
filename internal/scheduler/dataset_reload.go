// Package scheduler contém os serviços de agendamento para recarga de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/repository"
	"github.com/vfg2006/price-impact-dashboard/internal/config"
)

type DatasetReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetReloadService relê a planilha periodicamente e sob demanda
type DatasetReloadService struct {
	scheduler             *gocron.Scheduler
	datasetRepo           repository.DatasetRepository
	config                DatasetReloadConfig
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastError             error
	lastRecordsLoaded     int
}

func NewDatasetReloadService(datasetRepo repository.DatasetRepository, cfg *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule,
		Enabled:      cfg.DatasetReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.Enabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler:   gocron.NewScheduler(time.Local),
		datasetRepo: datasetRepo,
		config:      reloadConfig,
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReloadDataset(); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDataset relê a planilha; execuções sobrepostas são ignoradas
func (s *DatasetReloadService) ReloadDataset() error {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	s.reloadMutex.Unlock()

	logrus.Info("Iniciando recarga do dataset")

	dataset, err := s.datasetRepo.Reload()

	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	s.reloadRunning = false
	s.lastReloadCompletedAt = time.Now()
	s.lastError = err

	if err != nil {
		return err
	}

	s.lastRecordsLoaded = len(dataset.Records)
	logrus.WithField("records", s.lastRecordsLoaded).Info("Recarga do dataset concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma recarga do dataset
func (s *DatasetReloadService) TriggerManualSync() bool {
	s.reloadMutex.Lock()
	running := s.reloadRunning
	s.reloadMutex.Unlock()

	if running {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if err := s.ReloadDataset(); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	var lastError string
	if s.lastError != nil {
		lastError = s.lastError.Error()
	}

	return map[string]any{
		"reload_enabled":           s.config.Enabled,
		"reload_cron":              s.config.CronSchedule,
		"reload_running":           s.reloadRunning,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"last_reload_error":        lastError,
		"last_records_loaded":      s.lastRecordsLoaded,
	}
}
