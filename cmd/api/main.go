package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/repository"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/workbook"
	"github.com/vfg2006/price-impact-dashboard/internal/api"
	"github.com/vfg2006/price-impact-dashboard/internal/config"
	"github.com/vfg2006/price-impact-dashboard/internal/scheduler"
	"github.com/vfg2006/price-impact-dashboard/internal/usecases/analyzing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetRepo := repository.NewDatasetRepository(workbook.NewExcelSource(cfg.Workbook))

	// Sem a planilha não há o que calcular
	if _, err := datasetRepo.Reload(); err != nil {
		logrus.WithError(err).WithField("path", cfg.Workbook.Path).Fatal("Erro ao carregar a planilha")
	}

	analyzer := analyzing.NewService(cfg, datasetRepo)

	datasetReloadService := scheduler.NewDatasetReloadService(datasetRepo, cfg)
	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga da planilha")
	} else {
		logrus.Info("Agendador de recarga da planilha iniciado com sucesso")
	}

	server, err := api.New(cfg, analyzer, datasetRepo, datasetReloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
