package handler

//go:generate mockgen -source=dataset.go -destination=mocks/dataset_reloader.go -package=mocks

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/pkg/apiErrors"
)

// DatasetReloader dispara e acompanha a recarga da planilha
type DatasetReloader interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// ReloadDataset dispara a recarga da planilha em background
func ReloadDataset(reloader DatasetReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReloadDataset")

		if !reloader.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrDatasetReload, "Recarga da planilha já em andamento", nil)
			return
		}

		response := map[string]any{
			"message": "Recarga da planilha iniciada com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(response)
	}
}

// GetDatasetStatus retorna o status do agendador de recarga
func GetDatasetStatus(reloader DatasetReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetDatasetStatus")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reloader.GetStatus())
	}
}
