package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/repository"
)

// HealthcheckHandler responde 200 com o horário de carga da planilha, ou 503 se ainda não houver
func HealthcheckHandler(datasetRepo repository.DatasetRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		dataset, err := datasetRepo.Current()
		if err != nil {
			response["status"] = "dataset_not_loaded"
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			response["dataset_loaded_at"] = dataset.LoadedAt.Format(time.RFC3339)
			response["dataset_records"] = len(dataset.Records)
			w.Header().Set("Content-Type", "application/json")
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
