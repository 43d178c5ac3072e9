package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-hourly-insights/pkg/apiErrors"
	"github.com/vfg2006/meta-hourly-insights/pkg/middleware"
)

//go:generate mockgen -source=sync.go -destination=mocks/sync_mock.go -package=mocks

// SyncService é o agendador de coleta exposto pela API
type SyncService interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunSync dispara manualmente a sincronização de todas as contas configuradas
func RunSync(service SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := logrus.WithField("path", r.URL.Path)
		if claims, ok := middleware.ClaimsFromContext(r); ok {
			logger = logger.WithField("operator", claims.Operator)
		}
		logger.Info("INIT - RunSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		// a sincronização continua depois da resposta, então não herda o cancelamento da requisição
		if !service.TriggerManualSync(context.WithoutCancel(r.Context())) {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Sincronização iniciada com sucesso",
		})
	}
}

// GetSyncStatus retorna o status do agendador e o resultado da última sincronização
func GetSyncStatus(service SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetSyncStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}
