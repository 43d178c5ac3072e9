package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-hourly-insights/internal/usecases/insighting"
	"github.com/vfg2006/meta-hourly-insights/pkg/apiErrors"
	"github.com/vfg2006/meta-hourly-insights/pkg/log"
	"github.com/vfg2006/meta-hourly-insights/pkg/utils"
)

//go:generate mockgen -destination=mocks/fetcher_mock.go -package=mocks github.com/vfg2006/meta-hourly-insights/internal/usecases/insighting Fetcher

// GetHourlyInsights executa a coleta de um dia de forma síncrona e devolve o envelope.
// Sem ?date= usa o dia anterior (UTC).
func GetHourlyInsights(service insighting.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		date := r.URL.Query().Get("date")
		if date == "" {
			date = utils.DaysBefore(time.Now(), 1)
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"date":       date,
		}).Info("Buscando insights por hora")

		result, err := service.FetchHourlyInsights(r.Context(), id, date)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"date":       date,
				"error_kind": metadomain.KindOf(err),
			}).WithError(err).Error("Erro ao buscar insights por hora")

			writeFetchError(w, err)
			return
		}

		w.Header().Set("X-Run-ID", result.RunID)
		writeJSON(w, http.StatusOK, result.Envelope)
	})
}

// VerifyToken confirma que o token do Meta configurado ainda é aceito
func VerifyToken(service insighting.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		me, err := service.VerifyToken(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Falha na validação do token")
			writeFetchError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, me)
	})
}

// writeFetchError traduz erros do pipeline para códigos da API
func writeFetchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, insighting.ErrInvalidAccount), errors.Is(err, insighting.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, metadomain.ErrJobTimeout):
		apiErrors.WriteError(w, apiErrors.ErrTimeout, err.Error(), nil)
		return
	}

	details := map[string]any{"error_kind": metadomain.KindOf(err)}

	switch metadomain.KindOf(err) {
	case metadomain.ErrorKindAuth:
		apiErrors.WriteError(w, apiErrors.ErrExternalAuth, err.Error(), details)
	case metadomain.ErrorKindRateLimit:
		apiErrors.WriteError(w, apiErrors.ErrRateLimited, err.Error(), details)
	case metadomain.ErrorKindNetworkTransient:
		apiErrors.WriteError(w, apiErrors.ErrCommunication, err.Error(), details)
	case "":
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), details)
	}
}
