package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

const DefaultStatusBatchSize = 50

// StatusMap relaciona ad_id ao effective_status. Uma entrada nunca é sobrescrita.
type StatusMap map[string]string

// Get retorna o status do anúncio ou "unknown"
func (m StatusMap) Get(adID string) string {
	if status, ok := m[adID]; ok {
		return status
	}
	return metadomain.StatusUnknown
}

func (m StatusMap) setOnce(adID, status string) {
	if _, ok := m[adID]; ok {
		return
	}
	m[adID] = status
}

// AdStatusEnricher consulta effective_status em lotes de ids
type AdStatusEnricher struct {
	requester   Requester
	baseURL     string
	accessToken string
	batchSize   int
}

func NewAdStatusEnricher(requester Requester, baseURL, accessToken string, batchSize int) *AdStatusEnricher {
	if batchSize <= 0 {
		batchSize = DefaultStatusBatchSize
	}
	return &AdStatusEnricher{
		requester:   requester,
		baseURL:     baseURL,
		accessToken: accessToken,
		batchSize:   batchSize,
	}
}

// Resolve devolve um status para cada id. Um lote que falha após todas as tentativas
// marca seus ids como "unknown" e a consulta segue; só o cancelamento do contexto interrompe.
func (e *AdStatusEnricher) Resolve(ctx context.Context, adIDs []string) (StatusMap, error) {
	ids := distinct(adIDs)
	statuses := make(StatusMap, len(ids))

	for start := 0; start < len(ids); start += e.batchSize {
		end := min(start+e.batchSize, len(ids))
		batch := ids[start:end]

		resolved, err := e.fetchBatch(ctx, batch)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("consulta de status interrompida: %w", ctxErr)
			}

			metaStatusBatchesTotal.WithLabelValues("degraded").Inc()
			logrus.WithFields(logrus.Fields{
				"batch_start": start,
				"batch_size":  len(batch),
			}).WithError(err).Warn("Falha no lote de status, anúncios marcados como unknown")

			for _, id := range batch {
				statuses.setOnce(id, metadomain.StatusUnknown)
			}
			continue
		}

		metaStatusBatchesTotal.WithLabelValues("ok").Inc()
		for _, id := range batch {
			status := metadomain.StatusUnknown
			if s, ok := resolved[id]; ok && s.EffectiveStatus != "" {
				status = s.EffectiveStatus
			}
			statuses.setOnce(id, status)
		}
	}

	return statuses, nil
}

func (e *AdStatusEnricher) fetchBatch(ctx context.Context, batch []string) (map[string]metadomain.AdStatus, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(batch, ","))
	params.Set("fields", "effective_status")
	params.Set("access_token", e.accessToken)

	body, err := e.requester.Execute(ctx, Get(e.baseURL+"/", params))
	if err != nil {
		return nil, err
	}

	var resp map[string]metadomain.AdStatus
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &resp); err != nil {
		return nil, metadomain.NewAPIError(fmt.Sprintf("invalid ad status response: %v", err))
	}

	return resp, nil
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
