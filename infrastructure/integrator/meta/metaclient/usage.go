package metaclient

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

// DefaultRateLimitWait é usado quando a API não informa quando o acesso volta
const DefaultRateLimitWait = 5 * time.Minute

// UsageResolver lê os cabeçalhos de uso da Graph API
type UsageResolver struct {
	defaultWait time.Duration
}

func NewUsageResolver(defaultWait time.Duration) *UsageResolver {
	if defaultWait <= 0 {
		defaultWait = DefaultRateLimitWait
	}
	return &UsageResolver{defaultWait: defaultWait}
}

// WaitFor extrai estimated_time_to_regain_access (em minutos) da primeira entrada
// da primeira chave de X-Business-Use-Case-Usage. Sem o campo, usa o padrão.
func (r *UsageResolver) WaitFor(header http.Header) time.Duration {
	raw := header.Get(metadomain.HeaderBusinessUseCaseUsage)
	if raw == "" {
		return r.defaultWait
	}

	minutes, ok := firstRegainAccessMinutes([]byte(raw))
	if !ok || minutes <= 0 {
		logrus.WithField("header", raw).Debug("estimated_time_to_regain_access ausente, usando espera padrão")
		return r.defaultWait
	}

	return time.Duration(minutes) * time.Minute
}

// firstRegainAccessMinutes percorre o objeto na ordem do documento; um map
// do encoding/json perderia qual chave veio primeiro
func firstRegainAccessMinutes(data []byte) (int, bool) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, data)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return 0, false
	}

	key := iter.ReadObject()
	if key == "" || iter.Error != nil {
		return 0, false
	}

	var entries []metadomain.UsageEntry
	iter.ReadVal(&entries)
	if iter.Error != nil || len(entries) == 0 {
		return 0, false
	}

	if entries[0].EstimatedTimeToRegainAccess == nil {
		return 0, false
	}

	return *entries[0].EstimatedTimeToRegainAccess, true
}

// LogThrottle registra a utilização informada em X-FB-Ads-Insights-Throttle.
// É apenas informativo: falhas de parse não afetam o fluxo.
func (r *UsageResolver) LogThrottle(header http.Header) {
	raw := header.Get(metadomain.HeaderAdsInsightsThrottle)
	if raw == "" {
		return
	}

	var throttle metadomain.InsightsThrottle
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, &throttle); err != nil {
		logrus.WithField("header", raw).Debug("Não foi possível ler o cabeçalho de throttle de insights")
		return
	}

	throttleUtilization.WithLabelValues("app").Set(throttle.AppIDUtilPct)
	throttleUtilization.WithLabelValues("account").Set(throttle.AccIDUtilPct)

	entry := logrus.WithFields(logrus.Fields{
		"app_id_util_pct": throttle.AppIDUtilPct,
		"acc_id_util_pct": throttle.AccIDUtilPct,
	})
	if throttle.AppIDUtilPct >= 75 || throttle.AccIDUtilPct >= 75 {
		entry.Warn("Uso do throttle de insights está alto")
		return
	}
	entry.Debug("Uso do throttle de insights")
}
