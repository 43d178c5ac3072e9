package metadomain

// Cabeçalhos de uso devolvidos pela Graph API
const (
	HeaderBusinessUseCaseUsage = "X-Business-Use-Case-Usage"
	HeaderAdsInsightsThrottle  = "X-FB-Ads-Insights-Throttle"
)

// UsageEntry é uma entrada do cabeçalho X-Business-Use-Case-Usage
type UsageEntry struct {
	Type                        string `json:"type"`
	CallCount                   int    `json:"call_count"`
	TotalCPUTime                int    `json:"total_cputime"`
	TotalTime                   int    `json:"total_time"`
	EstimatedTimeToRegainAccess *int   `json:"estimated_time_to_regain_access,omitempty"`
}

// InsightsThrottle é o conteúdo do cabeçalho X-FB-Ads-Insights-Throttle
type InsightsThrottle struct {
	AppIDUtilPct     float64 `json:"app_id_util_pct"`
	AccIDUtilPct     float64 `json:"acc_id_util_pct"`
	AdsAPIAccessTier string  `json:"ads_api_access_tier,omitempty"`
}

// AdStatus é o valor de cada id na consulta em lote de effective_status
type AdStatus struct {
	ID              string `json:"id"`
	EffectiveStatus string `json:"effective_status"`
}

// StatusUnknown é usado quando o status de um anúncio não pôde ser resolvido
const StatusUnknown = "unknown"

// Me é a resposta de GET /me, usada para validar o token
type Me struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
