package domain

import "time"

// PlatformMeta identifica a origem dos dados no envelope de saída
const PlatformMeta = "meta"

// ActionCount é uma ação do anúncio já convertida para número
type ActionCount struct {
	Type  string  `json:"type"`
	Count float64 `json:"count"`
}

// NormalizedRecord é uma linha de insights por anúncio e hora no formato de saída
type NormalizedRecord struct {
	AccountID     string        `json:"account_id"`
	CampaignID    string        `json:"campaign_id"`
	CampaignName  string        `json:"campaign_name"`
	AdSetID       string        `json:"adset_id"`
	AdSetName     string        `json:"adset_name"`
	AdID          string        `json:"ad_id"`
	AdName        string        `json:"ad_name"`
	Date          string        `json:"date"`
	Hour          string        `json:"hour"`
	Currency      string        `json:"currency"`
	Status        string        `json:"status"`
	Objective     string        `json:"objective"`
	Impressions   int64         `json:"impressions"`
	Clicks        int64         `json:"clicks"`
	Spend         float64       `json:"spend"`
	PurchaseROAS  *float64      `json:"purchase_roas"`
	PurchaseValue *float64      `json:"purchase_value"`
	Actions       []ActionCount `json:"actions"`
}

type OutputMetadata struct {
	AccountID    string        `json:"account_id"`
	Date         string        `json:"date"`
	Platform     string        `json:"platform"`
	FetchedAt    time.Time     `json:"fetched_at"`
	TotalRecords int           `json:"total_records"`
	Summary      OutputSummary `json:"summary"`
}

// OutputEnvelope é o documento produzido por uma execução
type OutputEnvelope struct {
	Metadata OutputMetadata     `json:"metadata"`
	Data     []NormalizedRecord `json:"data"`
}

// NewOutputEnvelope monta o envelope e calcula o resumo a partir dos registros normalizados
func NewOutputEnvelope(accountID, date string, fetchedAt time.Time, records []NormalizedRecord) *OutputEnvelope {
	if records == nil {
		records = []NormalizedRecord{}
	}

	return &OutputEnvelope{
		Metadata: OutputMetadata{
			AccountID:    accountID,
			Date:         date,
			Platform:     PlatformMeta,
			FetchedAt:    fetchedAt.UTC(),
			TotalRecords: len(records),
			Summary:      Summarize(records),
		},
		Data: records,
	}
}
