package metadomain

// ActionValue é uma entrada das listas actions, action_values e purchase_roas
type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha de insights por anúncio e hora, com números em string como a API devolve
type InsightRow struct {
	AccountID       string        `json:"account_id"`
	AccountCurrency string        `json:"account_currency"`
	CampaignID      string        `json:"campaign_id"`
	CampaignName    string        `json:"campaign_name"`
	AdSetID         string        `json:"adset_id"`
	AdSetName       string        `json:"adset_name"`
	AdID            string        `json:"ad_id"`
	AdName          string        `json:"ad_name"`
	Objective       string        `json:"objective"`
	Impressions     string        `json:"impressions"`
	Clicks          string        `json:"clicks"`
	Spend           string        `json:"spend"`
	DateStart       string        `json:"date_start"`
	DateStop        string        `json:"date_stop"`
	HourlyStats     string        `json:"hourly_stats_aggregated_by_advertiser_time_zone"`
	Actions         []ActionValue `json:"actions,omitempty"`
	ActionValues    []ActionValue `json:"action_values,omitempty"`
	PurchaseROAS    []ActionValue `json:"purchase_roas,omitempty"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// InsightsPage é uma página de /<report_run_id>/insights
type InsightsPage struct {
	Data   []InsightRow `json:"data"`
	Paging *Paging      `json:"paging,omitempty"`
}

// InsightFields são os campos pedidos na criação do relatório
var InsightFields = []string{
	"account_id",
	"account_currency",
	"campaign_id",
	"campaign_name",
	"adset_id",
	"adset_name",
	"ad_id",
	"ad_name",
	"objective",
	"impressions",
	"clicks",
	"spend",
	"actions",
	"action_values",
	"purchase_roas",
}

// HourlyBreakdown quebra as linhas por hora no fuso horário da conta
const HourlyBreakdown = "hourly_stats_aggregated_by_advertiser_time_zone"

// Tipos de ação usados na normalização
const (
	ActionTypeOmniPurchase = "omni_purchase"
	ActionTypePurchase     = "purchase"
)
