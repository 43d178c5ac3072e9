package domain

import "github.com/vfg2006/meta-hourly-insights/pkg/utils"

// OutputSummary totaliza os registros normalizados de uma execução
type OutputSummary struct {
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	TotalSpend       float64 `json:"total_spend"`
	UniqueAds        int     `json:"unique_ads"`
	UniqueCampaigns  int     `json:"unique_campaigns"`
	UniqueAdSets     int     `json:"unique_adsets"`
}

// Summarize soma as métricas e conta ids distintos. O gasto é arredondado
// uma única vez, depois da soma.
func Summarize(records []NormalizedRecord) OutputSummary {
	var (
		summary   OutputSummary
		spend     float64
		ads       = make(map[string]struct{})
		campaigns = make(map[string]struct{})
		adSets    = make(map[string]struct{})
	)

	for i := range records {
		r := &records[i]

		summary.TotalImpressions += r.Impressions
		summary.TotalClicks += r.Clicks
		spend += r.Spend

		if r.AdID != "" {
			ads[r.AdID] = struct{}{}
		}
		if r.CampaignID != "" {
			campaigns[r.CampaignID] = struct{}{}
		}
		if r.AdSetID != "" {
			adSets[r.AdSetID] = struct{}{}
		}
	}

	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(spend)
	summary.UniqueAds = len(ads)
	summary.UniqueCampaigns = len(campaigns)
	summary.UniqueAdSets = len(adSets)

	return summary
}
