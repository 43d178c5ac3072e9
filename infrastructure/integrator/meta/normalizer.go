package meta

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
)

// NormalizeInsightRow converte uma linha crua de insights no registro de saída.
// Valores numéricos malformados viram zero e geram um aviso.
func NormalizeInsightRow(row metadomain.InsightRow, status string) domain.NormalizedRecord {
	if status == "" {
		status = metadomain.StatusUnknown
	}

	actions := make([]domain.ActionCount, 0, len(row.Actions))
	for _, action := range row.Actions {
		actions = append(actions, domain.ActionCount{
			Type:  action.ActionType,
			Count: parseFloat(row.AdID, "actions."+action.ActionType, action.Value),
		})
	}

	return domain.NormalizedRecord{
		AccountID:     row.AccountID,
		CampaignID:    row.CampaignID,
		CampaignName:  row.CampaignName,
		AdSetID:       row.AdSetID,
		AdSetName:     row.AdSetName,
		AdID:          row.AdID,
		AdName:        row.AdName,
		Date:          row.DateStart,
		Hour:          row.HourlyStats,
		Currency:      row.AccountCurrency,
		Status:        status,
		Objective:     row.Objective,
		Impressions:   parseInt(row.AdID, "impressions", row.Impressions),
		Clicks:        parseInt(row.AdID, "clicks", row.Clicks),
		Spend:         parseFloat(row.AdID, "spend", row.Spend),
		PurchaseROAS:  purchaseROAS(row),
		PurchaseValue: purchaseValue(row),
		Actions:       actions,
	}
}

// purchaseROAS usa a entrada omni_purchase, senão a primeira da lista
func purchaseROAS(row metadomain.InsightRow) *float64 {
	if len(row.PurchaseROAS) == 0 {
		return nil
	}

	entry := row.PurchaseROAS[0]
	if omni, ok := findAction(row.PurchaseROAS, metadomain.ActionTypeOmniPurchase); ok {
		entry = omni
	}

	value := parseFloat(row.AdID, "purchase_roas", entry.Value)
	return &value
}

// purchaseValue usa omni_purchase, senão purchase; sem nenhum dos dois é nulo
func purchaseValue(row metadomain.InsightRow) *float64 {
	for _, actionType := range []string{metadomain.ActionTypeOmniPurchase, metadomain.ActionTypePurchase} {
		if entry, ok := findAction(row.ActionValues, actionType); ok {
			value := parseFloat(row.AdID, "action_values."+actionType, entry.Value)
			return &value
		}
	}
	return nil
}

func findAction(values []metadomain.ActionValue, actionType string) (metadomain.ActionValue, bool) {
	for _, v := range values {
		if v.ActionType == actionType {
			return v, true
		}
	}
	return metadomain.ActionValue{}, false
}

func parseInt(adID, field, raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"field": field,
			"value": raw,
			"error": err.Error(),
		}).Warn("Erro ao converter valor para inteiro")
		return 0
	}

	return value
}

func parseFloat(adID, field, raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"field": field,
			"value": raw,
			"error": err.Error(),
		}).Warn("Erro ao converter valor para decimal")
		return 0
	}

	return value
}
