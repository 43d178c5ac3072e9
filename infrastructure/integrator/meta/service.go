package meta

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
)

const accountPrefix = "act_"

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// NormalizeAccountID aceita "123" ou "act_123" e devolve sempre "act_123"
func NormalizeAccountID(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" || strings.HasPrefix(accountID, accountPrefix) {
		return accountID
	}
	return accountPrefix + accountID
}

// GetHourlyAdInsights busca os insights por anúncio e hora de um dia, resolve o status
// de cada anúncio e devolve o envelope de saída com o resumo
func (s *MetaIntegrator) GetHourlyAdInsights(ctx context.Context, accountID, date string) (*domain.OutputEnvelope, error) {
	accountID = NormalizeAccountID(accountID)
	if accountID == "" {
		return nil, fmt.Errorf("id da conta é obrigatório")
	}

	rows, err := s.Client.RunHourlyReport(ctx, accountID, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       date,
			"error":      err.Error(),
		}).Error("Erro ao executar relatório por hora")
		return nil, err
	}

	adIDs := make([]string, 0, len(rows))
	for i := range rows {
		adIDs = append(adIDs, rows[i].AdID)
	}

	statuses, err := s.Client.GetAdStatuses(ctx, adIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao obter status dos anúncios")
		return nil, err
	}

	records := make([]domain.NormalizedRecord, 0, len(rows))
	for i := range rows {
		records = append(records, NormalizeInsightRow(rows[i], statuses.Get(rows[i].AdID)))
	}

	envelope := domain.NewOutputEnvelope(accountID, date, s.now(), records)

	logrus.WithFields(logrus.Fields{
		"account_id":       accountID,
		"date":             date,
		"records":          envelope.Metadata.TotalRecords,
		"unique_ads":       envelope.Metadata.Summary.UniqueAds,
		"total_spend":      envelope.Metadata.Summary.TotalSpend,
		"total_impression": envelope.Metadata.Summary.TotalImpressions,
	}).Info("Insights por hora obtidos")

	return envelope, nil
}

// VerifyToken confirma que o token configurado é aceito pela Graph API
func (s *MetaIntegrator) VerifyToken(ctx context.Context) (*metadomain.Me, error) {
	me, err := s.Client.Me(ctx)
	if err != nil {
		logrus.WithError(err).Error("Falha na validação do token")
		return nil, err
	}
	return me, nil
}
