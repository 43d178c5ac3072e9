package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/database/postgres"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
)

const (
	hourlyAdInsightsTable = "hourly_ad_insights"

	// linhas por INSERT; 19 colunas ficam bem abaixo do limite de 65535 parâmetros
	insertBatchSize = 500
)

var hourlyAdInsightColumns = []string{
	"account_id", "date", "hour", "ad_id", "ad_name", "adset_id", "adset_name",
	"campaign_id", "campaign_name", "currency", "status", "objective",
	"impressions", "clicks", "spend", "purchase_roas", "purchase_value", "actions",
	"run_id",
}

//go:generate mockgen -source=hourly_ad_insight.go -destination=mocks/hourly_ad_insight_mock.go -package=mocks

type HourlyAdInsightRepository interface {
	ReplaceDay(ctx context.Context, runID string, envelope *domain.OutputEnvelope) error
	CountByAccountAndDate(ctx context.Context, accountID, date string) (int, error)
}

type hourlyAdInsightRepository struct {
	conn postgres.Conn
}

func NewHourlyAdInsightRepository(conn postgres.Conn) HourlyAdInsightRepository {
	return &hourlyAdInsightRepository{
		conn: conn,
	}
}

// ReplaceDay substitui, numa transação, todas as linhas da conta no dia pelas do envelope
func (r *hourlyAdInsightRepository) ReplaceDay(ctx context.Context, runID string, envelope *domain.OutputEnvelope) error {
	deleteSQL, deleteArgs, err := buildDeleteDayQuery(envelope.Metadata.AccountID, envelope.Metadata.Date)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return wrapPQError(err)
		}

		for start := 0; start < len(envelope.Data); start += insertBatchSize {
			end := min(start+insertBatchSize, len(envelope.Data))

			insertSQL, insertArgs, err := buildInsertQuery(runID, envelope.Data[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
				return wrapPQError(err)
			}
		}

		return nil
	})
}

func (r *hourlyAdInsightRepository) CountByAccountAndDate(ctx context.Context, accountID, date string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(hourlyAdInsightsTable).
		Where(squirrel.Eq{"account_id": accountID, "date": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapPQError(err)
	}

	return count, nil
}

func buildDeleteDayQuery(accountID, date string) (string, []any, error) {
	return squirrel.
		Delete(hourlyAdInsightsTable).
		Where(squirrel.Eq{"account_id": accountID, "date": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildInsertQuery(runID string, records []domain.NormalizedRecord) (string, []any, error) {
	query := squirrel.StatementBuilder.
		Insert(hourlyAdInsightsTable).
		Columns(hourlyAdInsightColumns...)

	for i := range records {
		record := &records[i]

		actionsJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(record.Actions)
		if err != nil {
			return "", nil, fmt.Errorf("erro ao serializar actions para JSON: %w", err)
		}

		query = query.Values(
			record.AccountID,
			record.Date,
			record.Hour,
			record.AdID,
			record.AdName,
			record.AdSetID,
			record.AdSetName,
			record.CampaignID,
			record.CampaignName,
			record.Currency,
			record.Status,
			record.Objective,
			record.Impressions,
			record.Clicks,
			record.Spend,
			record.PurchaseROAS,
			record.PurchaseValue,
			string(actionsJSON),
			runID,
		)
	}

	return query.
		Suffix(`
			ON CONFLICT (account_id, date, hour, ad_id) DO UPDATE SET
				ad_name = EXCLUDED.ad_name,
				adset_id = EXCLUDED.adset_id,
				adset_name = EXCLUDED.adset_name,
				campaign_id = EXCLUDED.campaign_id,
				campaign_name = EXCLUDED.campaign_name,
				currency = EXCLUDED.currency,
				status = EXCLUDED.status,
				objective = EXCLUDED.objective,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				purchase_roas = EXCLUDED.purchase_roas,
				purchase_value = EXCLUDED.purchase_value,
				actions = EXCLUDED.actions,
				run_id = EXCLUDED.run_id,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func wrapPQError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
