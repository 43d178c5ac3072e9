package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/database/postgres"
)

// statements cria as tabelas usadas pelo destino Postgres. São idempotentes.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS hourly_ad_insights (
		account_id     TEXT        NOT NULL,
		date           DATE        NOT NULL,
		hour           TEXT        NOT NULL,
		ad_id          TEXT        NOT NULL,
		ad_name        TEXT,
		adset_id       TEXT,
		adset_name     TEXT,
		campaign_id    TEXT,
		campaign_name  TEXT,
		currency       TEXT,
		status         TEXT        NOT NULL,
		objective      TEXT,
		impressions    BIGINT      NOT NULL DEFAULT 0,
		clicks         BIGINT      NOT NULL DEFAULT 0,
		spend          NUMERIC(14,2) NOT NULL DEFAULT 0,
		purchase_roas  DOUBLE PRECISION,
		purchase_value DOUBLE PRECISION,
		actions        JSONB       NOT NULL DEFAULT '[]',
		run_id         TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (account_id, date, hour, ad_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hourly_ad_insights_campaign ON hourly_ad_insights (campaign_id, date)`,
}

// Up aplica o schema na ordem declarada
func Up(ctx context.Context, q postgres.Queryer) error {
	startTime := time.Now()

	for i, stmt := range statements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d failed: %w", i+1, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"steps":    len(statements),
		"duration": time.Since(startTime).String(),
	}).Info("Schema atualizado")

	return nil
}
