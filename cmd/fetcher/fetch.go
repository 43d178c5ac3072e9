package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/pkg/utils"
)

func newFetchCommand(cfg *config.Config) *cobra.Command {
	var (
		accountID string
		date      string
		outputDir string
		stdout    bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Coleta um dia de insights por hora de uma conta",
		Example: `  fetcher fetch --account 123456 --date 2026-10-17
  fetcher fetch --account act_123456 --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = yesterday()
			}
			if outputDir != "" {
				cfg.Fetch.OutputDir = outputDir
			}

			a, err := newApp(cmd.Context(), cfg, !stdout)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.fetcher.FetchHourlyInsights(cmd.Context(), accountID, date)
			if err != nil {
				return err
			}

			summary := result.Envelope.Metadata.Summary
			logrus.WithFields(logrus.Fields{
				"run_id":            result.RunID,
				"account_id":        result.Envelope.Metadata.AccountID,
				"date":              date,
				"records":           result.Envelope.Metadata.TotalRecords,
				"total_impressions": summary.TotalImpressions,
				"total_clicks":      summary.TotalClicks,
				"total_spend":       summary.TotalSpend,
				"unique_ads":        summary.UniqueAds,
				"path":              result.Path,
				"stored":            result.Stored,
			}).Info("Resumo da coleta")

			if stdout {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(result.Envelope))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "conta de anúncios (123 ou act_123)")
	cmd.Flags().StringVar(&date, "date", "", "dia no formato YYYY-MM-DD (padrão: ontem, UTC)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "diretório do arquivo de saída (padrão: FETCH_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "imprime o envelope em vez de gravar arquivo")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func yesterday() string {
	return utils.DaysBefore(time.Now(), 1)
}
