package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-hourly-insights/internal/api"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/internal/scheduler"
	"github.com/vfg2006/meta-hourly-insights/internal/usecases/authenticating"
)

func newServeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia o agendador diário e a API de operação",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg, true)
			if err != nil {
				return err
			}
			defer a.Close()

			syncService := scheduler.NewInsightSyncService(a.fetcher, cfg)
			if err := syncService.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights")
			} else {
				logrus.Info("Agendador de sincronização de insights iniciado com sucesso")
			}

			server, err := api.New(cfg, a.fetcher, syncService, authenticating.NewService(cfg))
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}
