package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
)

func newMigrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas do destino PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := pgconn(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			return nil
		},
	}
}
