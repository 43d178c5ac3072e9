package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
)

func newVerifyCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Valida o token de acesso do Meta com GET /me",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Database.Enabled = false

			a, err := newApp(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			me, err := a.fetcher.VerifyToken(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "token válido: %s (%s)\n", me.Name, me.ID)
			return nil
		},
	}
}
