package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
	"github.com/vfg2006/meta-hourly-insights/internal/usecases/authenticating"
)

func newTokenCommand(cfg *config.Config) *cobra.Command {
	var (
		operator string
		scopes   []string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token da API de operação assinado com AUTH_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := authenticating.NewService(cfg).IssueToken(operator, scopes, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "nome de quem vai usar o token")
	cmd.Flags().StringSliceVar(&scopes, "scope", []string{domain.ScopeSyncRead}, "escopos concedidos (sync:read, sync:run)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "validade do token")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}
