package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/database/postgres"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/migration"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/repository"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/internal/usecases/insighting"
	"github.com/vfg2006/meta-hourly-insights/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("Comando finalizado com erro")
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "fetcher",
		Short:         "Coleta insights por hora de anúncios do Meta",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.NewConfig()
			if err != nil {
				return err
			}
			log.Configure(loaded.App.LogLevel)
			logrus.Debugf("Nível de log configurado para: %s", logrus.GetLevel())

			*cfg = *loaded
			return nil
		},
	}

	cfg = &config.Config{}

	root.AddCommand(
		newFetchCommand(cfg),
		newServeCommand(cfg),
		newVerifyCommand(cfg),
		newMigrateCommand(cfg),
		newTokenCommand(cfg),
	)

	return root
}

// app reúne as dependências montadas a partir da configuração
type app struct {
	cfg     *config.Config
	conn    *postgres.Connection
	fetcher *insighting.Service
}

// newApp monta o pipeline. Com withFiles=false o envelope não é gravado em disco.
func newApp(ctx context.Context, cfg *config.Config, withFiles bool) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	var reportFiles repository.ReportFileRepository
	if withFiles {
		reportFiles = repository.NewReportFileRepository(cfg.Fetch.OutputDir)
	}

	a := &app{cfg: cfg}

	var hourlyRepo repository.HourlyAdInsightRepository
	if cfg.Database.Enabled {
		conn, err := pgconn(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.conn = conn
		hourlyRepo = repository.NewHourlyAdInsightRepository(conn)
	}

	a.fetcher = insighting.NewService(cfg, metaIntegrator, reportFiles, hourlyRepo)

	return a, nil
}

func (a *app) Close() {
	if a.conn != nil {
		a.conn.Close()
	}
}

// pgconn cria uma conexão com o banco de dados e garante o schema
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	if err := migration.Up(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
