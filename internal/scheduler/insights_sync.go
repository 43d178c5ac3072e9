package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/internal/usecases/insighting"
	"github.com/vfg2006/meta-hourly-insights/pkg/utils"
)

// InsightSyncConfig representa a configuração do agendador de insights por hora
type InsightSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// SyncResult é o resultado da coleta de uma conta em um dia
type SyncResult struct {
	AccountID string    `json:"account_id"`
	Date      string    `json:"date"`
	RunID     string    `json:"run_id,omitempty"`
	Records   int       `json:"records"`
	Path      string    `json:"path,omitempty"`
	Stored    bool      `json:"stored"`
	Error     string    `json:"error,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Finished  time.Time `json:"finished_at"`
}

// InsightSyncService agenda a coleta diária das contas configuradas
type InsightSyncService struct {
	scheduler  *gocron.Scheduler
	config     InsightSyncConfig
	accountIDs []string
	fetcher    insighting.Fetcher
	now        func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         []SyncResult
}

// NewInsightSyncService cria o agendador a partir da configuração global
func NewInsightSyncService(fetcher insighting.Fetcher, appConfig *config.Config) *InsightSyncService {
	syncConfig := InsightSyncConfig{
		CronSchedule: appConfig.InsightSync.CronSchedule,
		LookbackDays: appConfig.InsightSync.LookbackDays,
		SyncEnabled:  appConfig.InsightSync.Enabled,
	}
	if syncConfig.LookbackDays < 1 {
		syncConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
		"accounts":      len(appConfig.Meta.AccountIDs),
	}).Info("Configuração do agendador de insights carregada")

	return &InsightSyncService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     syncConfig,
		accountIDs: appConfig.Meta.AccountIDs,
		fetcher:    fetcher,
		now:        time.Now,
	}
}

// Start agenda a sincronização e para o agendador quando ctx for cancelado
func (s *InsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.tryStart() {
			logrus.Info("Sincronização de insights já em andamento, ignorando")
			return
		}
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia uma sincronização em background. Retorna false se
// já houver uma em andamento.
func (s *InsightSyncService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryStart() {
		logrus.Info("Sincronização de insights já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de insights")
	go s.runSync(ctx)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *InsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	results := make([]SyncResult, len(s.lastResults))
	copy(results, s.lastResults)

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"accounts":               s.accountIDs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           results,
	}
}

func (s *InsightSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()

	return true
}

// runSync coleta cada conta em cada dia, do mais antigo para o mais recente.
// Uma falha afeta só aquela conta e dia.
func (s *InsightSyncService) runSync(ctx context.Context) []SyncResult {
	startTime := s.now()
	dates := s.getDatesToProcess()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if len(s.accountIDs) == 0 {
		logrus.Info("Nenhuma conta configurada para sincronização de insights")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"accounts":   len(s.accountIDs),
		"start_date": dates[0],
		"end_date":   dates[len(dates)-1],
	}).Info("Iniciando sincronização de insights")

	results := make([]SyncResult, 0, len(s.accountIDs)*len(dates))

loop:
	for _, accountID := range s.accountIDs {
		for _, date := range dates {
			if ctx.Err() != nil {
				logrus.WithError(ctx.Err()).Warn("Sincronização de insights interrompida")
				break loop
			}
			results = append(results, s.processAccountDate(ctx, accountID, date))
		}
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": s.now().Sub(startTime).String(),
		"runs":     len(results),
		"failed":   failed,
	}).Info("Sincronização de insights concluída")

	s.syncMutex.Lock()
	s.lastResults = results
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	return results
}

func (s *InsightSyncService) processAccountDate(ctx context.Context, accountID, date string) SyncResult {
	result := SyncResult{AccountID: accountID, Date: date}

	fetched, err := s.fetcher.FetchHourlyInsights(ctx, accountID, date)
	result.Finished = s.now()
	if err != nil {
		result.Error = err.Error()
		result.ErrorKind = string(metadomain.KindOf(err))

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       date,
			"error_kind": result.ErrorKind,
		}).WithError(err).Error("Erro ao sincronizar insights da conta")
		return result
	}

	result.RunID = fetched.RunID
	result.Records = fetched.Envelope.Metadata.TotalRecords
	result.Path = fetched.Path
	result.Stored = fetched.Stored

	return result
}

// getDatesToProcess devolve os últimos LookbackDays dias antes de hoje, do mais antigo ao mais recente
func (s *InsightSyncService) getDatesToProcess() []string {
	now := s.now()
	dates := make([]string, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[s.config.LookbackDays-1-i] = utils.DaysBefore(now, i+1)
	}
	return dates
}
