package metaclient

import (
	"context"
	"net/http"
	"time"

	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	RunHourlyReport(ctx context.Context, accountID, date string) ([]metadomain.InsightRow, error)
	GetAdStatuses(ctx context.Context, adIDs []string) (StatusMap, error)
	Me(ctx context.Context) (*metadomain.Me, error)
}

type MetaClient struct {
	Cfg      *config.Config
	executor *Executor
	reports  *ReportWorkflow
	statuses *AdStatusEnricher
}

type clientOptions struct {
	httpClient Doer
	clock      Clock
	jitter     func() time.Duration
}

type Option func(*clientOptions)

// WithHTTPClient troca o cliente HTTP (útil para testes com httptest)
func WithHTTPClient(httpClient Doer) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithClientClock troca o relógio usado por retries e polling
func WithClientClock(clock Clock) Option {
	return func(o *clientOptions) {
		o.clock = clock
	}
}

// WithClientJitter troca o gerador de jitter do backoff
func WithClientJitter(jitter func() time.Duration) Option {
	return func(o *clientOptions) {
		o.jitter = jitter
	}
}

func NewClient(cfg *config.Config, opts ...Option) *MetaClient {
	o := &clientOptions{
		httpClient: &http.Client{Timeout: cfg.Fetch.RequestTimeout},
		clock:      RealClock(),
	}
	for _, opt := range opts {
		opt(o)
	}

	usage := NewUsageResolver(cfg.Fetch.RateLimitWait)

	classifierCfg := DefaultClassifierConfig()
	if len(cfg.Fetch.AuthErrorCodes) > 0 {
		classifierCfg.AuthCodes = cfg.Fetch.AuthErrorCodes
	}
	if len(cfg.Fetch.RateLimitedCodes) > 0 {
		classifierCfg.RateLimitCodes = cfg.Fetch.RateLimitedCodes
	}

	executorOpts := []ExecutorOption{WithClock(o.clock)}
	if o.jitter != nil {
		executorOpts = append(executorOpts, WithJitter(o.jitter))
	}

	executor := NewExecutor(
		o.httpClient,
		NewClassifier(classifierCfg, usage),
		usage,
		ExecutorConfig{MaxRetries: cfg.Fetch.MaxRetries, BackoffCap: cfg.Fetch.BackoffCap},
		executorOpts...,
	)

	return &MetaClient{
		Cfg:      cfg,
		executor: executor,
		reports: NewReportWorkflow(executor, o.clock, ReportConfig{
			BaseURL:      cfg.Meta.URL,
			AccessToken:  cfg.Meta.AccessToken,
			PollInterval: cfg.Fetch.PollInterval,
			JobTimeout:   cfg.Fetch.JobTimeout,
			PageSize:     cfg.Fetch.PageSize,
		}),
		statuses: NewAdStatusEnricher(executor, cfg.Meta.URL, cfg.Meta.AccessToken, cfg.Fetch.StatusBatchSize),
	}
}

// RunHourlyReport submete, acompanha e pagina o relatório por hora de um dia
func (c *MetaClient) RunHourlyReport(ctx context.Context, accountID, date string) ([]metadomain.InsightRow, error) {
	return c.reports.Run(ctx, accountID, date)
}

// GetAdStatuses resolve effective_status dos anúncios em lotes
func (c *MetaClient) GetAdStatuses(ctx context.Context, adIDs []string) (StatusMap, error) {
	return c.statuses.Resolve(ctx, adIDs)
}
