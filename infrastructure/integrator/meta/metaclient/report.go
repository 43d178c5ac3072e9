package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultJobTimeout   = 5 * time.Minute
	DefaultPageSize     = 500
)

// ReportConfig configura o fluxo de relatório assíncrono
type ReportConfig struct {
	BaseURL      string
	AccessToken  string
	PollInterval time.Duration
	JobTimeout   time.Duration
	PageSize     int
}

// ReportWorkflow implementa submit → poll → fetch de um relatório de insights por hora
type ReportWorkflow struct {
	requester Requester
	clock     Clock
	cfg       ReportConfig
}

func NewReportWorkflow(requester Requester, clock Clock, cfg ReportConfig) *ReportWorkflow {
	if clock == nil {
		clock = RealClock()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = DefaultJobTimeout
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	return &ReportWorkflow{requester: requester, clock: clock, cfg: cfg}
}

// Run executa o fluxo completo para um dia de uma conta (act_<id>)
func (w *ReportWorkflow) Run(ctx context.Context, accountID, date string) ([]metadomain.InsightRow, error) {
	submittedAt := w.clock.Now()

	job, err := w.Submit(ctx, accountID, date)
	if err != nil {
		return nil, err
	}

	if err := w.Poll(ctx, job, submittedAt); err != nil {
		return nil, err
	}

	return w.Fetch(ctx, job)
}

// Submit cria o relatório. A resposta precisa trazer report_run_id.
func (w *ReportWorkflow) Submit(ctx context.Context, accountID, date string) (*metadomain.ReportJob, error) {
	params := url.Values{}
	params.Set("access_token", w.cfg.AccessToken)
	params.Set("level", "ad")
	params.Set("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", date, date))
	params.Set("breakdowns", metadomain.HourlyBreakdown)
	params.Set("fields", strings.Join(metadomain.InsightFields, ","))
	params.Set("limit", strconv.Itoa(w.cfg.PageSize))

	body, err := w.requester.Execute(ctx, Post(fmt.Sprintf("%s/%s/insights", w.cfg.BaseURL, accountID), params))
	if err != nil {
		return nil, fmt.Errorf("erro ao submeter relatório de %s: %w", accountID, err)
	}

	var resp metadomain.ReportRunResponse
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &resp); err != nil {
		return nil, metadomain.NewAPIError(fmt.Sprintf("invalid report submission response: %v", err))
	}
	if resp.ReportRunID == "" {
		return nil, metadomain.NewAPIError("report submission response has no report_run_id")
	}

	job := &metadomain.ReportJob{
		ReportID: resp.ReportRunID,
		Status:   metadomain.JobStatusCreated,
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    accountID,
		"date":          date,
		"report_run_id": job.ReportID,
	}).Info("Relatório submetido")

	job.Status = metadomain.JobStatusPolling

	return job, nil
}

// Poll consulta o job a cada PollInterval até um estado terminal.
// O prazo conta desde submittedAt; esperas por rate limit não reiniciam o relógio.
func (w *ReportWorkflow) Poll(ctx context.Context, job *metadomain.ReportJob, submittedAt time.Time) error {
	params := url.Values{}
	params.Set("fields", "async_status,async_percent_completion")
	params.Set("access_token", w.cfg.AccessToken)
	req := Get(fmt.Sprintf("%s/%s", w.cfg.BaseURL, job.ReportID), params)

	for polls := 1; ; polls++ {
		body, err := w.requester.Execute(ctx, req)
		if err != nil {
			return fmt.Errorf("erro ao consultar relatório %s: %w", job.ReportID, err)
		}

		var status metadomain.ReportStatusResponse
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &status); err != nil {
			return metadomain.NewAPIError(fmt.Sprintf("invalid report status response: %v", err))
		}

		job.AsyncStatus = status.AsyncStatus
		job.PercentComplete = status.AsyncPercentCompletion
		metaReportPollsTotal.WithLabelValues(status.AsyncStatus).Inc()

		logrus.WithFields(logrus.Fields{
			"report_run_id": job.ReportID,
			"poll":          polls,
			"async_status":  job.AsyncStatus,
			"percent":       job.PercentComplete,
		}).Debug("Status do relatório")

		switch status.AsyncStatus {
		case metadomain.AsyncStatusCompleted:
			job.Status = metadomain.JobStatusCompleted
			return nil
		case metadomain.AsyncStatusFailed:
			job.Status = metadomain.JobStatusFailed
			return &metadomain.JobError{Job: *job, Err: metadomain.NewAPIError("report job failed")}
		case metadomain.AsyncStatusSkipped:
			job.Status = metadomain.JobStatusSkipped
			return &metadomain.JobError{Job: *job, Err: metadomain.NewAPIError("report job skipped")}
		}

		if w.clock.Now().Sub(submittedAt) > w.cfg.JobTimeout {
			job.Status = metadomain.JobStatusTimedOut
			logrus.WithFields(logrus.Fields{
				"report_run_id": job.ReportID,
				"async_status":  job.AsyncStatus,
				"percent":       job.PercentComplete,
			}).Error("Relatório excedeu o tempo limite")
			return &metadomain.JobError{Job: *job, Err: metadomain.ErrJobTimeout}
		}

		if err := w.clock.Sleep(ctx, w.cfg.PollInterval); err != nil {
			return fmt.Errorf("acompanhamento do relatório interrompido: %w", err)
		}
	}
}

// Fetch pagina /<report_run_id>/insights de um job concluído
func (w *ReportWorkflow) Fetch(ctx context.Context, job *metadomain.ReportJob) ([]metadomain.InsightRow, error) {
	if job.Status != metadomain.JobStatusCompleted {
		return nil, fmt.Errorf("relatório %s está %s, não concluído", job.ReportID, job.Status)
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(w.cfg.PageSize))
	params.Set("access_token", w.cfg.AccessToken)

	rows, err := Walk(ctx, w.requester, Get(fmt.Sprintf("%s/%s/insights", w.cfg.BaseURL, job.ReportID), params), InsightsPageExtractor)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório %s: %w", job.ReportID, err)
	}

	logrus.WithFields(logrus.Fields{
		"report_run_id": job.ReportID,
		"rows":          len(rows),
	}).Info("Relatório recebido")

	return rows, nil
}
