package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

const (
	DefaultMaxRetries = 5
	DefaultBackoffCap = 60 * time.Second
)

// Doer é satisfeito por *http.Client
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Requester executa uma requisição lógica e devolve o corpo da resposta de sucesso
type Requester interface {
	Execute(ctx context.Context, d RequestDescriptor) ([]byte, error)
}

// ExecutorConfig controla a política de novas tentativas
type ExecutorConfig struct {
	MaxRetries int
	BackoffCap time.Duration
}

// Executor aplica classificação de erros e novas tentativas a cada requisição
type Executor struct {
	httpClient Doer
	classifier *Classifier
	usage      *UsageResolver
	clock      Clock
	jitter     func() time.Duration
	maxRetries int
	backoffCap time.Duration
}

type ExecutorOption func(*Executor)

// WithClock substitui o relógio usado nas esperas
func WithClock(clock Clock) ExecutorOption {
	return func(e *Executor) {
		e.clock = clock
	}
}

// WithJitter substitui o gerador de jitter somado ao backoff exponencial
func WithJitter(jitter func() time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.jitter = jitter
	}
}

func NewExecutor(httpClient Doer, classifier *Classifier, usage *UsageResolver, cfg ExecutorConfig, opts ...ExecutorOption) *Executor {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.BackoffCap <= 0 {
		cfg.BackoffCap = DefaultBackoffCap
	}
	if usage == nil {
		usage = NewUsageResolver(DefaultRateLimitWait)
	}
	if classifier == nil {
		classifier = NewClassifier(DefaultClassifierConfig(), usage)
	}

	e := &Executor{
		httpClient: httpClient,
		classifier: classifier,
		usage:      usage,
		clock:      RealClock(),
		jitter:     randomJitter,
		maxRetries: cfg.MaxRetries,
		backoffCap: cfg.BackoffCap,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Execute envia a requisição até MaxRetries vezes. Erros auth, api e http falham na hora;
// rate_limit espera o tempo indicado pela API e os transitórios usam backoff exponencial.
func (e *Executor) Execute(ctx context.Context, d RequestDescriptor) ([]byte, error) {
	var last *metadomain.APIError

	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		body, apiErr, err := e.attempt(ctx, d)
		if err != nil {
			return nil, err
		}
		if apiErr == nil {
			metaRequestsTotal.WithLabelValues("ok").Inc()
			if attempt > 1 {
				logrus.WithFields(logrus.Fields{
					"url":     d.redactedURL(),
					"attempt": attempt,
				}).Info("Requisição concluída após novas tentativas")
			}
			return body, nil
		}

		metaRequestsTotal.WithLabelValues(string(apiErr.Kind)).Inc()
		last = apiErr

		if !apiErr.Kind.Retryable() {
			return nil, apiErr
		}

		if attempt >= e.maxRetries {
			break
		}

		wait := e.waitFor(apiErr, attempt)
		metaRetriesTotal.WithLabelValues(string(apiErr.Kind)).Inc()
		metaRetryBackoffSeconds.WithLabelValues(string(apiErr.Kind)).Observe(wait.Seconds())

		logrus.WithFields(logrus.Fields{
			"url":        d.redactedURL(),
			"attempt":    attempt,
			"error_kind": apiErr.Kind,
			"wait":       wait.String(),
		}).WithError(apiErr).Warn("Tentando a requisição novamente")

		if err := e.clock.Sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("espera entre tentativas interrompida: %w", err)
		}
	}

	metaRetryExhaustedTotal.WithLabelValues(string(last.Kind)).Inc()
	logrus.WithFields(logrus.Fields{
		"url":          d.redactedURL(),
		"max_attempts": e.maxRetries,
		"error_kind":   last.Kind,
	}).Error("Tentativas esgotadas")

	return nil, &metadomain.RetryExhaustedError{Attempts: e.maxRetries, Last: last}
}

// attempt devolve (corpo, nil, nil) em sucesso, (nil, apiErr, nil) para falhas
// classificadas e (nil, nil, err) para o que interrompe o loop sem classificação
func (e *Executor) attempt(ctx context.Context, d RequestDescriptor) ([]byte, *metadomain.APIError, error) {
	req, err := d.newRequest(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		return e.transportFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		return e.transportFailure(err)
	}

	e.usage.LogThrottle(resp.Header)

	if apiErr := e.classifier.Classify(resp.StatusCode, resp.Header, body); apiErr != nil {
		return nil, apiErr, nil
	}

	return body, nil, nil
}

func (e *Executor) transportFailure(err error) ([]byte, *metadomain.APIError, error) {
	classified := e.classifier.ClassifyTransportError(err)

	var apiErr *metadomain.APIError
	if errors.As(classified, &apiErr) {
		return nil, apiErr, nil
	}
	return nil, nil, classified
}

func (e *Executor) waitFor(apiErr *metadomain.APIError, attempt int) time.Duration {
	if apiErr.Kind == metadomain.ErrorKindRateLimit {
		return apiErr.Wait
	}
	return e.backoff(attempt) + e.jitter()
}

// backoff retorna min(2^attempt s, cap), sem jitter
func (e *Executor) backoff(attempt int) time.Duration {
	if attempt >= 30 {
		return e.backoffCap
	}
	d := time.Duration(1<<attempt) * time.Second
	if d > e.backoffCap {
		return e.backoffCap
	}
	return d
}

func randomJitter() time.Duration {
	return time.Duration(rand.Int63n(int64(time.Second)))
}
