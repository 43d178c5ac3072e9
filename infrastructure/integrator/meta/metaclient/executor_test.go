package metaclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

func TestExecutor_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer srv.Close()

	clock := newFakeClock()
	body, err := newTestExecutor(srv, clock, 5).Execute(context.Background(), Get(srv.URL+"/me", nil))

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(body))
	assert.Empty(t, clock.Sleeps())
}

func TestExecutor_RetryCeiling(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	clock := newFakeClock()
	_, err := newTestExecutor(srv, clock, 5).Execute(context.Background(), Get(srv.URL, nil))

	var exhausted *metadomain.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 5, exhausted.Attempts)
	assert.Equal(t, metadomain.ErrorKindServerTransient, exhausted.Last.Kind)
	assert.Equal(t, metadomain.ErrorKindServerTransient, metadomain.KindOf(err))
	assert.Equal(t, int32(5), calls.Load())

	// sem espera depois da última tentativa
	sleeps := clock.Sleeps()
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}, sleeps)
	for i := 1; i < len(sleeps); i++ {
		assert.GreaterOrEqual(t, sleeps[i], sleeps[i-1])
	}
}

func TestExecutor_BackoffIsCapped(t *testing.T) {
	executor := NewExecutor(http.DefaultClient, nil, nil, ExecutorConfig{MaxRetries: 10, BackoffCap: 10 * time.Second})

	assert.Equal(t, 2*time.Second, executor.backoff(1))
	assert.Equal(t, 8*time.Second, executor.backoff(3))
	assert.Equal(t, 10*time.Second, executor.backoff(4))
	assert.Equal(t, 10*time.Second, executor.backoff(40))
}

func TestExecutor_JitterIsAdded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	clock := newFakeClock()
	executor := NewExecutor(srv.Client(), nil, nil, ExecutorConfig{MaxRetries: 2},
		WithClock(clock),
		WithJitter(func() time.Duration { return 300 * time.Millisecond }),
	)

	_, err := executor.Execute(context.Background(), Get(srv.URL, nil))

	require.Error(t, err)
	assert.Equal(t, []time.Duration{2*time.Second + 300*time.Millisecond}, clock.Sleeps())
}

func TestExecutor_DefaultJitterBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		j := randomJitter()
		assert.GreaterOrEqual(t, j, time.Duration(0))
		assert.Less(t, j, time.Second)
	}
}

func TestExecutor_FatalKindsFailImmediately(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected metadomain.ErrorKind
	}{
		{name: "auth", status: 400, body: `{"error":{"code":190,"error_subcode":463,"message":"expired"}}`, expected: metadomain.ErrorKindAuth},
		{name: "auth with 500", status: 500, body: `{"error":{"code":190,"message":"invalid"}}`, expected: metadomain.ErrorKindAuth},
		{name: "api", status: 400, body: `{"error":{"code":100,"message":"bad field"}}`, expected: metadomain.ErrorKindAPI},
		{name: "api with 500", status: 500, body: `{"error":{"code":1,"message":"reduce the amount of data"}}`, expected: metadomain.ErrorKindAPI},
		{name: "http", status: 404, body: `not found`, expected: metadomain.ErrorKindHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			clock := newFakeClock()
			_, err := newTestExecutor(srv, clock, 5).Execute(context.Background(), Get(srv.URL, nil))

			var apiErr *metadomain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.expected, apiErr.Kind)

			var exhausted *metadomain.RetryExhaustedError
			assert.False(t, errors.As(err, &exhausted))
			assert.Equal(t, int32(1), calls.Load())
			assert.Empty(t, clock.Sleeps())
		})
	}
}

func TestExecutor_RateLimitWaitsResolvedTime(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set(metadomain.HeaderBusinessUseCaseUsage, `{"123":[{"estimated_time_to_regain_access":10}]}`)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":80000,"message":"too many calls"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	clock := newFakeClock()
	body, err := newTestExecutor(srv, clock, 5).Execute(context.Background(), Get(srv.URL, nil))

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, []time.Duration{10 * time.Minute}, clock.Sleeps())
	assert.Equal(t, int32(2), calls.Load())
}

func TestExecutor_RateLimitConsumesAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":17,"message":"User request limit reached"}}`))
	}))
	defer srv.Close()

	clock := newFakeClock()
	_, err := newTestExecutor(srv, clock, 3).Execute(context.Background(), Get(srv.URL, nil))

	var exhausted *metadomain.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, metadomain.ErrorKindRateLimit, exhausted.Last.Kind)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{DefaultRateLimitWait, DefaultRateLimitWait}, clock.Sleeps())
}

func TestExecutor_RecoversAfterTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	clock := newFakeClock()
	_, err := newTestExecutor(srv, clock, 5).Execute(context.Background(), Get(srv.URL, nil))

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, clock.Sleeps())
}

func TestExecutor_NetworkErrorsAreRetried(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	clock := newFakeClock()
	executor := NewExecutor(http.DefaultClient, nil, nil, ExecutorConfig{MaxRetries: 3}, WithClock(clock), WithJitter(noJitter))

	_, err := executor.Execute(context.Background(), Get(url, nil))

	var exhausted *metadomain.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, metadomain.ErrorKindNetworkTransient, exhausted.Last.Kind)
	assert.Len(t, clock.Sleeps(), 2)
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestExecutor_ClassifiedTransportErrorIsNotReclassified(t *testing.T) {
	var calls int
	authErr := &metadomain.APIError{Kind: metadomain.ErrorKindAuth, Code: 190, Message: "expired"}
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, authErr
	})

	clock := newFakeClock()
	executor := NewExecutor(doer, nil, nil, ExecutorConfig{MaxRetries: 5}, WithClock(clock), WithJitter(noJitter))

	_, err := executor.Execute(context.Background(), Get("http://graph.test/me", nil))

	assert.Same(t, authErr, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, clock.Sleeps())
}

func TestExecutor_ContextCancellationStopsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	executor := NewExecutor(srv.Client(), nil, nil, ExecutorConfig{MaxRetries: 5},
		WithClock(cancelOnSleep{cancel: cancel}),
		WithJitter(noJitter),
	)

	_, err := executor.Execute(ctx, Get(srv.URL, nil))

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int32(1), calls.Load())
}

// cancelOnSleep cancela o contexto na primeira espera
type cancelOnSleep struct {
	cancel context.CancelFunc
}

func (cancelOnSleep) Now() time.Time {
	return time.Now()
}

func (c cancelOnSleep) Sleep(ctx context.Context, _ time.Duration) error {
	c.cancel()
	return ctx.Err()
}

func TestRequestDescriptor_RedactsAccessToken(t *testing.T) {
	d := Get("https://graph.facebook.com/v22.0/me", map[string][]string{"access_token": {"secret"}, "fields": {"id"}})

	assert.NotContains(t, d.redactedURL(), "secret")
	assert.Contains(t, d.redactedURL(), "fields=id")
}

func TestExecutor_LogsRetriesAndExhaustion(t *testing.T) {
	hook := logtest.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestExecutor(srv, newFakeClock(), 2).Execute(context.Background(), Get(srv.URL, nil))
	require.Error(t, err)

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "Tentando a requisição novamente")
	assert.Equal(t, "Tentativas esgotadas", hook.LastEntry().Message)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
