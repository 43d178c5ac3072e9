package metaclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metaRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meta_requests_total",
		Help: "Total number of Graph API attempts by outcome",
	}, []string{"outcome"}) // "ok" or the error kind

	metaRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meta_retries_total",
		Help: "Total number of retries by error kind",
	}, []string{"error_kind"})

	metaRetryBackoffSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "meta_retry_backoff_seconds",
		Help:    "Wait before each retry by error kind",
		Buckets: []float64{1, 2, 5, 10, 30, 60, 300, 900},
	}, []string{"error_kind"})

	metaRetryExhaustedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meta_retry_exhausted_total",
		Help: "Total number of requests that exhausted all attempts by last error kind",
	}, []string{"error_kind"})

	metaReportPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meta_report_polls_total",
		Help: "Total number of async report polls by async_status",
	}, []string{"async_status"})

	metaStatusBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meta_status_batches_total",
		Help: "Total number of effective_status lookup batches by outcome",
	}, []string{"outcome"}) // "ok", "degraded"

	throttleUtilization = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "meta_insights_throttle_util_pct",
		Help: "Last reported X-FB-Ads-Insights-Throttle utilization",
	}, []string{"scope"}) // "app", "account"
)
