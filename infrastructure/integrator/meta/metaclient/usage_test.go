package metaclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

func TestUsageResolver_WaitFor(t *testing.T) {
	resolver := NewUsageResolver(DefaultRateLimitWait)

	tests := []struct {
		name     string
		header   string
		expected time.Duration
	}{
		{
			name:     "estimated time in minutes",
			header:   `{"123":[{"estimated_time_to_regain_access":10}]}`,
			expected: 10 * time.Minute,
		},
		{
			name:     "first key in document order wins",
			header:   `{"999":[{"type":"ads_management","estimated_time_to_regain_access":3}],"111":[{"estimated_time_to_regain_access":20}]}`,
			expected: 3 * time.Minute,
		},
		{
			name:     "only first entry is read",
			header:   `{"123":[{"type":"ads_insights","call_count":12},{"estimated_time_to_regain_access":7}]}`,
			expected: DefaultRateLimitWait,
		},
		{
			name:     "absent header",
			header:   "",
			expected: DefaultRateLimitWait,
		},
		{
			name:     "malformed json",
			header:   `{"123":[{"estimated_time_to_regain_access":`,
			expected: DefaultRateLimitWait,
		},
		{
			name:     "not an object",
			header:   `[1,2,3]`,
			expected: DefaultRateLimitWait,
		},
		{
			name:     "empty entries",
			header:   `{"123":[]}`,
			expected: DefaultRateLimitWait,
		},
		{
			name:     "zero minutes uses default",
			header:   `{"123":[{"estimated_time_to_regain_access":0}]}`,
			expected: DefaultRateLimitWait,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set(metadomain.HeaderBusinessUseCaseUsage, tt.header)
			}

			assert.Equal(t, tt.expected, resolver.WaitFor(header))
		})
	}
}

func TestUsageResolver_DefaultIsConfigurable(t *testing.T) {
	assert.Equal(t, time.Minute, NewUsageResolver(time.Minute).WaitFor(http.Header{}))
	assert.Equal(t, DefaultRateLimitWait, NewUsageResolver(0).WaitFor(http.Header{}))
}

func TestUsageResolver_LogThrottleNeverPanics(t *testing.T) {
	resolver := NewUsageResolver(DefaultRateLimitWait)

	for _, raw := range []string{
		"",
		"not json",
		`{"app_id_util_pct":12.5,"acc_id_util_pct":80}`,
		`{"app_id_util_pct":"x"}`,
	} {
		header := http.Header{}
		if raw != "" {
			header.Set(metadomain.HeaderAdsInsightsThrottle, raw)
		}
		assert.NotPanics(t, func() { resolver.LogThrottle(header) })
	}
}
