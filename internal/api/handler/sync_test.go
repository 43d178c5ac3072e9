package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meta-hourly-insights/internal/api/handler/mocks"
	"github.com/vfg2006/meta-hourly-insights/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestRunSync(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name         string
		started      bool
		expectedCode int
	}{
		{name: "starts a sync", started: true, expectedCode: http.StatusAccepted},
		{name: "sync already running", started: false, expectedCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockSyncService(ctrl)
			service.EXPECT().
				TriggerManualSync(gomock.Any()).
				DoAndReturn(func(ctx context.Context) bool {
					assert.Nil(t, ctx.Done(), "sync context must outlive the request")
					return tt.started
				})

			rec := httptest.NewRecorder()
			RunSync(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sync/run", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestGetSyncStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockSyncService(ctrl)
	service.EXPECT().GetStatus().Return(map[string]any{"sync_running": true})

	rec := httptest.NewRecorder()
	GetSyncStatus(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sync_running":true}`, rec.Body.String())
}

func TestSyncHandlers_WithoutService(t *testing.T) {
	rec := httptest.NewRecorder()
	RunSync(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sync/run", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	GetSyncStatus(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
