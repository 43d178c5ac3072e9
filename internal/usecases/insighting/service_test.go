package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
	repomocks "github.com/vfg2006/meta-hourly-insights/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
	"github.com/vfg2006/meta-hourly-insights/internal/usecases/insighting/mocks"
	"github.com/vfg2006/meta-hourly-insights/pkg/log"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newEnvelope() *domain.OutputEnvelope {
	return domain.NewOutputEnvelope("act_123", "2026-10-17", fixedNow, []domain.NormalizedRecord{
		{AdID: "a1", CampaignID: "c1", AdSetID: "s1", Impressions: 100, Clicks: 3, Spend: 10.5, Hour: "00:00:00 - 00:59:59"},
	})
}

func newTestService(cfg *config.Config, meta MetaInsighter, files *repomocks.MockReportFileRepository, hourly *repomocks.MockHourlyAdInsightRepository) *Service {
	var s *Service
	switch {
	case files != nil && hourly != nil:
		s = NewService(cfg, meta, files, hourly)
	case files != nil:
		s = NewService(cfg, meta, files, nil)
	case hourly != nil:
		s = NewService(cfg, meta, nil, hourly)
	default:
		s = NewService(cfg, meta, nil, nil)
	}
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestService_FetchHourlyInsights(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name      string
		accountID string
		date      string
		withFiles bool
		withDB    bool
		setup     func(meta *mocks.MockMetaInsighter, files *repomocks.MockReportFileRepository, hourly *repomocks.MockHourlyAdInsightRepository)
		validate  func(t *testing.T, result *FetchResult, err error)
	}{
		{
			name:      "writes file and stores rows",
			accountID: "123",
			date:      "2026-10-17",
			withFiles: true,
			withDB:    true,
			setup: func(meta *mocks.MockMetaInsighter, files *repomocks.MockReportFileRepository, hourly *repomocks.MockHourlyAdInsightRepository) {
				envelope := newEnvelope()
				gomock.InOrder(
					meta.EXPECT().GetHourlyAdInsights(gomock.Any(), "act_123", "2026-10-17").Return(envelope, nil),
					files.EXPECT().Save(gomock.Any(), envelope).Return("data/meta_123_2026-10-17.json", nil),
					hourly.EXPECT().ReplaceDay(gomock.Any(), gomock.Any(), envelope).Return(nil),
					hourly.EXPECT().CountByAccountAndDate(gomock.Any(), "act_123", "2026-10-17").Return(1, nil),
				)
			},
			validate: func(t *testing.T, result *FetchResult, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, result.RunID)
				assert.Equal(t, "data/meta_123_2026-10-17.json", result.Path)
				assert.True(t, result.Stored)
				assert.Equal(t, 1, result.Envelope.Metadata.TotalRecords)
			},
		},
		{
			name:      "no sinks configured only returns the envelope",
			accountID: "act_123",
			date:      "2026-10-17",
			setup: func(meta *mocks.MockMetaInsighter, _ *repomocks.MockReportFileRepository, _ *repomocks.MockHourlyAdInsightRepository) {
				meta.EXPECT().GetHourlyAdInsights(gomock.Any(), "act_123", "2026-10-17").Return(newEnvelope(), nil)
			},
			validate: func(t *testing.T, result *FetchResult, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.Path)
				assert.False(t, result.Stored)
			},
		},
		{
			name:      "today is accepted",
			accountID: "act_123",
			date:      "2026-10-18",
			setup: func(meta *mocks.MockMetaInsighter, _ *repomocks.MockReportFileRepository, _ *repomocks.MockHourlyAdInsightRepository) {
				meta.EXPECT().GetHourlyAdInsights(gomock.Any(), "act_123", "2026-10-18").Return(newEnvelope(), nil)
			},
			validate: func(t *testing.T, result *FetchResult, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:      "invalid account id",
			accountID: "act_abc",
			date:      "2026-10-17",
			setup:     func(*mocks.MockMetaInsighter, *repomocks.MockReportFileRepository, *repomocks.MockHourlyAdInsightRepository) {},
			validate: func(t *testing.T, result *FetchResult, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAccount)
				assert.Nil(t, result)
			},
		},
		{
			name:      "malformed date",
			accountID: "act_123",
			date:      "17/10/2026",
			setup:     func(*mocks.MockMetaInsighter, *repomocks.MockReportFileRepository, *repomocks.MockHourlyAdInsightRepository) {},
			validate: func(t *testing.T, result *FetchResult, err error) {
				assert.ErrorIs(t, err, ErrInvalidDate)
			},
		},
		{
			name:      "empty date",
			accountID: "act_123",
			date:      "",
			setup:     func(*mocks.MockMetaInsighter, *repomocks.MockReportFileRepository, *repomocks.MockHourlyAdInsightRepository) {},
			validate: func(t *testing.T, result *FetchResult, err error) {
				assert.ErrorIs(t, err, ErrInvalidDate)
			},
		},
		{
			name:      "future date",
			accountID: "act_123",
			date:      "2026-10-19",
			setup:     func(*mocks.MockMetaInsighter, *repomocks.MockReportFileRepository, *repomocks.MockHourlyAdInsightRepository) {},
			validate: func(t *testing.T, result *FetchResult, err error) {
				assert.ErrorIs(t, err, ErrInvalidDate)
			},
		},
		{
			name:      "meta failure keeps the error kind and writes nothing",
			accountID: "act_123",
			date:      "2026-10-17",
			withFiles: true,
			withDB:    true,
			setup: func(meta *mocks.MockMetaInsighter, _ *repomocks.MockReportFileRepository, _ *repomocks.MockHourlyAdInsightRepository) {
				meta.EXPECT().
					GetHourlyAdInsights(gomock.Any(), "act_123", "2026-10-17").
					Return(nil, &metadomain.APIError{Kind: metadomain.ErrorKindRateLimit, Code: 17})
			},
			validate: func(t *testing.T, result *FetchResult, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, metadomain.ErrorKindRateLimit, metadomain.KindOf(err))
			},
		},
		{
			name:      "file failure skips the database",
			accountID: "act_123",
			date:      "2026-10-17",
			withFiles: true,
			withDB:    true,
			setup: func(meta *mocks.MockMetaInsighter, files *repomocks.MockReportFileRepository, _ *repomocks.MockHourlyAdInsightRepository) {
				meta.EXPECT().GetHourlyAdInsights(gomock.Any(), gomock.Any(), gomock.Any()).Return(newEnvelope(), nil)
				files.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))
			},
			validate: func(t *testing.T, result *FetchResult, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "save report file")
				assert.Contains(t, err.Error(), "disk full")
			},
		},
		{
			name:      "database failure",
			accountID: "act_123",
			date:      "2026-10-17",
			withDB:    true,
			setup: func(meta *mocks.MockMetaInsighter, _ *repomocks.MockReportFileRepository, hourly *repomocks.MockHourlyAdInsightRepository) {
				meta.EXPECT().GetHourlyAdInsights(gomock.Any(), gomock.Any(), gomock.Any()).Return(newEnvelope(), nil)
				hourly.EXPECT().ReplaceDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *FetchResult, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "store hourly insights")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			meta := mocks.NewMockMetaInsighter(ctrl)

			var (
				files  *repomocks.MockReportFileRepository
				hourly *repomocks.MockHourlyAdInsightRepository
			)
			if tt.withFiles {
				files = repomocks.NewMockReportFileRepository(ctrl)
			}
			if tt.withDB {
				hourly = repomocks.NewMockHourlyAdInsightRepository(ctrl)
			}

			tt.setup(meta, files, hourly)

			service := newTestService(&config.Config{}, meta, files, hourly)
			result, err := service.FetchHourlyInsights(context.Background(), tt.accountID, tt.date)

			tt.validate(t, result, err)
		})
	}
}

func TestService_FetchHourlyInsights_RunIDReachesRepository(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mocks.NewMockMetaInsighter(ctrl)
	hourly := repomocks.NewMockHourlyAdInsightRepository(ctrl)

	var (
		metaRunID string
		repoRunID string
	)
	meta.EXPECT().
		GetHourlyAdInsights(gomock.Any(), "act_123", "2026-10-17").
		DoAndReturn(func(ctx context.Context, _, _ string) (*domain.OutputEnvelope, error) {
			metaRunID = log.GetCorrelationID(ctx)
			return newEnvelope(), nil
		})
	hourly.EXPECT().
		ReplaceDay(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, runID string, _ *domain.OutputEnvelope) error {
			repoRunID = runID
			return nil
		})
	hourly.EXPECT().
		CountByAccountAndDate(gomock.Any(), "act_123", "2026-10-17").
		Return(0, errors.New("connection reset"))

	service := newTestService(&config.Config{}, meta, nil, hourly)
	result, err := service.FetchHourlyInsights(context.Background(), "act_123", "2026-10-17")

	require.NoError(t, err)
	assert.Equal(t, result.RunID, metaRunID)
	assert.Equal(t, result.RunID, repoRunID)
}

func TestService_FetchHourlyInsights_Deadline(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mocks.NewMockMetaInsighter(ctrl)
	meta.EXPECT().
		GetHourlyAdInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string) (*domain.OutputEnvelope, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return newEnvelope(), nil
		})

	cfg := &config.Config{Fetch: config.Fetch{Deadline: time.Minute}}
	service := newTestService(cfg, meta, nil, nil)

	_, err := service.FetchHourlyInsights(context.Background(), "act_123", "2026-10-17")
	require.NoError(t, err)
}

func TestService_VerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meta := mocks.NewMockMetaInsighter(ctrl)
	meta.EXPECT().VerifyToken(gomock.Any()).Return(&metadomain.Me{ID: "42", Name: "bot"}, nil)
	meta.EXPECT().VerifyToken(gomock.Any()).Return(nil, &metadomain.APIError{Kind: metadomain.ErrorKindAuth, Code: 190})

	service := newTestService(&config.Config{}, meta, nil, nil)

	me, err := service.VerifyToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", me.ID)

	_, err = service.VerifyToken(context.Background())
	require.Error(t, err)
	assert.Equal(t, metadomain.ErrorKindAuth, metadomain.KindOf(err))
}

func TestService_ValidateDate_UsesUTCDay(t *testing.T) {
	log.SetupTestLogger()

	saoPaulo := time.FixedZone("UTC-3", -3*60*60)
	kiritimati := time.FixedZone("UTC+14", 14*60*60)

	tests := []struct {
		name    string
		now     time.Time
		date    string
		wantErr bool
	}{
		{
			name: "local evening already next day in UTC",
			now:  time.Date(2026, 10, 18, 22, 30, 0, 0, saoPaulo),
			date: "2026-10-19",
		},
		{
			name:    "local morning still previous day in UTC",
			now:     time.Date(2026, 10, 19, 5, 0, 0, 0, kiritimati),
			date:    "2026-10-19",
			wantErr: true,
		},
		{
			name: "UTC day accepted from a shifted clock",
			now:  time.Date(2026, 10, 19, 5, 0, 0, 0, kiritimati),
			date: "2026-10-18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(&config.Config{}, nil, nil, nil)
			s.now = func() time.Time { return tt.now }

			err := s.validateDate(tt.date)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			assert.NoError(t, err)
		})
	}
}
