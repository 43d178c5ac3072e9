package insighting

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-hourly-insights/infrastructure/repository"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
	"github.com/vfg2006/meta-hourly-insights/pkg/log"
	"github.com/vfg2006/meta-hourly-insights/pkg/utils"
)

var accountIDPattern = regexp.MustCompile(`^act_[0-9]+$`)

// FetchResult é o resultado de uma execução do pipeline
type FetchResult struct {
	RunID    string
	Envelope *domain.OutputEnvelope
	Path     string
	Stored   bool
}

// Service orquestra a coleta e grava o resultado nos destinos configurados
type Service struct {
	cfg                 *config.Config
	metaService         MetaInsighter
	reportFiles         repository.ReportFileRepository
	hourlyAdInsightRepo repository.HourlyAdInsightRepository
	now                 func() time.Time
}

// NewService cria uma nova instância do serviço de insights. reportFiles e
// hourlyAdInsightRepo são opcionais; nil desativa o destino correspondente.
func NewService(
	cfg *config.Config,
	metaService MetaInsighter,
	reportFiles repository.ReportFileRepository,
	hourlyAdInsightRepo repository.HourlyAdInsightRepository,
) *Service {
	return &Service{
		cfg:                 cfg,
		metaService:         metaService,
		reportFiles:         reportFiles,
		hourlyAdInsightRepo: hourlyAdInsightRepo,
		now:                 time.Now,
	}
}

// FetchHourlyInsights coleta um dia de uma conta. A execução é tudo ou nada: uma falha
// fatal em qualquer etapa devolve erro e nada é gravado.
func (s *Service) FetchHourlyInsights(ctx context.Context, accountID, date string) (*FetchResult, error) {
	accountID = meta.NormalizeAccountID(accountID)
	if !accountIDPattern.MatchString(accountID) {
		return nil, errors.Wrapf(ErrInvalidAccount, "%q", accountID)
	}

	if err := s.validateDate(date); err != nil {
		return nil, err
	}

	ctx, runID := log.WithCorrelationID(ctx)
	if s.cfg.Fetch.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Fetch.Deadline)
		defer cancel()
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id": accountID,
		"date":       date,
	})
	logger.Info("Iniciando coleta de insights por hora")

	startTime := s.now()

	envelope, err := s.metaService.GetHourlyAdInsights(ctx, accountID, date)
	if err != nil {
		logger.WithError(err).Error("Falha na coleta de insights")
		return nil, errors.Wrapf(err, "fetch hourly insights for %s on %s", accountID, date)
	}

	result := &FetchResult{RunID: runID, Envelope: envelope}

	if s.reportFiles != nil {
		path, err := s.reportFiles.Save(ctx, envelope)
		if err != nil {
			return nil, errors.Wrap(err, "save report file")
		}
		result.Path = path
	}

	if s.hourlyAdInsightRepo != nil {
		if err := s.hourlyAdInsightRepo.ReplaceDay(ctx, runID, envelope); err != nil {
			return nil, errors.Wrap(err, "store hourly insights")
		}
		result.Stored = true

		stored, err := s.hourlyAdInsightRepo.CountByAccountAndDate(ctx, envelope.Metadata.AccountID, envelope.Metadata.Date)
		if err != nil {
			logger.WithError(err).Warn("Não foi possível conferir as linhas gravadas")
		} else if stored != envelope.Metadata.TotalRecords {
			logger.WithFields(log.Fields{
				"stored":   stored,
				"expected": envelope.Metadata.TotalRecords,
			}).Warn("Quantidade de linhas gravadas difere do envelope")
		}
	}

	logger.WithFields(log.Fields{
		"records":     envelope.Metadata.TotalRecords,
		"total_spend": envelope.Metadata.Summary.TotalSpend,
		"duration":    s.now().Sub(startTime).String(),
	}).Info("Coleta de insights concluída")

	return result, nil
}

// VerifyToken valida o token de acesso configurado
func (s *Service) VerifyToken(ctx context.Context) (*metadomain.Me, error) {
	me, err := s.metaService.VerifyToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "verify access token")
	}
	return me, nil
}

func (s *Service) validateDate(date string) error {
	if date == "" {
		return errors.Wrap(ErrInvalidDate, "date is required")
	}

	parsed, err := utils.ParseDate(date)
	if err != nil {
		return errors.Wrapf(ErrInvalidDate, "%q", date)
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.After(today) {
		logrus.WithField("date", date).Warn("Data no futuro")
		return errors.Wrapf(ErrInvalidDate, "%q is in the future", date)
	}

	return nil
}
