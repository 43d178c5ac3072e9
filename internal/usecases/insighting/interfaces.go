package insighting

import (
	"context"

	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks -exclude_interfaces=Fetcher

// MetaInsighter define a interface para obter os insights por hora do Meta
type MetaInsighter interface {
	// GetHourlyAdInsights executa o relatório do dia e devolve o envelope normalizado
	GetHourlyAdInsights(ctx context.Context, accountID, date string) (*domain.OutputEnvelope, error)

	// VerifyToken confirma que o token configurado é válido
	VerifyToken(ctx context.Context) (*metadomain.Me, error)
}

// Fetcher é o caso de uso usado pela CLI, pelo agendador e pela API
type Fetcher interface {
	FetchHourlyInsights(ctx context.Context, accountID, date string) (*FetchResult, error)
	VerifyToken(ctx context.Context) (*metadomain.Me, error)
}
