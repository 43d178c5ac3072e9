package metaclient

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

// ClassifierConfig define quais códigos de erro da Graph API contam como
// autenticação e quais contam como limite de uso
type ClassifierConfig struct {
	AuthCodes      []int
	RateLimitCodes []int
}

// DefaultClassifierConfig retorna os códigos documentados pela Meta
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		AuthCodes:      []int{190, 10, 200},
		RateLimitCodes: []int{4, 17, 613, 80000, 80003, 80004, 80014},
	}
}

// Classifier atribui um ErrorKind a cada resposta que falhou
type Classifier struct {
	authCodes      map[int]struct{}
	rateLimitCodes map[int]struct{}
	waits          *UsageResolver
}

func NewClassifier(cfg ClassifierConfig, waits *UsageResolver) *Classifier {
	if waits == nil {
		waits = NewUsageResolver(DefaultRateLimitWait)
	}
	return &Classifier{
		authCodes:      toSet(cfg.AuthCodes),
		rateLimitCodes: toSet(cfg.RateLimitCodes),
		waits:          waits,
	}
}

// Classify retorna nil quando a resposta é sucesso. A ordem das verificações importa:
// um código de autenticação vence qualquer status HTTP.
func (c *Classifier) Classify(status int, header http.Header, body []byte) *metadomain.APIError {
	envelope := parseErrorEnvelope(body)

	if envelope != nil {
		if _, ok := c.authCodes[envelope.Code]; ok {
			return &metadomain.APIError{
				Kind:    metadomain.ErrorKindAuth,
				Status:  status,
				Code:    envelope.Code,
				Subcode: envelope.ErrorSubcode,
				Message: envelope.Message,
			}
		}

		if _, ok := c.rateLimitCodes[envelope.Code]; ok {
			return &metadomain.APIError{
				Kind:    metadomain.ErrorKindRateLimit,
				Status:  status,
				Code:    envelope.Code,
				Subcode: envelope.ErrorSubcode,
				Message: envelope.Message,
				Wait:    c.waits.WaitFor(header),
			}
		}
	}

	if status >= http.StatusInternalServerError {
		if envelope != nil {
			// 5xx com envelope é uma recusa com significado (ex.: "reduce the amount of data")
			return &metadomain.APIError{
				Kind:    metadomain.ErrorKindAPI,
				Status:  status,
				Code:    envelope.Code,
				Subcode: envelope.ErrorSubcode,
				Message: envelope.Message,
			}
		}
		return &metadomain.APIError{Kind: metadomain.ErrorKindServerTransient, Status: status}
	}

	if envelope != nil {
		return &metadomain.APIError{
			Kind:    metadomain.ErrorKindAPI,
			Status:  status,
			Code:    envelope.Code,
			Subcode: envelope.ErrorSubcode,
			Message: envelope.Message,
		}
	}

	if status < 200 || status > 299 {
		return &metadomain.APIError{
			Kind:   metadomain.ErrorKindHTTP,
			Status: status,
			Body:   truncate(string(body), 512),
		}
	}

	return nil
}

// ClassifyTransportError classifica erros que aconteceram antes de haver resposta.
// Erros já classificados passam adiante sem alteração e cancelamentos de contexto
// não são tratados como falha de rede.
func (c *Classifier) ClassifyTransportError(err error) error {
	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &metadomain.APIError{
		Kind:    metadomain.ErrorKindNetworkTransient,
		Message: err.Error(),
		Err:     err,
	}
}

func parseErrorEnvelope(body []byte) *metadomain.ErrorDetails {
	if len(body) == 0 {
		return nil
	}
	var resp metadomain.ErrorResponse
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &resp); err != nil {
		return nil
	}
	return resp.Error
}

func toSet(codes []int) map[int]struct{} {
	set := make(map[int]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
