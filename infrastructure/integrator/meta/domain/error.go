package metadomain

import (
	"errors"
	"fmt"
	"time"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// ErrorKind classifica uma tentativa que falhou. Cada falha recebe exatamente um tipo.
type ErrorKind string

const (
	ErrorKindAuth             ErrorKind = "auth"
	ErrorKindRateLimit        ErrorKind = "rate_limit"
	ErrorKindServerTransient  ErrorKind = "server_transient"
	ErrorKindNetworkTransient ErrorKind = "network_transient"
	ErrorKindAPI              ErrorKind = "api"
	ErrorKindHTTP             ErrorKind = "http"
)

// Retryable indica se o executor deve tentar novamente após este tipo de erro
func (k ErrorKind) Retryable() bool {
	switch k {
	case ErrorKindRateLimit, ErrorKindServerTransient, ErrorKindNetworkTransient:
		return true
	case ErrorKindAuth, ErrorKindAPI, ErrorKindHTTP:
		return false
	default:
		return false
	}
}

// APIError é o erro classificado de uma chamada à Graph API.
// Os campos preenchidos dependem de Kind:
//   - auth, api: Code, Subcode, Message
//   - rate_limit: Code, Subcode, Message, Wait
//   - server_transient: Status
//   - network_transient: Message, Err
//   - http: Status, Body
type APIError struct {
	Kind    ErrorKind
	Status  int
	Code    int
	Subcode int
	Message string
	Body    string
	Wait    time.Duration
	Err     error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case ErrorKindAuth, ErrorKindAPI:
		return fmt.Sprintf("meta %s error %d (subcode %d): %s", e.Kind, e.Code, e.Subcode, e.Message)
	case ErrorKindRateLimit:
		return fmt.Sprintf("meta rate limit %d (subcode %d): %s (wait %s)", e.Code, e.Subcode, e.Message, e.Wait)
	case ErrorKindServerTransient:
		return fmt.Sprintf("meta server error (status %d)", e.Status)
	case ErrorKindNetworkTransient:
		return fmt.Sprintf("meta network error: %s", e.Message)
	case ErrorKindHTTP:
		return fmt.Sprintf("meta http error (status %d): %s", e.Status, e.Body)
	default:
		return fmt.Sprintf("meta %s error: %s", e.Kind, e.Message)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError cria um erro fatal do tipo api, usado também para respostas semanticamente inválidas
func NewAPIError(message string) *APIError {
	return &APIError{Kind: ErrorKindAPI, Message: message}
}

// KindOf retorna o tipo do APIError contido em err, ou "" se não houver
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// RetryExhaustedError é retornado quando todas as tentativas falharam com erros recuperáveis
type RetryExhaustedError struct {
	Attempts int
	Last     *APIError
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("retry attempts exhausted after %d attempts: %v", e.Attempts, e.Last)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Last
}

// ErrJobTimeout indica que o relatório assíncrono não terminou dentro do prazo
var ErrJobTimeout = errors.New("report job timed out")

// JobError é uma falha do fluxo de relatório assíncrono com o último estado conhecido do job
type JobError struct {
	Job ReportJob
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("report %s %s (async_status=%q, %d%%): %v",
		e.Job.ReportID, e.Job.Status, e.Job.AsyncStatus, e.Job.PercentComplete, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}
