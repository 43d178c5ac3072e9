package metaclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// RequestDescriptor descreve uma requisição lógica. É imutável e criado a cada chamada.
type RequestDescriptor struct {
	Method string
	URL    string
	Body   []byte
}

// Get cria um descritor GET para baseURL com os parâmetros de query informados
func Get(baseURL string, params url.Values) RequestDescriptor {
	return RequestDescriptor{Method: http.MethodGet, URL: withQuery(baseURL, params)}
}

// Post cria um descritor POST; a Graph API aceita os parâmetros na query
func Post(baseURL string, params url.Values) RequestDescriptor {
	return RequestDescriptor{Method: http.MethodPost, URL: withQuery(baseURL, params)}
}

func (d RequestDescriptor) newRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if len(d.Body) > 0 {
		body = bytes.NewReader(d.Body)
	}

	method := d.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, d.URL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// redactedURL remove o access_token para logs
func (d RequestDescriptor) redactedURL() string {
	u, err := url.Parse(d.URL)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func withQuery(baseURL string, params url.Values) string {
	if len(params) == 0 {
		return baseURL
	}
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + params.Encode()
}
