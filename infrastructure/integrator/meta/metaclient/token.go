package metaclient

import (
	"context"
	"fmt"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

// Me valida o token consultando GET /me. Um token expirado ou inválido
// volta como APIError do tipo auth.
func (c *MetaClient) Me(ctx context.Context) (*metadomain.Me, error) {
	if c.Cfg.Meta.AccessToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Set("fields", "id,name")
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.executor.Execute(ctx, Get(c.Cfg.Meta.URL+"/me", params))
	if err != nil {
		return nil, fmt.Errorf("erro ao validar token: %w", err)
	}

	var me metadomain.Me
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &me); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}
	if me.ID == "" {
		return nil, metadomain.NewAPIError("GET /me returned no id")
	}

	logrus.WithFields(logrus.Fields{
		"id":   me.ID,
		"name": me.Name,
	}).Info("Token validado com sucesso")

	return &me, nil
}
