package metaclient

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

// PageExtractor transforma o corpo de uma página em itens e na URL da próxima página.
// next vazio encerra a paginação.
type PageExtractor[T any] func(body []byte) (items []T, next string, err error)

// Walk segue paging.next a partir de first, fazendo uma requisição por página.
// Os itens são concatenados na ordem de chegada, sem deduplicação.
func Walk[T any](ctx context.Context, requester Requester, first RequestDescriptor, extract PageExtractor[T]) ([]T, error) {
	var (
		all  []T
		page int
	)

	current := first
	for {
		page++

		body, err := requester.Execute(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar a página %d: %w", page, err)
		}

		items, next, err := extract(body)
		if err != nil {
			return nil, metadomain.NewAPIError(fmt.Sprintf("invalid page %d: %v", page, err))
		}

		all = append(all, items...)

		logrus.WithFields(logrus.Fields{
			"page":  page,
			"items": len(items),
			"total": len(all),
		}).Debug("Página recebida")

		if next == "" {
			return all, nil
		}

		// paging.next já traz todos os parâmetros, inclusive o access_token
		current = RequestDescriptor{Method: first.Method, URL: next}
	}
}

// InsightsPageExtractor lê uma página de /insights no formato {data, paging}
func InsightsPageExtractor(body []byte) ([]metadomain.InsightRow, string, error) {
	var page metadomain.InsightsPage
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &page); err != nil {
		return nil, "", err
	}

	next := ""
	if page.Paging != nil {
		next = page.Paging.Next
	}

	return page.Data, next, nil
}
