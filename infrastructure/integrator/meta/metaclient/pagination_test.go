package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-hourly-insights/infrastructure/integrator/meta/domain"
)

// pagedServer serve pages páginas com perPage linhas, encadeadas por paging.next
func pagedServer(t *testing.T, pages, perPage int, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		data := ""
		for i := 0; i < perPage; i++ {
			if i > 0 {
				data += ","
			}
			data += fmt.Sprintf(`{"ad_id":"p%d-%d"}`, page, i)
		}

		paging := `{"cursors":{"before":"b","after":"a"}}`
		if page < pages-1 {
			paging = fmt.Sprintf(`{"cursors":{"before":"b","after":"a"},"next":"%s/rows?page=%d"}`, srv.URL, page+1)
		}

		_, _ = fmt.Fprintf(w, `{"data":[%s],"paging":%s}`, data, paging)
	}))

	return srv
}

func TestWalk_ConcatenatesPagesInOrder(t *testing.T) {
	for _, pages := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("%d pages", pages), func(t *testing.T) {
			var calls atomic.Int32
			srv := pagedServer(t, pages, 3, &calls)
			defer srv.Close()

			rows, err := Walk(context.Background(), newTestExecutor(srv, newFakeClock(), 3), Get(srv.URL+"/rows?page=0", nil), InsightsPageExtractor)

			require.NoError(t, err)
			assert.Equal(t, int32(pages), calls.Load())
			require.Len(t, rows, pages*3)
			for p := 0; p < pages; p++ {
				for i := 0; i < 3; i++ {
					assert.Equal(t, fmt.Sprintf("p%d-%d", p, i), rows[p*3+i].AdID)
				}
			}
		})
	}
}

func TestWalk_DoesNotDeduplicate(t *testing.T) {
	requester := &scriptedRequester{responses: []string{
		`{"data":[{"ad_id":"1"},{"ad_id":"2"}],"paging":{"next":"https://graph.test/next"}}`,
		`{"data":[{"ad_id":"2"}]}`,
	}}

	rows, err := Walk(context.Background(), requester, Get("https://graph.test/first", nil), InsightsPageExtractor)

	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"https://graph.test/first", "https://graph.test/next"}, requester.urls)
}

func TestWalk_PropagatesErrors(t *testing.T) {
	requester := &scriptedRequester{
		responses: []string{`{"data":[{"ad_id":"1"}],"paging":{"next":"https://graph.test/next"}}`},
		errs:      []error{nil, &metadomain.APIError{Kind: metadomain.ErrorKindAuth, Code: 190}},
	}

	_, err := Walk(context.Background(), requester, Get("https://graph.test/first", nil), InsightsPageExtractor)

	assert.Equal(t, metadomain.ErrorKindAuth, metadomain.KindOf(err))
}

func TestWalk_InvalidPageIsAPIError(t *testing.T) {
	requester := &scriptedRequester{responses: []string{`{"data":"oops"}`}}

	_, err := Walk(context.Background(), requester, Get("https://graph.test/first", nil), InsightsPageExtractor)

	assert.Equal(t, metadomain.ErrorKindAPI, metadomain.KindOf(err))
}

// scriptedRequester devolve respostas em sequência, sem HTTP
type scriptedRequester struct {
	responses []string
	errs      []error
	urls      []string
}

func (s *scriptedRequester) Execute(_ context.Context, d RequestDescriptor) ([]byte, error) {
	i := len(s.urls)
	s.urls = append(s.urls, d.URL)

	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.responses) {
		return nil, fmt.Errorf("unexpected request %d to %s", i+1, d.URL)
	}
	return []byte(s.responses[i]), nil
}
