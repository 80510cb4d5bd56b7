package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-analyzer/cmd/api/httpclient"
	"wiki-analyzer/cmd/api/trace"
)

func TestRoundTripperSetsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := httpclient.NewBaseClientWithClient(httpclient.New(httpclient.Config{UserAgent: "wiki-analyzer-test/1.0"}), srv.URL)
	ctx := trace.WithRequestAndSpan(context.Background(), "req-abc", 0)

	req, err := client.NewRequest(ctx, http.MethodGet, "/ping", nil, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "wiki-analyzer-test/1.0", got.Get("User-Agent"))
	assert.Equal(t, "req-abc", got.Get("X-Request-Id"))
	assert.Equal(t, "1", got.Get("X-Span-Id"))
	assert.Empty(t, req.Header.Get("X-Request-Id"), "original request must not be mutated")
}

func TestNewRequestBuildsURL(t *testing.T) {
	client := httpclient.NewBaseClientWithClient(nil, "https://en.wikipedia.org/api/rest_v1")

	req, err := client.NewRequest(context.Background(), http.MethodGet, "/page/summary/Barack Obama", url.Values{"redirect": {"true"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://en.wikipedia.org/api/rest_v1/page/summary/Barack%20Obama?redirect=true", req.URL.String())
}

func TestNewRequestRejectsQueryInPath(t *testing.T) {
	client := httpclient.NewBaseClientWithClient(nil, "https://example.org")
	_, err := client.NewRequest(context.Background(), http.MethodGet, "/a?b=c", nil, nil)
	assert.Error(t, err)
}
