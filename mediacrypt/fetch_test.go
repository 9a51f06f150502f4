package mediacrypt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ciphertext bytes"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.Client(), 0)
	data, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("ciphertext bytes"), data)
}

func TestHTTPFetcherNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.Client(), 0)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrMediaFetchFailed)
}

func TestHTTPFetcherTransportError(t *testing.T) {
	fetcher := NewHTTPFetcher(nil, 0)
	_, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")
	assert.ErrorIs(t, err, ErrMediaFetchFailed)
}

func TestHTTPFetcherSizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 128))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.Client(), 64)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrMediaFetchFailed)
}
