package mediacrypt

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher obtains raw ciphertext bytes from the media source. the
// contract is a plain GET with no auth; callers that need headers or
// retries wrap their own implementation around it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type httpFetcher struct {
	client  *http.Client
	maxSize int64
}

func NewHTTPFetcher(client *http.Client, maxSize int64) Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{
		client:  client,
		maxSize: maxSize,
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaFetchFailed, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrMediaFetchFailed, resp.Status)
	}

	reader := io.Reader(resp.Body)
	if f.maxSize > 0 {
		reader = io.LimitReader(resp.Body, f.maxSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaFetchFailed, err)
	}
	if f.maxSize > 0 && int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrMediaFetchFailed, f.maxSize)
	}
	return data, nil
}
