// Package fetch validates document URLs and retrieves their markup.
package fetch

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultHost is the host the published grid documents live on.
const DefaultHost = "docs.google.com"

// Common errors
var (
	ErrInvalidURL = errors.New("invalid document URL")
)

// AccessError reports a document that could not be retrieved: either the
// request failed in transport (Err set) or the server answered with a
// non-success status (StatusCode set).
type AccessError struct {
	URL        string
	StatusCode int   // 0 when the request never completed
	Err        error // underlying transport error, nil on a bad status
}

func (e *AccessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// ValidateURL checks that raw is a well-formed https URL pointing at the
// expected document host. It runs before any network access and touches
// nothing outside its arguments.
func ValidateURL(raw, host string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: empty URL", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q, need https", ErrInvalidURL, u.Scheme)
	}
	if u.Host != host {
		return fmt.Errorf("%w: host %q, need %q", ErrInvalidURL, u.Host, host)
	}
	return nil
}

// Fetcher retrieves documents with a single synchronous GET. No retries;
// redirects follow the client's default policy. A caller wanting a
// deadline sets one on the injected client.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher backed by client, or by
// http.DefaultClient when client is nil.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// Fetch performs the GET and returns the raw response body. Transport
// failures and non-2xx statuses surface as *AccessError.
func (f *Fetcher) Fetch(rawURL string) (string, error) {
	resp, err := f.client.Get(rawURL)
	if err != nil {
		return "", &AccessError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &AccessError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &AccessError{URL: rawURL, Err: err}
	}
	return string(body), nil
}
