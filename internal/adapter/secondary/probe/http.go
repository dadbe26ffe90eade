package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"folio/internal/domain"
)

// HTTPProber implements domain.ImageProber with HEAD requests.
// This is a secondary adapter.
type HTTPProber struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPProber creates a prober resolving paths against baseURL. A nil
// client means http.DefaultClient.
func NewHTTPProber(baseURL string, client *http.Client) (*HTTPProber, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must be http or https, got %q", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProber{base: u, client: client}, nil
}

var _ domain.ImageProber = (*HTTPProber)(nil)

// Exists issues one HEAD request for path. Any 2xx status means the image
// exists.
func (p *HTTPProber) Exists(ctx context.Context, path string) (bool, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return false, fmt.Errorf("parse path %q: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.base.ResolveReference(ref).String(), nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("head %s: %w", path, err)
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
