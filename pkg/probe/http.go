package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bwoff11/net-stab/pkg/models"
)

// HTTPProber checks reachability with a GET request. Any status below
// 500 counts as available; the service answered, even if it answered
// with a client error.
type HTTPProber struct {
	endpoint models.Endpoint
	client   *http.Client
	url      string
}

func newHTTPProber(endpoint models.Endpoint, timeout time.Duration) (Prober, error) {
	url := endpoint.Address
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}

	return &HTTPProber{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		url:      url,
	}, nil
}

// Probe implements Prober.
func (p *HTTPProber) Probe(ctx context.Context) models.ProbeResult {
	result := models.ProbeResult{Endpoint: p.endpoint, Timestamp: time.Now()}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		result.Error = fmt.Errorf("failed to build request for %s: %w", p.url, err)
		return result
	}

	start := time.Now()

	resp, err := p.client.Do(req)
	if err != nil {
		result.Error = fmt.Errorf("failed to get %s: %w", p.url, err)
		return result
	}

	elapsed := time.Since(start)

	_, _ = io.Copy(io.Discard, resp.Body)

	if err := resp.Body.Close(); err != nil {
		result.Error = fmt.Errorf("failed to close response body: %w", err)
		return result
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		result.Error = fmt.Errorf("%w: %d from %s", errHTTPStatus, resp.StatusCode, p.url)
		return result
	}

	result.Available = true
	result.RespTime = elapsed

	return result
}

// Close implements Prober.
func (p *HTTPProber) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
