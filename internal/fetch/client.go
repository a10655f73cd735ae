package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/raffopenssh/inspire-austria/internal/config"
)

// Client issues capability and sample requests against geospatial services.
// It is a pure fetcher: callers persist results. TLS verification is optional
// because several provincial endpoints serve invalid certificate chains.
type Client struct {
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

func NewClient(cfg config.FetchConfig, logger *slog.Logger) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifyTLS},
	}
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		userAgent: cfg.UserAgent,
		logger:    logger.With("component", "fetch"),
	}
}

// doGet performs one GET and returns the body on HTTP 200, or a classified
// failure.
func (c *Client) doGet(ctx context.Context, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: KindHTTPStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}
	return body, nil
}

// splitBase strips the query string from a service URL and returns the bare
// base plus the original query values.
func splitBase(rawURL string) (string, url.Values) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, url.Values{}
	}
	q := u.Query()
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), q
}
