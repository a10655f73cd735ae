// Package geonetwork fetches metadata records from the Austrian INSPIRE
// GeoNetwork search API.
package geonetwork

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/raffopenssh/inspire-austria/internal/catalog"
	"github.com/raffopenssh/inspire-austria/internal/config"
)

const (
	SourceID   = "geonetwork"
	SourceName = "INSPIRE Geometadatensuche"
)

// Source pages through the GeoNetwork Elasticsearch search endpoint.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	pageSize       int
	maxPages       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg config.CatalogConfig, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		pageSize:       cfg.PageSize,
		maxPages:       cfg.MaxPages,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

func (s *Source) ID() string   { return SourceID }
func (s *Source) Name() string { return SourceName }

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []catalog.Hit `json:"hits"`
	} `json:"hits"`
}

// FetchHits pages through the full catalog. On a page failure the hits
// collected so far are returned together with the error, so a partial ingest
// still makes progress.
func (s *Source) FetchHits(ctx context.Context) ([]catalog.Hit, error) {
	var all []catalog.Hit

	for page := 0; page < s.maxPages; page++ {
		resp, err := s.fetchPage(ctx, page)
		if err != nil {
			return all, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, resp.Hits.Hits...)

		s.logger.Debug("fetched page",
			"page", page,
			"records", len(resp.Hits.Hits),
			"total", len(all),
		)

		if len(resp.Hits.Hits) < s.pageSize || len(all) >= resp.Hits.Total.Value {
			break
		}
	}

	return all, nil
}

func (s *Source) fetchPage(ctx context.Context, page int) (*searchResponse, error) {
	var resp *searchResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, page)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, err
}

func (s *Source) doRequest(ctx context.Context, page int) (*searchResponse, error) {
	query := map[string]any{
		"from": page * s.pageSize,
		"size": s.pageSize,
		"query": map[string]any{
			"match_all": map[string]any{},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", httpResp.StatusCode)
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
		if backoff > s.maxBackoff {
			return s.maxBackoff
		}
	}
	return backoff
}
