// Package filedump reads catalog records from a local GeoNetwork export,
// either a raw search response or a plain array of hits.
package filedump

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/raffopenssh/inspire-austria/internal/catalog"
)

const SourceID = "filedump"

type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) ID() string   { return SourceID }
func (s *Source) Name() string { return "local catalog dump" }

func (s *Source) FetchHits(_ context.Context) ([]catalog.Hit, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}

	var wrapped struct {
		Hits struct {
			Hits []catalog.Hit `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Hits.Hits) > 0 {
		return wrapped.Hits.Hits, nil
	}

	var plain []catalog.Hit
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("decode dump: %w", err)
	}
	return plain, nil
}
