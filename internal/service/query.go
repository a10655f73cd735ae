package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

// SchemaReport is the full discovered schema view of one dataset.
type SchemaReport struct {
	Dataset      *domain.Dataset        `json:"dataset"`
	FeatureTypes []domain.FeatureType   `json:"feature_types"`
	Services     []domain.ServiceStatus `json:"services"`
	ThemeFields  []domain.ThemeField    `json:"theme_fields,omitempty"`
}

// FieldReport resolves one field name across the index and the canonical
// registry.
type FieldReport struct {
	Field     string               `json:"field"`
	Canonical *domain.CanonicalMatch `json:"canonical,omitempty"`
	Datasets  []string             `json:"datasets"`
}

// QueryService answers read-only index questions for the API and CLIs.
type QueryService struct {
	datasets DatasetStore
	schemas  SchemaStore
	statuses StatusStore
	registry CanonicalRegistry
	logger   *slog.Logger
}

func NewQueryService(
	datasets DatasetStore,
	schemas SchemaStore,
	statuses StatusStore,
	registry CanonicalRegistry,
	logger *slog.Logger,
) *QueryService {
	return &QueryService{
		datasets: datasets,
		schemas:  schemas,
		statuses: statuses,
		registry: registry,
		logger:   logger.With("component", "query"),
	}
}

// Search finds datasets by free text, optionally filtered by province.
func (s *QueryService) Search(ctx context.Context, query, province string, limit int) ([]domain.Dataset, error) {
	return s.datasets.Search(ctx, query, province, limit)
}

// Schema loads the discovered schema of one dataset: its feature types with
// fields, service statuses (working first) and the canonical fields expected
// for its INSPIRE theme.
func (s *QueryService) Schema(ctx context.Context, datasetID string) (*SchemaReport, error) {
	ds, err := s.datasets.Get(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	types, err := s.schemas.FeatureTypesForDataset(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("load feature types: %w", err)
	}

	statuses, err := s.statuses.ForDataset(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("load statuses: %w", err)
	}

	report := &SchemaReport{
		Dataset:      ds,
		FeatureTypes: types,
		Services:     statuses,
	}
	for _, ft := range types {
		if ft.InspireTheme == "" {
			continue
		}
		if fields := s.registry.FieldsForTheme(ft.InspireTheme); len(fields) > 0 {
			report.ThemeFields = fields
			break
		}
	}
	return report, nil
}

// Field resolves one field name: its canonical concept, if registered, and
// the datasets exposing it.
func (s *QueryService) Field(ctx context.Context, fieldName string) (*FieldReport, error) {
	report := &FieldReport{Field: fieldName}

	if match, ok := s.registry.Lookup(fieldName); ok {
		report.Canonical = &match
	}

	ids, err := s.schemas.DatasetsWithField(ctx, fieldName)
	if err != nil {
		return nil, fmt.Errorf("datasets with field: %w", err)
	}
	report.Datasets = ids

	return report, nil
}
