package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/raffopenssh/inspire-austria/internal/catalog"
	"github.com/raffopenssh/inspire-austria/internal/domain"
)

// CombineService analyses whether datasets tagged with the same concept
// could be merged into one Austria-wide dataset.
type CombineService struct {
	datasets DatasetStore
	registry CanonicalRegistry
	logger   *slog.Logger
}

func NewCombineService(datasets DatasetStore, registry CanonicalRegistry, logger *slog.Logger) *CombineService {
	return &CombineService{
		datasets: datasets,
		registry: registry,
		logger:   logger.With("component", "combine"),
	}
}

// ByConcept reports on all datasets tagged with one cross-province concept.
func (s *CombineService) ByConcept(ctx context.Context, conceptID string) (*domain.CombinationReport, error) {
	ids, err := s.datasets.IDsByConcept(ctx, conceptID)
	if err != nil {
		return nil, fmt.Errorf("datasets for concept: %w", err)
	}

	report, err := s.build(ctx, ids)
	if err != nil {
		return nil, err
	}
	report.Concept = conceptID
	if c, ok := catalog.ConceptByID(conceptID); ok {
		report.ConceptName = c.NameDE
	}
	return report, nil
}

// ByIDs reports on an explicit dataset selection.
func (s *CombineService) ByIDs(ctx context.Context, ids []string) (*domain.CombinationReport, error) {
	return s.build(ctx, ids)
}

func (s *CombineService) build(ctx context.Context, ids []string) (*domain.CombinationReport, error) {
	schemas, err := s.datasets.Schemas(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load schemas: %w", err)
	}

	report := &domain.CombinationReport{
		Datasets:      schemas,
		TotalDatasets: len(schemas),
	}

	covered := make(map[string]bool)
	withFields := 0
	fieldCounts := make(map[string]int)
	fieldSpelling := make(map[string]string)
	allFields := make(map[string]bool)

	for _, ds := range schemas {
		if ds.Province != "" {
			covered[ds.Province] = true
		}

		hasWFS := false
		for _, svc := range ds.Services {
			if svc == domain.ServiceWFS {
				hasWFS = true
			}
		}
		if hasWFS {
			report.DatasetsWithWFS++
		}

		if len(ds.Fields) == 0 {
			continue
		}
		withFields++

		seen := make(map[string]bool)
		for _, f := range ds.Fields {
			key := strings.ToLower(f)
			if !allFields[key] {
				allFields[key] = true
				report.AllFields = append(report.AllFields, f)
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			fieldCounts[key]++
			if _, ok := fieldSpelling[key]; !ok {
				fieldSpelling[key] = f
			}
		}
	}

	for _, p := range domain.Provinces {
		if covered[p] {
			report.ProvincesCovered = append(report.ProvincesCovered, p)
		} else {
			report.MissingProvinces = append(report.MissingProvinces, p)
		}
	}
	pct := float64(len(report.ProvincesCovered)) / float64(len(domain.Provinces)) * 100
	report.CoveragePct = math.Round(pct*10) / 10

	sort.Strings(report.AllFields)

	// A field is common when at least half the schema-bearing datasets carry
	// it, and never with fewer than two carriers.
	threshold := math.Max(2, float64(withFields)*0.5)
	for key, count := range fieldCounts {
		if float64(count) >= threshold {
			report.CommonFields = append(report.CommonFields, fieldSpelling[key])
		}
	}
	sort.Strings(report.CommonFields)

	for _, field := range report.CommonFields {
		match, ok := s.registry.Lookup(field)
		if !ok {
			continue
		}
		report.FieldMappings = append(report.FieldMappings, domain.FieldMapping{
			Field:       field,
			CanonicalID: match.CanonicalID,
			Description: match.Description,
		})
	}

	report.Combinable = report.DatasetsWithWFS >= 2

	return report, nil
}
