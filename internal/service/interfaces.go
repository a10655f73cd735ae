package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/raffopenssh/inspire-austria/internal/catalog"
	"github.com/raffopenssh/inspire-austria/internal/domain"
	"github.com/raffopenssh/inspire-austria/internal/inspect"
)

type DatasetStore interface {
	Upsert(ctx context.Context, ds *domain.Dataset) error
	Get(ctx context.Context, id string) (*domain.Dataset, error)
	Search(ctx context.Context, query, province string, limit int) ([]domain.Dataset, error)
	IDsByConcept(ctx context.Context, conceptID string) ([]string, error)
	Schemas(ctx context.Context, ids []string) ([]domain.DatasetSchema, error)
}

type SchemaStore interface {
	SaveFeatureType(ctx context.Context, ft *domain.FeatureType) error
	FeatureTypesForDataset(ctx context.Context, datasetID string) ([]domain.FeatureType, error)
	DatasetsWithField(ctx context.Context, fieldName string) ([]string, error)
}

type StatusStore interface {
	RecordAttempt(ctx context.Context, st *domain.ServiceStatus) error
	ForDataset(ctx context.Context, datasetID string) ([]domain.ServiceStatus, error)
	DueForInspection(ctx context.Context, types []domain.ServiceType, freshness time.Duration, limit int) ([]domain.InspectionTarget, error)
	Summary(ctx context.Context) (map[domain.ServiceCheckStatus]int, error)
}

type CatalogSource interface {
	ID() string
	Name() string
	FetchHits(ctx context.Context) ([]catalog.Hit, error)
}

type Inspector interface {
	Inspect(ctx context.Context, target domain.InspectionTarget) *inspect.Result
}

type CanonicalRegistry interface {
	Lookup(fieldName string) (domain.CanonicalMatch, bool)
	FieldsForTheme(theme string) []domain.ThemeField
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishStatus(ctx context.Context, st *domain.ServiceStatus) error
	Close() error
}
