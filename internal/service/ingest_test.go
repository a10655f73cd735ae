package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/raffopenssh/inspire-austria/internal/catalog"
	"github.com/raffopenssh/inspire-austria/internal/domain"
	"github.com/raffopenssh/inspire-austria/internal/service/mocks"
)

type IngestServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockCatalogSource
	datasets  *mocks.MockDatasetStore
	txManager *mocks.MockTransactionManager

	service *IngestService
}

func (s *IngestServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockCatalogSource(s.ctrl)
	s.datasets = mocks.NewMockDatasetStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.source.EXPECT().ID().Return("test-catalog").AnyTimes()
	s.source.EXPECT().Name().Return("Test Catalog").AnyTimes()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewIngestService(
		s.source,
		s.datasets,
		catalog.NewClassifier(),
		s.txManager,
		logger,
	)
}

func (s *IngestServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestServiceTestSuite))
}

func hit(id, title, abstract string) catalog.Hit {
	h := catalog.Hit{ID: id}
	h.Source.MetadataIdentifier = id
	h.Source.ResourceTitleObject.Default = title
	h.Source.ResourceAbstractObject.Default = abstract
	return h
}

func (s *IngestServiceTestSuite) TestRun_ClassifiesAndStores() {
	ctx := context.Background()

	hits := []catalog.Hit{
		hit("ds-1", "Flächenwidmungsplan Tirol", "Widmungen der Gemeinden in Tirol"),
		hit("ds-2", "Orthofoto Wien 2023", "Hochauflösendes Luftbild der Stadt Wien"),
	}

	s.source.EXPECT().FetchHits(ctx).Return(hits, nil)

	var stored []*domain.Dataset
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Times(2)
	s.datasets.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ds *domain.Dataset) error {
			stored = append(stored, ds)
			return nil
		},
	).Times(2)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Fetched)
	s.Equal(2, stats.Stored)
	s.Equal(0, stats.Errors)

	s.Require().Len(stored, 2)
	s.Equal("Tirol", stored[0].Province)
	s.Contains(stored[0].Concepts, "flächenwidmung")
	s.Equal("Wien", stored[1].Province)
	s.Equal("2023", stored[1].Year)
	s.Contains(stored[1].Concepts, "orthofoto")
}

func (s *IngestServiceTestSuite) TestRun_CountsUpsertErrors() {
	ctx := context.Background()

	hits := []catalog.Hit{
		hit("ds-ok", "Kataster Steiermark", ""),
		hit("ds-bad", "Naturschutzgebiete Kärnten", ""),
	}

	s.source.EXPECT().FetchHits(ctx).Return(hits, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Times(2)

	gomock.InOrder(
		s.datasets.EXPECT().Upsert(ctx, gomock.Any()).Return(nil),
		s.datasets.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("constraint violation")),
	)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Stored)
	s.Equal(1, stats.Errors)
}

func (s *IngestServiceTestSuite) TestRun_FetchFailureWithoutPartialResult() {
	ctx := context.Background()

	s.source.EXPECT().FetchHits(ctx).Return(nil, errors.New("connection refused"))

	_, err := s.service.Run(ctx)

	s.Error(err)
}

func (s *IngestServiceTestSuite) TestRun_PartialFetchStillIngests() {
	ctx := context.Background()

	hits := []catalog.Hit{hit("ds-1", "Hochwasser Oberösterreich", "")}

	s.source.EXPECT().FetchHits(ctx).Return(hits, errors.New("fetch page 3: status 503"))

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.datasets.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Stored)
}
