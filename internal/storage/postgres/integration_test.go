//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_catalog.up.sql"),
			filepath.Join(migrationsPath, "002_create_schemas.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	for _, table := range []string{
		"fields", "feature_types", "service_status", "dataset_services",
		"dataset_themes", "dataset_topics", "dataset_keywords",
		"dataset_concepts", "datasets",
	} {
		_, _ = s.db.ExecContext(s.ctx, "DELETE FROM "+table)
	}
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func testDataset(id, province string, score int) *domain.Dataset {
	return &domain.Dataset{
		ID:         id,
		UUID:       "uuid-" + id,
		Title:      "Flächenwidmungsplan " + province,
		Abstract:   "Widmungen nach Raumordnungsgesetz",
		Type:       "dataset",
		Province:   province,
		Year:       "2023",
		IsOpenData: true,
		Org:        "Amt der Landesregierung",
		GemScore:   score,
		Themes:     []string{"Land use"},
		Topics:     []string{"flächenwidmung"},
		Concepts:   []string{"flächenwidmung"},
		Keywords:   []string{"Widmung", "Raumordnung"},
		Services: []domain.ServiceEndpoint{
			{URL: "https://gis.example.at/" + id + "/wfs", ServiceType: domain.ServiceWFS, Protocol: "OGC:WFS"},
			{URL: "https://gis.example.at/" + id + "/wms", ServiceType: domain.ServiceWMS},
		},
		IngestedAt: time.Now().Truncate(time.Microsecond),
	}
}

func (s *PostgresIntegrationSuite) TestDatasetStore_UpsertAndGet() {
	store := NewDatasetStore(s.db)

	ds := testDataset("ds-1", "Tirol", 12)
	s.NoError(store.Upsert(s.ctx, ds))

	got, err := store.Get(s.ctx, "ds-1")
	s.NoError(err)
	s.Equal("Flächenwidmungsplan Tirol", got.Title)
	s.Equal("Tirol", got.Province)
	s.Equal(12, got.GemScore)
	s.Equal([]string{"flächenwidmung"}, got.Concepts)
	s.ElementsMatch([]string{"Widmung", "Raumordnung"}, got.Keywords)
	s.Len(got.Services, 2)
	s.Equal(domain.ServiceWFS, got.Services[0].ServiceType)
}

func (s *PostgresIntegrationSuite) TestDatasetStore_Upsert_ReplacesTags() {
	store := NewDatasetStore(s.db)

	ds := testDataset("ds-1", "Tirol", 12)
	s.NoError(store.Upsert(s.ctx, ds))

	ds.Keywords = []string{"Neu"}
	ds.Topics = nil
	s.NoError(store.Upsert(s.ctx, ds))

	got, err := store.Get(s.ctx, "ds-1")
	s.NoError(err)
	s.Equal([]string{"Neu"}, got.Keywords)
	s.Empty(got.Topics)
}

func (s *PostgresIntegrationSuite) TestDatasetStore_Search() {
	store := NewDatasetStore(s.db)

	s.NoError(store.Upsert(s.ctx, testDataset("ds-tirol", "Tirol", 5)))
	s.NoError(store.Upsert(s.ctx, testDataset("ds-wien", "Wien", 15)))

	results, err := store.Search(s.ctx, "widmung", "", 10)
	s.NoError(err)
	s.Require().Len(results, 2)
	// Best gem score first.
	s.Equal("ds-wien", results[0].ID)

	results, err = store.Search(s.ctx, "widmung", "Tirol", 10)
	s.NoError(err)
	s.Require().Len(results, 1)
	s.Equal("ds-tirol", results[0].ID)

	results, err = store.Search(s.ctx, "nichtvorhanden", "", 10)
	s.NoError(err)
	s.Empty(results)
}

func (s *PostgresIntegrationSuite) TestDatasetStore_IDsByConcept() {
	store := NewDatasetStore(s.db)

	s.NoError(store.Upsert(s.ctx, testDataset("ds-a", "Tirol", 5)))
	s.NoError(store.Upsert(s.ctx, testDataset("ds-b", "Wien", 15)))

	other := testDataset("ds-c", "Salzburg", 9)
	other.Concepts = []string{"naturschutzgebiet"}
	s.NoError(store.Upsert(s.ctx, other))

	ids, err := store.IDsByConcept(s.ctx, "flächenwidmung")
	s.NoError(err)
	s.Equal([]string{"ds-b", "ds-a"}, ids)
}

func (s *PostgresIntegrationSuite) TestDatasetStore_Schemas() {
	datasetStore := NewDatasetStore(s.db)
	schemaStore := NewSchemaStore(s.db)

	ds := testDataset("ds-1", "Tirol", 12)
	s.NoError(datasetStore.Upsert(s.ctx, ds))

	ft := &domain.FeatureType{
		DatasetID:    "ds-1",
		TypeName:     "flwi:Widmung",
		Title:        "Widmungsflächen",
		IsInspire:    true,
		InspireTheme: "Land Use",
		FetchedAt:    time.Now(),
		Fields: []domain.Field{
			{Name: "OBJECTID", Type: domain.TypeInteger},
			{Name: "WIDMUNG", Type: domain.TypeString},
			{Name: "geometry", Type: domain.TypeGeometry, IsGeometry: true},
		},
	}
	s.NoError(schemaStore.SaveFeatureType(s.ctx, ft))

	schemas, err := datasetStore.Schemas(s.ctx, []string{"ds-1"})
	s.NoError(err)
	s.Require().Len(schemas, 1)

	schema := schemas[0]
	s.Equal("ds-1", schema.ID)
	s.Equal("Tirol", schema.Province)
	s.Equal("flwi:Widmung", schema.TypeName)
	s.Equal("Land Use", schema.Theme)
	s.Equal([]string{"OBJECTID", "WIDMUNG", "geometry"}, schema.Fields)
	s.Equal("https://gis.example.at/ds-1/wfs", schema.WFSURL)
	s.ElementsMatch([]domain.ServiceType{domain.ServiceWFS, domain.ServiceWMS}, schema.Services)
}

func (s *PostgresIntegrationSuite) TestSchemaStore_SaveFeatureType_ReplacesFields() {
	store := NewSchemaStore(s.db)

	ft := &domain.FeatureType{
		ServiceID: 42,
		DatasetID: "ds-1",
		TypeName:  "flwi:Widmung",
		FetchedAt: time.Now(),
		Fields: []domain.Field{
			{Name: "OBJECTID", Type: domain.TypeInteger},
			{Name: "ALT", Type: domain.TypeString},
		},
	}
	s.NoError(store.SaveFeatureType(s.ctx, ft))
	firstID := ft.ID

	ft.Fields = []domain.Field{
		{Name: "OBJECTID", Type: domain.TypeInteger},
		{Name: "NEU", Type: domain.TypeString},
	}
	s.NoError(store.SaveFeatureType(s.ctx, ft))
	s.Equal(firstID, ft.ID)

	types, err := store.FeatureTypesForDataset(s.ctx, "ds-1")
	s.NoError(err)
	s.Require().Len(types, 1)
	s.Equal(int64(42), types[0].ServiceID)
	s.Require().Len(types[0].Fields, 2)
	s.Equal("OBJECTID", types[0].Fields[0].Name)
	s.Equal("NEU", types[0].Fields[1].Name)
}

func (s *PostgresIntegrationSuite) TestSchemaStore_DatasetsWithField() {
	store := NewSchemaStore(s.db)

	for i, name := range []string{"OBJECTID", "objectid"} {
		ft := &domain.FeatureType{
			DatasetID: "ds-" + string(rune('a'+i)),
			TypeName:  "typ",
			FetchedAt: time.Now(),
			Fields:    []domain.Field{{Name: name, Type: domain.TypeInteger}},
		}
		s.NoError(store.SaveFeatureType(s.ctx, ft))
	}

	ids, err := store.DatasetsWithField(s.ctx, "ObjectID")
	s.NoError(err)
	s.Equal([]string{"ds-a", "ds-b"}, ids)

	ids, err = store.DatasetsWithField(s.ctx, "nope")
	s.NoError(err)
	s.Empty(ids)
}

func (s *PostgresIntegrationSuite) TestSchemaStore_FieldCoverage() {
	datasetStore := NewDatasetStore(s.db)
	schemaStore := NewSchemaStore(s.db)

	s.NoError(datasetStore.Upsert(s.ctx, testDataset("ds-tirol", "Tirol", 5)))
	s.NoError(datasetStore.Upsert(s.ctx, testDataset("ds-wien", "Wien", 15)))

	s.NoError(schemaStore.SaveFeatureType(s.ctx, &domain.FeatureType{
		DatasetID: "ds-tirol", TypeName: "flwi:Widmung",
		InspireTheme: "Land Use", FetchedAt: time.Now(),
		Fields: []domain.Field{
			{Name: "OBJECTID", Type: domain.TypeInteger},
			{Name: "WIDMUNG", Type: domain.TypeString},
		},
	}))
	s.NoError(schemaStore.SaveFeatureType(s.ctx, &domain.FeatureType{
		DatasetID: "ds-wien", TypeName: "gemeinde_widmung",
		InspireTheme: "Land Use", FetchedAt: time.Now(),
		Fields: []domain.Field{
			{Name: "objectid", Type: domain.TypeInteger},
			{Name: "widmung_code", Type: domain.TypeCodelist},
		},
	}))
	// A type whose samples never yielded fields still shows up.
	s.NoError(schemaStore.SaveFeatureType(s.ctx, &domain.FeatureType{
		DatasetID: "ds-wien", TypeName: "ps:Schutzgebiet",
		InspireTheme: "Protected Sites", FetchedAt: time.Now(),
	}))
	// Unthemed types stay out of the report.
	s.NoError(schemaStore.SaveFeatureType(s.ctx, &domain.FeatureType{
		DatasetID: "ds-wien", TypeName: "intern",
		FetchedAt: time.Now(),
		Fields:    []domain.Field{{Name: "x", Type: domain.TypeString}},
	}))

	rows, err := schemaStore.FieldCoverage(s.ctx)
	s.NoError(err)
	s.Require().Len(rows, 3)

	s.Equal("Land Use", rows[0].Theme)
	s.Equal("flwi:Widmung", rows[0].TypeName)
	s.Equal("Tirol", rows[0].Province)
	s.ElementsMatch([]string{"OBJECTID", "WIDMUNG"}, rows[0].Fields)

	s.Equal("gemeinde_widmung", rows[1].TypeName)
	s.Equal("Wien", rows[1].Province)
	s.ElementsMatch([]string{"objectid", "widmung_code"}, rows[1].Fields)

	s.Equal("Protected Sites", rows[2].Theme)
	s.Empty(rows[2].Fields)
}

func (s *PostgresIntegrationSuite) TestStatusStore_RecordAttempt_Counters() {
	store := NewStatusStore(s.db)

	st := &domain.ServiceStatus{
		DatasetID:    "ds-1",
		URL:          "https://gis.example.at/wfs",
		ServiceType:  domain.ServiceWFS,
		LastChecked:  time.Now(),
		Status:       domain.StatusWorking,
		SampleFields: []string{"OBJECTID", "WIDMUNG"},
	}
	s.NoError(store.RecordAttempt(s.ctx, st))

	st.Status = domain.StatusTimeout
	st.SampleFields = nil
	st.ErrorMessage = "deadline exceeded"
	s.NoError(store.RecordAttempt(s.ctx, st))

	got, err := store.Get(s.ctx, st.URL)
	s.NoError(err)
	s.Equal(domain.StatusTimeout, got.Status)
	s.Equal("deadline exceeded", got.ErrorMessage)
	s.Equal(2, got.CheckCount)
	s.Equal(1, got.SuccessCount)
	// A failed attempt keeps the last known-good field list.
	s.Equal([]string{"OBJECTID", "WIDMUNG"}, got.SampleFields)
}

func (s *PostgresIntegrationSuite) TestStatusStore_RecordAttempt_ReplacesFieldsOnSuccess() {
	store := NewStatusStore(s.db)

	st := &domain.ServiceStatus{
		URL:          "https://gis.example.at/wfs",
		ServiceType:  domain.ServiceWFS,
		LastChecked:  time.Now(),
		Status:       domain.StatusWorking,
		SampleFields: []string{"ALT"},
	}
	s.NoError(store.RecordAttempt(s.ctx, st))

	st.SampleFields = []string{"NEU", "FELDER"}
	s.NoError(store.RecordAttempt(s.ctx, st))

	got, err := store.Get(s.ctx, st.URL)
	s.NoError(err)
	s.Equal([]string{"NEU", "FELDER"}, got.SampleFields)
	s.Equal(2, got.SuccessCount)
}

func (s *PostgresIntegrationSuite) TestStatusStore_ForDataset_WorkingFirst() {
	store := NewStatusStore(s.db)
	now := time.Now()

	s.NoError(store.RecordAttempt(s.ctx, &domain.ServiceStatus{
		DatasetID: "ds-1", URL: "https://a.example.at/wfs",
		ServiceType: domain.ServiceWFS, LastChecked: now,
		Status: domain.StatusError, ErrorMessage: "boom",
	}))
	s.NoError(store.RecordAttempt(s.ctx, &domain.ServiceStatus{
		DatasetID: "ds-1", URL: "https://b.example.at/wfs",
		ServiceType: domain.ServiceWFS, LastChecked: now.Add(-time.Hour),
		Status: domain.StatusWorking,
	}))

	statuses, err := store.ForDataset(s.ctx, "ds-1")
	s.NoError(err)
	s.Require().Len(statuses, 2)
	s.Equal(domain.StatusWorking, statuses[0].Status)
}

func (s *PostgresIntegrationSuite) TestStatusStore_DueForInspection() {
	datasetStore := NewDatasetStore(s.db)
	statusStore := NewStatusStore(s.db)

	low := testDataset("ds-low", "Tirol", 3)
	low.Services = []domain.ServiceEndpoint{
		{URL: "https://low.example.at/wfs", ServiceType: domain.ServiceWFS},
	}
	s.NoError(datasetStore.Upsert(s.ctx, low))

	high := testDataset("ds-high", "Wien", 18)
	high.Services = []domain.ServiceEndpoint{
		{URL: "https://high.example.at/wfs", ServiceType: domain.ServiceWFS},
		{URL: "https://high.example.at/ogc", ServiceType: domain.ServiceOGCAPI},
		{URL: "https://high.example.at/wms", ServiceType: domain.ServiceWMS},
	}
	s.NoError(datasetStore.Upsert(s.ctx, high))

	types := []domain.ServiceType{domain.ServiceOGCAPI, domain.ServiceWFS}

	targets, err := statusStore.DueForInspection(s.ctx, types, 24*time.Hour, 50)
	s.NoError(err)
	s.Require().Len(targets, 3)
	// OGC-API first, then WFS by gem score; WMS never selected.
	s.Equal("https://high.example.at/ogc", targets[0].URL)
	s.Equal("https://high.example.at/wfs", targets[1].URL)
	s.Equal("https://low.example.at/wfs", targets[2].URL)
	s.Equal("ds-high", targets[0].DatasetID)
	s.NotZero(targets[0].ServiceID)

	// A fresh check takes the URL out of the batch.
	s.NoError(statusStore.RecordAttempt(s.ctx, &domain.ServiceStatus{
		DatasetID: "ds-high", URL: "https://high.example.at/ogc",
		ServiceType: domain.ServiceOGCAPI, LastChecked: time.Now(),
		Status: domain.StatusWorking,
	}))

	targets, err = statusStore.DueForInspection(s.ctx, types, 24*time.Hour, 50)
	s.NoError(err)
	s.Require().Len(targets, 2)
	s.Equal("https://high.example.at/wfs", targets[0].URL)

	// A stale check puts it back.
	s.NoError(statusStore.RecordAttempt(s.ctx, &domain.ServiceStatus{
		DatasetID: "ds-high", URL: "https://high.example.at/ogc",
		ServiceType: domain.ServiceOGCAPI, LastChecked: time.Now().Add(-48 * time.Hour),
		Status: domain.StatusWorking,
	}))

	targets, err = statusStore.DueForInspection(s.ctx, types, 24*time.Hour, 50)
	s.NoError(err)
	s.Len(targets, 3)
}

func (s *PostgresIntegrationSuite) TestStatusStore_Summary() {
	store := NewStatusStore(s.db)
	now := time.Now()

	for i, status := range []domain.ServiceCheckStatus{
		domain.StatusWorking, domain.StatusWorking, domain.StatusError,
	} {
		s.NoError(store.RecordAttempt(s.ctx, &domain.ServiceStatus{
			URL:         "https://example.at/svc/" + string(rune('a'+i)),
			ServiceType: domain.ServiceWFS,
			LastChecked: now,
			Status:      status,
		}))
	}

	summary, err := store.Summary(s.ctx)
	s.NoError(err)
	s.Equal(2, summary[domain.StatusWorking])
	s.Equal(1, summary[domain.StatusError])

	n, err := store.WorkingCount(s.ctx)
	s.NoError(err)
	s.Equal(2, n)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	datasetStore := NewDatasetStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return datasetStore.Upsert(ctx, testDataset("ds-tx", "Tirol", 1))
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM datasets WHERE id = $1", "ds-tx")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	schemaStore := NewSchemaStore(s.db)
	statusStore := NewStatusStore(s.db)
	now := time.Now()

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		ft := &domain.FeatureType{
			DatasetID: "ds-1",
			TypeName:  "flwi:Widmung",
			FetchedAt: now,
			Fields:    []domain.Field{{Name: "OBJECTID", Type: domain.TypeInteger}},
		}
		if err := schemaStore.SaveFeatureType(ctx, ft); err != nil {
			return err
		}
		if err := statusStore.RecordAttempt(ctx, &domain.ServiceStatus{
			DatasetID: "ds-1", URL: "https://example.at/wfs",
			ServiceType: domain.ServiceWFS, LastChecked: now,
			Status: domain.StatusWorking,
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM feature_types")
	s.NoError(err)
	s.Equal(0, count)

	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM service_status")
	s.NoError(err)
	s.Equal(0, count)
}
