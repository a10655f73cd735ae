package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

type DatasetStore struct {
	db *sqlx.DB
}

func NewDatasetStore(db *sqlx.DB) *DatasetStore {
	return &DatasetStore{db: db}
}

// Upsert writes one dataset and its tag tables. Re-ingesting a record
// replaces its topics, concepts, keywords and themes wholesale.
func (s *DatasetStore) Upsert(ctx context.Context, ds *domain.Dataset) error {
	ex := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO datasets (
			id, uuid, title, abstract, type, province, year, is_open_data,
			org, contact, create_date, update_date, gem_score, ingested_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (id) DO UPDATE SET
			uuid = EXCLUDED.uuid,
			title = EXCLUDED.title,
			abstract = EXCLUDED.abstract,
			type = EXCLUDED.type,
			province = EXCLUDED.province,
			year = EXCLUDED.year,
			is_open_data = EXCLUDED.is_open_data,
			org = EXCLUDED.org,
			contact = EXCLUDED.contact,
			create_date = EXCLUDED.create_date,
			update_date = EXCLUDED.update_date,
			gem_score = EXCLUDED.gem_score,
			ingested_at = EXCLUDED.ingested_at`

	_, err := ex.ExecContext(ctx, query,
		ds.ID,
		ds.UUID,
		ds.Title,
		ds.Abstract,
		ds.Type,
		ds.Province,
		ds.Year,
		ds.IsOpenData,
		ds.Org,
		ds.Contact,
		ds.CreateDate,
		ds.UpdateDate,
		ds.GemScore,
		ds.IngestedAt,
	)
	if err != nil {
		return err
	}

	if err := replaceTags(ctx, ex, "dataset_themes", "theme", ds.ID, ds.Themes); err != nil {
		return err
	}
	if err := replaceTags(ctx, ex, "dataset_topics", "topic", ds.ID, ds.Topics); err != nil {
		return err
	}
	if err := replaceTags(ctx, ex, "dataset_keywords", "keyword", ds.ID, ds.Keywords); err != nil {
		return err
	}
	if err := replaceTags(ctx, ex, "dataset_concepts", "concept_id", ds.ID, ds.Concepts); err != nil {
		return err
	}

	return s.upsertServices(ctx, ex, ds.ID, ds.Services)
}

func replaceTags(ctx context.Context, ex sqlx.ExtContext, table, column, datasetID string, values []string) error {
	_, err := ex.ExecContext(ctx,
		"DELETE FROM "+table+" WHERE dataset_id = $1",
		datasetID,
	)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO " + table + " (dataset_id, " + column + ") VALUES ")
	valueArgs := make([]interface{}, 0, len(values)+1)
	valueArgs = append(valueArgs, datasetID)

	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, v)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = ex.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

func (s *DatasetStore) upsertServices(ctx context.Context, ex sqlx.ExtContext, datasetID string, services []domain.ServiceEndpoint) error {
	for _, svc := range services {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO dataset_services (dataset_id, url, service_type, protocol)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (dataset_id, url) DO UPDATE SET
				service_type = EXCLUDED.service_type,
				protocol = EXCLUDED.protocol`,
			datasetID, svc.URL, svc.ServiceType, svc.Protocol,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Get loads one dataset with its tags and services.
func (s *DatasetStore) Get(ctx context.Context, id string) (*domain.Dataset, error) {
	var ds domain.Dataset
	query := `
		SELECT id, uuid, title, abstract, type, province, year, is_open_data,
		       org, contact, create_date, update_date, gem_score, ingested_at
		FROM datasets
		WHERE id = $1`

	if err := s.db.GetContext(ctx, &ds, query, id); err != nil {
		return nil, err
	}
	if err := s.loadTags(ctx, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *DatasetStore) loadTags(ctx context.Context, ds *domain.Dataset) error {
	for _, t := range []struct {
		table  string
		column string
		dest   *[]string
	}{
		{"dataset_themes", "theme", &ds.Themes},
		{"dataset_topics", "topic", &ds.Topics},
		{"dataset_keywords", "keyword", &ds.Keywords},
		{"dataset_concepts", "concept_id", &ds.Concepts},
	} {
		err := s.db.SelectContext(ctx, t.dest,
			"SELECT "+t.column+" FROM "+t.table+" WHERE dataset_id = $1 ORDER BY "+t.column,
			ds.ID,
		)
		if err != nil {
			return err
		}
	}

	return s.db.SelectContext(ctx, &ds.Services, `
		SELECT id, dataset_id, url, service_type, protocol
		FROM dataset_services
		WHERE dataset_id = $1
		ORDER BY id`,
		ds.ID,
	)
}

// Search finds datasets whose title, abstract or keywords match the query,
// optionally restricted to one province, best gem score first.
func (s *DatasetStore) Search(ctx context.Context, query, province string, limit int) ([]domain.Dataset, error) {
	if limit <= 0 {
		limit = 20
	}

	sql := `
		SELECT DISTINCT d.id, d.uuid, d.title, d.abstract, d.type, d.province,
		       d.year, d.is_open_data, d.org, d.contact, d.create_date,
		       d.update_date, d.gem_score, d.ingested_at
		FROM datasets d
		LEFT JOIN dataset_keywords k ON k.dataset_id = d.id
		WHERE (d.title ILIKE $1 OR d.abstract ILIKE $1 OR k.keyword ILIKE $1)`
	args := []interface{}{"%" + query + "%"}

	if province != "" {
		sql += " AND d.province = $2"
		args = append(args, province)
	}
	sql += " ORDER BY d.gem_score DESC, d.id LIMIT " + strconv.Itoa(limit)

	var result []domain.Dataset
	if err := s.db.SelectContext(ctx, &result, sql, args...); err != nil {
		return nil, err
	}
	for i := range result {
		if err := s.loadTags(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// IDsByConcept returns the ids of every dataset tagged with the concept.
func (s *DatasetStore) IDsByConcept(ctx context.Context, conceptID string) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, `
		SELECT dc.dataset_id
		FROM dataset_concepts dc
		JOIN datasets d ON d.id = dc.dataset_id
		WHERE dc.concept_id = $1
		ORDER BY d.gem_score DESC, d.id`,
		conceptID,
	)
	return ids, err
}

// Schemas assembles the combination view for the given datasets: identity,
// discovered fields of the first feature type, service types and a WFS
// endpoint if one exists.
func (s *DatasetStore) Schemas(ctx context.Context, ids []string) ([]domain.DatasetSchema, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []struct {
		ID       string `db:"id"`
		Title    string `db:"title"`
		Province string `db:"province"`
		GemScore int    `db:"gem_score"`
	}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, title, province, gem_score
		FROM datasets
		WHERE id = ANY($1)
		ORDER BY gem_score DESC, id`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DatasetSchema, 0, len(rows))
	for _, row := range rows {
		schema := domain.DatasetSchema{
			ID:       row.ID,
			Title:    row.Title,
			Province: row.Province,
			GemScore: row.GemScore,
		}

		var svcs []struct {
			URL         string             `db:"url"`
			ServiceType domain.ServiceType `db:"service_type"`
		}
		err := s.db.SelectContext(ctx, &svcs, `
			SELECT url, service_type FROM dataset_services
			WHERE dataset_id = $1 ORDER BY id`,
			row.ID,
		)
		if err != nil {
			return nil, err
		}
		seen := make(map[domain.ServiceType]bool)
		for _, svc := range svcs {
			if !seen[svc.ServiceType] {
				seen[svc.ServiceType] = true
				schema.Services = append(schema.Services, svc.ServiceType)
			}
			if svc.ServiceType == domain.ServiceWFS && schema.WFSURL == "" {
				schema.WFSURL = svc.URL
			}
		}

		var ft struct {
			ID           int64  `db:"id"`
			TypeName     string `db:"type_name"`
			InspireTheme string `db:"inspire_theme"`
		}
		err = s.db.GetContext(ctx, &ft, `
			SELECT id, type_name, inspire_theme
			FROM feature_types
			WHERE dataset_id = $1
			ORDER BY id
			LIMIT 1`,
			row.ID,
		)
		if err == nil {
			schema.TypeName = ft.TypeName
			schema.Theme = ft.InspireTheme
			err = s.db.SelectContext(ctx, &schema.Fields, `
				SELECT field_name FROM fields
				WHERE feature_type_id = $1
				ORDER BY id`,
				ft.ID,
			)
			if err != nil {
				return nil, err
			}
		} else if !isNoRows(err) {
			return nil, err
		}

		result = append(result, schema)
	}
	return result, nil
}
