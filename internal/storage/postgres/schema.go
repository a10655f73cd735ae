package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

type SchemaStore struct {
	db *sqlx.DB
}

func NewSchemaStore(db *sqlx.DB) *SchemaStore {
	return &SchemaStore{db: db}
}

// SaveFeatureType upserts a feature type and replaces its field list. Runs
// against the ambient transaction when one is present, so a discovery worker
// can persist the schema and the status record atomically.
func (s *SchemaStore) SaveFeatureType(ctx context.Context, ft *domain.FeatureType) error {
	ex := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO feature_types (
			service_id, dataset_id, type_name, type_namespace, title,
			is_inspire, inspire_theme, fetched_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (dataset_id, type_name) DO UPDATE SET
			service_id = EXCLUDED.service_id,
			type_namespace = EXCLUDED.type_namespace,
			title = EXCLUDED.title,
			is_inspire = EXCLUDED.is_inspire,
			inspire_theme = EXCLUDED.inspire_theme,
			fetched_at = EXCLUDED.fetched_at
		RETURNING id`

	var id int64
	err := ex.QueryRowxContext(ctx, query,
		ft.ServiceID,
		ft.DatasetID,
		ft.TypeName,
		ft.Namespace,
		ft.Title,
		ft.IsInspire,
		ft.InspireTheme,
		ft.FetchedAt,
	).Scan(&id)
	if err != nil {
		return err
	}
	ft.ID = id

	_, err = ex.ExecContext(ctx, "DELETE FROM fields WHERE feature_type_id = $1", id)
	if err != nil {
		return err
	}

	if len(ft.Fields) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO fields (
		feature_type_id, field_name, field_namespace, field_type,
		is_geometry, is_nullable, sample_value
	) VALUES `)
	valueArgs := make([]interface{}, 0, len(ft.Fields)*6+1)
	valueArgs = append(valueArgs, id)

	for i, f := range ft.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i*6 + 2
		sb.WriteString("($1")
		for j := 0; j < 6; j++ {
			sb.WriteString(", $")
			sb.WriteString(strconv.Itoa(base + j))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs, f.Name, f.Namespace, f.Type, f.IsGeometry, f.IsNullable, f.SampleValue)
	}
	sb.WriteString(" ON CONFLICT (feature_type_id, field_name) DO NOTHING")

	_, err = ex.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// FeatureTypesForDataset loads every discovered feature type with its fields.
func (s *SchemaStore) FeatureTypesForDataset(ctx context.Context, datasetID string) ([]domain.FeatureType, error) {
	var types []domain.FeatureType
	err := s.db.SelectContext(ctx, &types, `
		SELECT id, service_id, dataset_id, type_name, type_namespace, title,
		       is_inspire, inspire_theme, fetched_at
		FROM feature_types
		WHERE dataset_id = $1
		ORDER BY id`,
		datasetID,
	)
	if err != nil {
		return nil, err
	}

	for i := range types {
		err := s.db.SelectContext(ctx, &types[i].Fields, `
			SELECT id, feature_type_id, field_name, field_namespace,
			       field_type, is_geometry, is_nullable, sample_value
			FROM fields
			WHERE feature_type_id = $1
			ORDER BY id`,
			types[i].ID,
		)
		if err != nil {
			return nil, err
		}
	}
	return types, nil
}

// DatasetsWithField returns dataset ids exposing a field with the given name,
// case-insensitive.
func (s *SchemaStore) DatasetsWithField(ctx context.Context, fieldName string) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, `
		SELECT DISTINCT ft.dataset_id
		FROM fields f
		JOIN feature_types ft ON ft.id = f.feature_type_id
		WHERE lower(f.field_name) = lower($1)
		ORDER BY ft.dataset_id`,
		fieldName,
	)
	return ids, err
}

// FieldCoverage builds the cross-province variation report: for every themed
// feature type, the distinct field names it exposes per province. Types whose
// samples never yielded fields appear with an empty list.
func (s *SchemaStore) FieldCoverage(ctx context.Context) ([]domain.FieldCoverage, error) {
	var rows []struct {
		Theme    string         `db:"theme"`
		TypeName string         `db:"type_name"`
		Province string         `db:"province"`
		Fields   pq.StringArray `db:"fields"`
	}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT ft.inspire_theme AS theme, ft.type_name, d.province,
		       COALESCE(
		           array_agg(DISTINCT f.field_name) FILTER (WHERE f.field_name IS NOT NULL),
		           '{}'
		       ) AS fields
		FROM feature_types ft
		JOIN datasets d ON d.id = ft.dataset_id
		LEFT JOIN fields f ON f.feature_type_id = ft.id
		WHERE ft.inspire_theme <> ''
		GROUP BY ft.inspire_theme, ft.type_name, d.province
		ORDER BY ft.inspire_theme, ft.type_name, d.province`,
	)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FieldCoverage, 0, len(rows))
	for _, r := range rows {
		result = append(result, domain.FieldCoverage{
			Theme:    r.Theme,
			TypeName: r.TypeName,
			Province: r.Province,
			Fields:   []string(r.Fields),
		})
	}
	return result, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
