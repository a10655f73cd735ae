package postgres

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

type StatusStore struct {
	db *sqlx.DB
}

func NewStatusStore(db *sqlx.DB) *StatusStore {
	return &StatusStore{db: db}
}

// RecordAttempt upserts the per-URL discovery record. check_count always
// increments, success_count only on a working result, and the stored field
// list is kept unless the new attempt produced a non-empty one.
func (s *StatusStore) RecordAttempt(ctx context.Context, st *domain.ServiceStatus) error {
	ex := GetExecutor(ctx, s.db)

	fields := st.SampleFields
	if fields == nil {
		fields = []string{}
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	success := 0
	if st.Status == domain.StatusWorking {
		success = 1
	}

	query := `
		INSERT INTO service_status (
			dataset_id, service_url, service_type, last_checked, status,
			sample_fields, error_message, check_count, success_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8)
		ON CONFLICT (service_url) DO UPDATE SET
			dataset_id = EXCLUDED.dataset_id,
			service_type = EXCLUDED.service_type,
			last_checked = EXCLUDED.last_checked,
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message,
			sample_fields = CASE
				WHEN EXCLUDED.sample_fields <> '[]'::jsonb THEN EXCLUDED.sample_fields
				ELSE service_status.sample_fields
			END,
			check_count = service_status.check_count + 1,
			success_count = service_status.success_count + EXCLUDED.success_count`

	_, err = ex.ExecContext(ctx, query,
		st.DatasetID,
		st.URL,
		st.ServiceType,
		st.LastChecked,
		st.Status,
		fieldsJSON,
		st.ErrorMessage,
		success,
	)
	return err
}

type statusRow struct {
	ID           int64                     `db:"id"`
	DatasetID    string                    `db:"dataset_id"`
	URL          string                    `db:"service_url"`
	ServiceType  domain.ServiceType        `db:"service_type"`
	LastChecked  time.Time                 `db:"last_checked"`
	Status       domain.ServiceCheckStatus `db:"status"`
	SampleFields []byte                    `db:"sample_fields"`
	ErrorMessage string                    `db:"error_message"`
	CheckCount   int                       `db:"check_count"`
	SuccessCount int                       `db:"success_count"`
}

func (r statusRow) toDomain() (domain.ServiceStatus, error) {
	st := domain.ServiceStatus{
		ID:           r.ID,
		DatasetID:    r.DatasetID,
		URL:          r.URL,
		ServiceType:  r.ServiceType,
		LastChecked:  r.LastChecked,
		Status:       r.Status,
		ErrorMessage: r.ErrorMessage,
		CheckCount:   r.CheckCount,
		SuccessCount: r.SuccessCount,
	}
	if len(r.SampleFields) > 0 {
		if err := json.Unmarshal(r.SampleFields, &st.SampleFields); err != nil {
			return st, err
		}
	}
	return st, nil
}

// ForDataset lists a dataset's service records, working first, most
// recently checked first within each group.
func (s *StatusStore) ForDataset(ctx context.Context, datasetID string) ([]domain.ServiceStatus, error) {
	var rows []statusRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, dataset_id, service_url, service_type, last_checked,
		       status, sample_fields, error_message, check_count, success_count
		FROM service_status
		WHERE dataset_id = $1
		ORDER BY (status = 'working') DESC, last_checked DESC`,
		datasetID,
	)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ServiceStatus, 0, len(rows))
	for _, r := range rows {
		st, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, nil
}

// Get loads one record by service URL.
func (s *StatusStore) Get(ctx context.Context, url string) (*domain.ServiceStatus, error) {
	var row statusRow
	err := s.db.GetContext(ctx, &row, `
		SELECT id, dataset_id, service_url, service_type, last_checked,
		       status, sample_fields, error_message, check_count, success_count
		FROM service_status
		WHERE service_url = $1`,
		url,
	)
	if err != nil {
		return nil, err
	}
	st, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// DueForInspection selects service endpoints for the next discovery batch:
// catalog services of the requested types, skipping URLs already checked
// within the freshness window. OGC-API endpoints come before WFS, then the
// best-scored datasets first.
func (s *StatusStore) DueForInspection(ctx context.Context, types []domain.ServiceType, freshness time.Duration, limit int) ([]domain.InspectionTarget, error) {
	if limit <= 0 {
		limit = 50
	}
	typeNames := make([]string, 0, len(types))
	for _, t := range types {
		typeNames = append(typeNames, string(t))
	}

	var targets []domain.InspectionTarget
	err := s.db.SelectContext(ctx, &targets, `
		SELECT ds.id AS service_id, ds.dataset_id, ds.url, ds.service_type, d.title
		FROM dataset_services ds
		JOIN datasets d ON d.id = ds.dataset_id
		LEFT JOIN service_status st ON st.service_url = ds.url
		WHERE ds.service_type = ANY($1)
		  AND (st.id IS NULL OR st.last_checked < $2)
		ORDER BY
			CASE ds.service_type
				WHEN 'OGC-API' THEN 1
				WHEN 'WFS' THEN 2
				ELSE 3
			END,
			d.gem_score DESC,
			ds.url
		LIMIT `+strconv.Itoa(limit),
		pq.Array(typeNames),
		time.Now().Add(-freshness),
	)
	return targets, err
}

// Summary counts recorded services by status.
func (s *StatusStore) Summary(ctx context.Context) (map[domain.ServiceCheckStatus]int, error) {
	var rows []struct {
		Status domain.ServiceCheckStatus `db:"status"`
		Count  int                       `db:"count"`
	}
	err := s.db.SelectContext(ctx, &rows,
		"SELECT status, count(*) AS count FROM service_status GROUP BY status")
	if err != nil {
		return nil, err
	}

	summary := make(map[domain.ServiceCheckStatus]int, len(rows))
	for _, r := range rows {
		summary[r.Status] = r.Count
	}
	return summary, nil
}

// WorkingCount reports how many recorded services are currently working.
func (s *StatusStore) WorkingCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		"SELECT count(*) FROM service_status WHERE status = 'working'")
	return n, err
}
