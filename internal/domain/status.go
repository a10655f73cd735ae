package domain

import "time"

// ServiceCheckStatus classifies the outcome of the most recent discovery
// attempt against a service URL.
type ServiceCheckStatus string

const (
	StatusWorking ServiceCheckStatus = "working"
	StatusError   ServiceCheckStatus = "error"
	StatusTimeout ServiceCheckStatus = "timeout"
	StatusInvalid ServiceCheckStatus = "invalid"
)

// ServiceStatus is the per-URL discovery record. Upserted on every attempt,
// keyed by URL, never deleted. The stored field list is only replaced by a
// non-empty one, so a known-good schema survives transient failures.
type ServiceStatus struct {
	ID           int64              `db:"id" json:"-"`
	DatasetID    string             `db:"dataset_id" json:"dataset_id"`
	URL          string             `db:"service_url" json:"url"`
	ServiceType  ServiceType        `db:"service_type" json:"service_type"`
	LastChecked  time.Time          `db:"last_checked" json:"last_checked"`
	Status       ServiceCheckStatus `db:"status" json:"status"`
	SampleFields []string           `db:"-" json:"sample_fields,omitempty"`
	ErrorMessage string             `db:"error_message" json:"error,omitempty"`
	CheckCount   int                `db:"check_count" json:"check_count"`
	SuccessCount int                `db:"success_count" json:"success_count"`
}

// InspectionTarget is one service selected for a discovery batch.
type InspectionTarget struct {
	ServiceID   int64       `db:"service_id"`
	DatasetID   string      `db:"dataset_id"`
	URL         string      `db:"url"`
	ServiceType ServiceType `db:"service_type"`
	Title       string      `db:"title"`
}

// DiscoveryStats summarises one discovery batch.
type DiscoveryStats struct {
	Selected int
	Success  int
	Failed   int
	Timeout  int
	Duration time.Duration
}
