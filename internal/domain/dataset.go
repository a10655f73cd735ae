package domain

import "time"

// ServiceType classifies how a dataset exposes its data.
type ServiceType string

const (
	ServiceWFS      ServiceType = "WFS"
	ServiceWMS      ServiceType = "WMS"
	ServiceWMTS     ServiceType = "WMTS"
	ServiceOGCAPI   ServiceType = "OGC-API"
	ServiceAtom     ServiceType = "ATOM"
	ServiceDownload ServiceType = "Download"
	ServiceLink     ServiceType = "Link"
	ServiceUnknown  ServiceType = "unknown"
)

// Provinces is the fixed set of Austrian Bundesländer used for coverage
// computations. National datasets carry an empty province.
var Provinces = []string{
	"Wien",
	"Niederösterreich",
	"Oberösterreich",
	"Salzburg",
	"Tirol",
	"Vorarlberg",
	"Kärnten",
	"Steiermark",
	"Burgenland",
}

type Dataset struct {
	ID         string            `db:"id" json:"id"`
	UUID       string            `db:"uuid" json:"uuid"`
	Title      string            `db:"title" json:"title"`
	Abstract   string            `db:"abstract" json:"abstract"`
	Type       string            `db:"type" json:"type"`
	Province   string            `db:"province" json:"province"`
	Year       string            `db:"year" json:"year,omitempty"`
	IsOpenData bool              `db:"is_open_data" json:"is_open_data"`
	Org        string            `db:"org" json:"org"`
	Contact    string            `db:"contact" json:"contact,omitempty"`
	CreateDate string            `db:"create_date" json:"create_date,omitempty"`
	UpdateDate string            `db:"update_date" json:"update_date,omitempty"`
	GemScore   int               `db:"gem_score" json:"gem_score"`
	Themes     []string          `db:"-" json:"themes,omitempty"`
	Topics     []string          `db:"-" json:"topics,omitempty"`
	Concepts   []string          `db:"-" json:"concepts,omitempty"`
	Keywords   []string          `db:"-" json:"keywords,omitempty"`
	Services   []ServiceEndpoint `db:"-" json:"services,omitempty"`
	IngestedAt time.Time         `db:"ingested_at" json:"ingested_at"`
}

// ServiceEndpoint is one web service exposed by one dataset. Immutable once
// discovered from source metadata; a dataset may expose several.
type ServiceEndpoint struct {
	ID          int64       `db:"id" json:"-"`
	DatasetID   string      `db:"dataset_id" json:"-"`
	URL         string      `db:"url" json:"url"`
	ServiceType ServiceType `db:"service_type" json:"service_type"`
	Protocol    string      `db:"protocol" json:"protocol,omitempty"`
}
