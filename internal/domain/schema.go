package domain

import "time"

// FieldType is the semantic type inferred from a sample value.
type FieldType string

const (
	TypeString   FieldType = "string"
	TypeInteger  FieldType = "integer"
	TypeDecimal  FieldType = "decimal"
	TypeDateTime FieldType = "dateTime"
	TypeBoolean  FieldType = "boolean"
	TypeGeometry FieldType = "geometry"
	TypeComplex  FieldType = "complex"
	TypeCodelist FieldType = "codelist"

	// Types used only by the static canonical field registry.
	TypeDate      FieldType = "date"
	TypePeriod    FieldType = "period"
	TypeReference FieldType = "reference"
)

// FeatureType is a named resource exposed by a service: a WFS type name or an
// OGC-API collection id. Only created after a successful capability fetch.
type FeatureType struct {
	ID           int64     `db:"id" json:"-"`
	ServiceID    int64     `db:"service_id" json:"-"`
	DatasetID    string    `db:"dataset_id" json:"dataset_id"`
	TypeName     string    `db:"type_name" json:"type_name"`
	Namespace    string    `db:"type_namespace" json:"namespace,omitempty"`
	Title        string    `db:"title" json:"title"`
	IsInspire    bool      `db:"is_inspire" json:"is_inspire"`
	InspireTheme string    `db:"inspire_theme" json:"inspire_theme,omitempty"`
	FetchedAt    time.Time `db:"fetched_at" json:"fetched_at"`
	Fields       []Field   `db:"-" json:"fields"`
}

// FieldCoverage is one row of the cross-province field variation report: the
// distinct field names one feature type exposes in one province.
type FieldCoverage struct {
	Theme    string   `json:"theme"`
	TypeName string   `json:"type_name"`
	Province string   `json:"province"`
	Fields   []string `json:"fields"`
}

// Field is one attribute discovered on a feature type. Name uniqueness is per
// feature type; the first occurrence in a sample wins.
type Field struct {
	ID            int64     `db:"id" json:"-"`
	FeatureTypeID int64     `db:"feature_type_id" json:"-"`
	Name          string    `db:"field_name" json:"name"`
	Namespace     string    `db:"field_namespace" json:"namespace,omitempty"`
	Type          FieldType `db:"field_type" json:"type"`
	IsGeometry    bool      `db:"is_geometry" json:"is_geometry"`
	IsNullable    bool      `db:"is_nullable" json:"is_nullable"`
	SampleValue   string    `db:"sample_value" json:"sample_value,omitempty"`
}
