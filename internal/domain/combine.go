package domain

// DatasetSchema is one dataset's contribution to a combination analysis:
// its identity plus the most recently discovered field set and services.
type DatasetSchema struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Province string        `json:"province"`
	GemScore int           `json:"gem_score"`
	TypeName string        `json:"type_name,omitempty"`
	Theme    string        `json:"theme,omitempty"`
	Services []ServiceType `json:"services"`
	Fields   []string      `json:"fields"`
	WFSURL   string        `json:"wfs_url,omitempty"`
}

// FieldMapping resolves a common field to its canonical concept.
type FieldMapping struct {
	Field       string `json:"field"`
	CanonicalID string `json:"canonical"`
	Description string `json:"description"`
}

// CombinationReport describes how datasets for one concept could be merged
// into an Austria-wide dataset.
type CombinationReport struct {
	Concept          string          `json:"concept,omitempty"`
	ConceptName      string          `json:"name_de,omitempty"`
	Datasets         []DatasetSchema `json:"datasets"`
	TotalDatasets    int             `json:"total_datasets"`
	ProvincesCovered []string        `json:"provinces_covered"`
	MissingProvinces []string        `json:"missing_provinces"`
	CoveragePct      float64         `json:"coverage_pct"`
	DatasetsWithWFS  int             `json:"datasets_with_wfs"`
	AllFields        []string        `json:"all_fields"`
	CommonFields     []string        `json:"common_fields"`
	FieldMappings    []FieldMapping  `json:"field_mappings"`
	Combinable       bool            `json:"combinable"`
}
