package domain

// CanonicalField is a cross-regional attribute concept. Statically defined,
// versioned with the mapping table, never mutated at runtime.
type CanonicalField struct {
	ID            string    `json:"id"`
	Type          FieldType `json:"type"`
	DescriptionDE string    `json:"description_de"`
	DescriptionEN string    `json:"description_en"`
}

// Synonym binds a locally-used field name to a canonical field. Source tags
// the origin convention: a province name, or one of the pseudo-sources
// "_inspire", "_arcgis", "_at", "_ehyd".
type Synonym struct {
	CanonicalID string `json:"canonical"`
	Source      string `json:"source"`
	FieldName   string `json:"field_name"`
}

// CanonicalMatch is a resolved synonym lookup.
type CanonicalMatch struct {
	CanonicalID string    `json:"canonical"`
	Type        FieldType `json:"type"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Synonyms    []Synonym `json:"synonyms"`
}

// ThemeField is one canonical field expected for an INSPIRE theme, enriched
// with its known local spellings for display.
type ThemeField struct {
	CanonicalField
	KnownNames map[string][]string `json:"known_names"`
}
