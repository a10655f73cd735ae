package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	r := NewRegistry()

	for _, spelling := range []string{"Shape", "SHAPE", "shape", "sHaPe"} {
		match, ok := r.Lookup(spelling)
		require.True(t, ok, "spelling %q", spelling)
		assert.Equal(t, "geometry", match.CanonicalID)
	}
}

func TestLookup_FirstRegistrationWins(t *testing.T) {
	r := NewRegistry()

	// "ValidFrom" is registered under begin_lifespan before any later
	// definition can reuse the spelling.
	match, ok := r.Lookup("validfrom")
	require.True(t, ok)
	assert.Equal(t, "begin_lifespan", match.CanonicalID)
}

func TestLookup_ResolvesProvinceNames(t *testing.T) {
	r := NewRegistry()

	match, ok := r.Lookup("OBJECTID")
	require.True(t, ok)
	assert.Equal(t, "object_id", match.CanonicalID)
	assert.Equal(t, SourceArcGIS, match.Source)
	assert.NotEmpty(t, match.Synonyms)

	match, ok = r.Lookup("inspireId")
	require.True(t, ok)
	assert.Equal(t, "inspire_id", match.CanonicalID)
	assert.Equal(t, SourceInspire, match.Source)
}

func TestLookup_UnknownField(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup("voellig_unbekannt")
	assert.False(t, ok)

	// Exact matching only: prefixed local names do not resolve.
	_, ok = r.Lookup("gis_OBJECTID")
	assert.False(t, ok)
}

func TestFieldsForTheme(t *testing.T) {
	r := NewRegistry()

	fields := r.FieldsForTheme("Protected Sites")
	require.NotEmpty(t, fields)

	ids := make(map[string]bool)
	for _, f := range fields {
		ids[f.ID] = true
		assert.NotEmpty(t, f.KnownNames, "field %s has no known spellings", f.ID)
	}
	assert.True(t, ids["inspire_id"])
	assert.True(t, ids["geometry"])

	assert.Empty(t, r.FieldsForTheme("No Such Theme"))
}

func TestRegistrySize(t *testing.T) {
	r := NewRegistry()
	assert.Greater(t, r.Len(), 30)
}
