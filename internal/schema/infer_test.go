package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

func TestInferText(t *testing.T) {
	inf := NewInferencer()

	tests := []struct {
		value string
		want  domain.FieldType
	}{
		{"42", domain.TypeInteger},
		{"-17", domain.TypeInteger},
		{"3.14", domain.TypeDecimal},
		{"-0.5", domain.TypeDecimal},
		{"2024-01-01", domain.TypeDateTime},
		{"2024-01-01T12:00:00Z", domain.TypeDateTime},
		{"true", domain.TypeBoolean},
		{"FALSE", domain.TypeBoolean},
		{"Bauland-Wohngebiet", domain.TypeString},
		{"1050", domain.TypeInteger},
	}

	for _, tt := range tests {
		got, _ := inf.InferText(tt.value)
		assert.Equal(t, tt.want, got, "value %q", tt.value)
	}
}

func TestInferText_DateBeatsNothingElse(t *testing.T) {
	inf := NewInferencer()

	// A leading date shape must win even though the string contains digits
	// that could read as numbers.
	got, ok := inf.InferText("2024-01-01")
	assert.True(t, ok)
	assert.Equal(t, domain.TypeDateTime, got)
}

func TestInfer_StructuralFallbacks(t *testing.T) {
	inf := NewInferencer()

	assert.Equal(t, domain.TypeGeometry, inf.Infer("", true, true))
	assert.Equal(t, domain.TypeComplex, inf.Infer("", false, true))
	assert.Equal(t, domain.TypeString, inf.Infer("", false, false))
	assert.Equal(t, domain.TypeInteger, inf.Infer("7", false, true))
}

func TestInferJSON(t *testing.T) {
	inf := NewInferencer()

	assert.Equal(t, domain.TypeInteger, inf.InferJSON(float64(12)))
	assert.Equal(t, domain.TypeDecimal, inf.InferJSON(12.5))
	assert.Equal(t, domain.TypeBoolean, inf.InferJSON(true))
	assert.Equal(t, domain.TypeDateTime, inf.InferJSON("2023-06-15"))
	assert.Equal(t, domain.TypeString, inf.InferJSON("Innsbruck"))
	assert.Equal(t, domain.TypeComplex, inf.InferJSON(map[string]any{"a": 1}))
	assert.Equal(t, domain.TypeComplex, inf.InferJSON([]any{1, 2}))
	assert.Equal(t, domain.TypeString, inf.InferJSON(nil))
}
