package schema

import (
	"math"
	"regexp"
	"strings"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

// Inferencer classifies raw sample values into semantic field types using an
// ordered rule list. The order is a deliberate tie-break: "2024-01-01" must
// never be read as a number, so the stricter numeric patterns run first and
// the date pattern anchors on its own shape.
type Inferencer struct {
	rules []inferRule
}

type inferRule struct {
	re   *regexp.Regexp
	kind domain.FieldType
}

func NewInferencer() *Inferencer {
	return &Inferencer{
		rules: []inferRule{
			{regexp.MustCompile(`^-?\d+$`), domain.TypeInteger},
			{regexp.MustCompile(`^-?\d+\.\d+$`), domain.TypeDecimal},
			{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`), domain.TypeDateTime},
		},
	}
}

// InferText classifies a textual sample value. ok is false when no pattern
// matched and the caller should fall back on structural signals.
func (inf *Inferencer) InferText(text string) (domain.FieldType, bool) {
	for _, r := range inf.rules {
		if r.re.MatchString(text) {
			return r.kind, true
		}
	}
	switch strings.ToLower(text) {
	case "true", "false":
		return domain.TypeBoolean, true
	}
	return domain.TypeString, false
}

// Infer combines the text rules with structural signals from an XML element:
// geometry flag, then element children (complex), then the string default.
func (inf *Inferencer) Infer(text string, isGeometry, hasChildren bool) domain.FieldType {
	if text != "" {
		if kind, ok := inf.InferText(text); ok {
			return kind
		}
		return domain.TypeString
	}
	if isGeometry {
		return domain.TypeGeometry
	}
	if hasChildren {
		return domain.TypeComplex
	}
	return domain.TypeString
}

// InferJSON classifies a decoded GeoJSON property value.
func (inf *Inferencer) InferJSON(v any) domain.FieldType {
	switch val := v.(type) {
	case bool:
		return domain.TypeBoolean
	case float64:
		if val == math.Trunc(val) {
			return domain.TypeInteger
		}
		return domain.TypeDecimal
	case string:
		if kind, ok := inf.InferText(val); ok {
			return kind
		}
		return domain.TypeString
	case map[string]any, []any:
		return domain.TypeComplex
	default:
		return domain.TypeString
	}
}
