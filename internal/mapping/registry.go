// Package mapping holds the cross-regional canonical field registry: a
// static many-to-one model from locally-used field names (per province or
// vendor convention) onto province-agnostic concepts.
package mapping

import (
	"strings"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

// Registry resolves local field names to canonical concepts. It is immutable
// after construction and safe for concurrent use.
//
// Lookup is case-insensitive exact matching only: compound or prefixed local
// names will not resolve, a known source of false negatives. The registry may
// contain the same spelling under different canonical ids (e.g. "ValidFrom");
// lookup returns the first registration, in table order.
type Registry struct {
	fields   map[string]domain.CanonicalField
	synonyms []domain.Synonym
	byID     map[string][]domain.Synonym
	profiles map[string][]string
}

func NewRegistry() *Registry {
	r := &Registry{
		fields:   make(map[string]domain.CanonicalField, len(definitions)),
		byID:     make(map[string][]domain.Synonym, len(definitions)),
		profiles: make(map[string][]string, len(themeProfiles)),
	}

	for _, def := range definitions {
		r.fields[def.ID] = domain.CanonicalField{
			ID:            def.ID,
			Type:          def.Type,
			DescriptionDE: def.DE,
			DescriptionEN: def.EN,
		}
		for _, m := range def.Mappings {
			for _, name := range m.Names {
				syn := domain.Synonym{
					CanonicalID: def.ID,
					Source:      m.Source,
					FieldName:   name,
				}
				r.synonyms = append(r.synonyms, syn)
				r.byID[def.ID] = append(r.byID[def.ID], syn)
			}
		}
	}

	for _, tp := range themeProfiles {
		r.profiles[tp.Theme] = tp.Fields
	}

	return r
}

// Len returns the number of canonical fields.
func (r *Registry) Len() int { return len(r.fields) }

// Lookup resolves a discovered field name to its canonical concept by
// case-insensitive exact equality. The first matching synonym in
// registration order wins.
func (r *Registry) Lookup(fieldName string) (domain.CanonicalMatch, bool) {
	for _, syn := range r.synonyms {
		if strings.EqualFold(syn.FieldName, fieldName) {
			cf := r.fields[syn.CanonicalID]
			return domain.CanonicalMatch{
				CanonicalID: cf.ID,
				Type:        cf.Type,
				Description: cf.DescriptionDE,
				Source:      syn.Source,
				Synonyms:    r.byID[cf.ID],
			}, true
		}
	}
	return domain.CanonicalMatch{}, false
}

// FieldsForTheme returns the canonical fields expected for an INSPIRE theme,
// each enriched with its known local spellings grouped by source.
func (r *Registry) FieldsForTheme(theme string) []domain.ThemeField {
	ids, ok := r.profiles[theme]
	if !ok {
		return nil
	}

	result := make([]domain.ThemeField, 0, len(ids))
	for _, id := range ids {
		cf, ok := r.fields[id]
		if !ok {
			continue
		}
		known := make(map[string][]string)
		for _, syn := range r.byID[id] {
			known[syn.Source] = append(known[syn.Source], syn.FieldName)
		}
		result = append(result, domain.ThemeField{
			CanonicalField: cf,
			KnownNames:     known,
		})
	}
	return result
}
