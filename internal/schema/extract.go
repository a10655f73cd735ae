package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

// ErrNoFeatures signals a syntactically valid sample payload that contains no
// feature to extract fields from.
var ErrNoFeatures = errors.New("no features returned")

const sampleValueLimit = 100

// geometrySubstrings flag a property as geometric by name.
var geometrySubstrings = []string{"geometry", "geom", "shape", "position"}

// gmlGeometryTags are GML geometry element names that mark a property as
// geometric regardless of its name.
var gmlGeometryTags = []string{"Point", "Polygon", "Surface", "Curve", "MultiSurface"}

// CapabilityType is one feature type advertised by a GetCapabilities
// document.
type CapabilityType struct {
	Name      string
	Prefix    string
	LocalName string
	Title     string
}

// Extractor turns capability and sample payloads into normalized field
// descriptors. The type inferencer is injected so its rule table is built
// once at process start.
type Extractor struct {
	infer *Inferencer
}

func NewExtractor(inf *Inferencer) *Extractor {
	return &Extractor{infer: inf}
}

// Capabilities parses a WFS capabilities document into its feature types.
// WFS 2.0 elements are preferred; if the document declares none, any
// FeatureType element is accepted, which covers WFS 1.1 and servers that
// omit namespaces. A garbled document yields an empty list.
func (e *Extractor) Capabilities(payload []byte) []CapabilityType {
	root := parseXML(payload)

	var elems []*node
	root.walk(func(n *node) bool {
		if n.Local == "FeatureType" && n.Space == "http://www.opengis.net/wfs/2.0" {
			elems = append(elems, n)
		}
		return true
	})
	if len(elems) == 0 {
		root.walk(func(n *node) bool {
			if n.Local == "FeatureType" {
				elems = append(elems, n)
			}
			return true
		})
	}

	var types []CapabilityType
	for _, ft := range elems {
		nameEl := ft.child("Name")
		if nameEl == nil {
			continue
		}
		name := nameEl.text()
		if name == "" {
			continue
		}

		prefix, local := "", name
		if i := strings.Index(name, ":"); i >= 0 {
			prefix, local = name[:i], name[i+1:]
		}

		title := local
		if titleEl := ft.child("Title"); titleEl != nil && titleEl.text() != "" {
			title = titleEl.text()
		}

		types = append(types, CapabilityType{
			Name:      name,
			Prefix:    prefix,
			LocalName: local,
			Title:     title,
		})
	}
	return types
}

// GMLFields extracts field descriptors from a GML sample. The first element
// carrying a GML id attribute is taken as the feature; if none is found, the
// first child of a member container is used. Direct children become fields,
// deduplicated by local name with the first occurrence winning. Garbled XML
// yields an empty list, never an error.
func (e *Extractor) GMLFields(payload []byte) []domain.Field {
	root := parseXML(payload)

	feature := findFeature(root)
	if feature == nil {
		return nil
	}

	var fields []domain.Field
	seen := make(map[string]bool)

	for _, child := range feature.Children {
		local := child.Local
		if seen[local] {
			continue
		}
		seen[local] = true

		isGeom := isGeometryName(local)
		for _, tag := range gmlGeometryTags {
			if strings.Contains(local, tag) {
				isGeom = true
			}
		}

		text := child.text()
		kind := e.infer.Infer(text, isGeom, len(child.Children) > 0)

		sample := truncate(text, sampleValueLimit)
		// An xlink:href marks a code list reference regardless of content.
		if href, ok := child.attr("href", "xlink"); ok && href != "" {
			kind = domain.TypeCodelist
			if sample == "" {
				sample = truncate(href, sampleValueLimit)
			}
		}

		fields = append(fields, domain.Field{
			Name:        local,
			Namespace:   child.Space,
			Type:        kind,
			IsGeometry:  isGeom,
			IsNullable:  true,
			SampleValue: sample,
		})
	}
	return fields
}

func findFeature(root *node) *node {
	var feature *node
	root.walk(func(n *node) bool {
		if strings.Contains(n.Local, "FeatureCollection") || strings.Contains(strings.ToLower(n.Local), "member") {
			return true
		}
		if _, ok := n.attr("id", "gml"); ok {
			feature = n
			return false
		}
		return true
	})
	if feature != nil {
		return feature
	}

	// Some servers omit gml:id; fall back to the first member's child.
	root.walk(func(n *node) bool {
		if strings.Contains(strings.ToLower(n.Local), "member") && len(n.Children) > 0 {
			feature = n.Children[0]
			return false
		}
		return true
	})
	return feature
}

type geoJSONFeature struct {
	Geometry   json.RawMessage `json:"geometry"`
	Properties json.RawMessage `json:"properties"`
}

type geoJSONDoc struct {
	Features []geoJSONFeature `json:"features"`
}

// GeoJSONFields extracts field descriptors from a GeoJSON sample: the keys
// of the first feature's properties in document order, plus a synthetic
// geometry field when a geometry object is present. The sample count covers
// all returned features.
func (e *Extractor) GeoJSONFields(payload []byte) ([]domain.Field, int, error) {
	var doc geoJSONDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, 0, fmt.Errorf("decode geojson: %w", err)
	}
	if len(doc.Features) == 0 {
		return nil, 0, ErrNoFeatures
	}

	first := doc.Features[0]

	var fields []domain.Field
	seen := make(map[string]bool)

	props, err := orderedProperties(first.Properties)
	if err != nil {
		return nil, 0, fmt.Errorf("decode properties: %w", err)
	}
	for _, p := range props {
		if seen[p.key] {
			continue
		}
		seen[p.key] = true

		fields = append(fields, domain.Field{
			Name:        p.key,
			Type:        e.infer.InferJSON(p.value),
			IsGeometry:  isGeometryName(p.key),
			IsNullable:  true,
			SampleValue: truncate(stringify(p.value), sampleValueLimit),
		})
	}

	if hasGeometry(first.Geometry) && !seen["geometry"] {
		fields = append(fields, domain.Field{
			Name:       "geometry",
			Type:       domain.TypeGeometry,
			IsGeometry: true,
			IsNullable: true,
		})
	}

	return fields, len(doc.Features), nil
}

type property struct {
	key   string
	value any
}

// orderedProperties decodes a JSON object keeping document key order, which
// map decoding would lose.
func orderedProperties(raw json.RawMessage) ([]property, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("properties is not an object")
	}

	var props []property
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		props = append(props, property{key: key, value: value})
	}
	return props, nil
}

func hasGeometry(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s != "null"
}

func isGeometryName(name string) bool {
	lower := strings.ToLower(name)
	for _, g := range geometrySubstrings {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
