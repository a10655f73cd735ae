package schema

import "strings"

// inspireNamespaces lists the namespace prefixes of the INSPIRE schema family
// seen on Austrian services. A feature type in one of these namespaces is
// flagged INSPIRE-conformant.
var inspireNamespaces = map[string]string{
	"wfs":   "http://www.opengis.net/wfs/2.0",
	"wfs11": "http://www.opengis.net/wfs",
	"ows":   "http://www.opengis.net/ows/1.1",
	"xsd":   "http://www.w3.org/2001/XMLSchema",
	"gml":   "http://www.opengis.net/gml/3.2",
	"am":    "http://inspire.ec.europa.eu/schemas/am/4.0",
	"elu":   "http://inspire.ec.europa.eu/schemas/elu/4.0",
	"lu":    "http://inspire.ec.europa.eu/schemas/lu/4.0",
	"ps":    "http://inspire.ec.europa.eu/schemas/ps/4.0",
	"hy":    "http://inspire.ec.europa.eu/schemas/hy/4.0",
	"ad":    "http://inspire.ec.europa.eu/schemas/ad/4.0",
	"cp":    "http://inspire.ec.europa.eu/schemas/cp/4.0",
	"au":    "http://inspire.ec.europa.eu/schemas/au/4.0",
	"gn":    "http://inspire.ec.europa.eu/schemas/gn/4.0",
	"el":    "http://inspire.ec.europa.eu/schemas/el/4.0",
	"base":  "http://inspire.ec.europa.eu/schemas/base/3.3",
}

// themePrefixes maps namespace prefixes to INSPIRE theme names.
var themePrefixes = []struct {
	Prefix string
	Theme  string
}{
	{"am", "Area Management"},
	{"elu", "Existing Land Use"},
	{"lu", "Land Use"},
	{"plu", "Planned Land Use"},
	{"ps", "Protected Sites"},
	{"hy", "Hydrography"},
	{"ad", "Addresses"},
	{"cp", "Cadastral Parcels"},
	{"au", "Administrative Units"},
	{"gn", "Geographical Names"},
	{"el", "Elevation"},
	{"tn", "Transport Networks"},
	{"bu", "Buildings"},
	{"so", "Soil"},
	{"ge", "Geology"},
	{"ef", "Environmental Monitoring"},
	{"sr", "Species Distribution"},
	{"hb", "Habitats and Biotopes"},
}

// IsInspireNamespace reports whether prefix belongs to the known INSPIRE
// schema family.
func IsInspireNamespace(prefix string) bool {
	_, ok := inspireNamespaces[prefix]
	return ok
}

// DetermineTheme derives an INSPIRE theme from a namespace prefix or a
// prefixed type name. Returns "" when no theme matches.
func DetermineTheme(namespace, typeName string) string {
	ns := strings.ToLower(namespace)
	tn := strings.ToLower(typeName)
	for _, tp := range themePrefixes {
		if strings.Contains(ns, tp.Prefix) || strings.HasPrefix(tn, tp.Prefix+":") {
			return tp.Theme
		}
	}
	return ""
}
