package mapping

import "github.com/raffopenssh/inspire-austria/internal/domain"

// Pseudo-sources for synonyms that are not tied to one province.
const (
	SourceInspire = "_inspire" // standard INSPIRE schema names
	SourceArcGIS  = "_arcgis"  // ArcGIS REST conventions
	SourceAustria = "_at"      // Austria-wide technical fields
	SourceEHYD    = "_ehyd"    // federal hydrographic service
)

type sourceNames struct {
	Source string
	Names  []string
}

type definition struct {
	ID       string
	Type     domain.FieldType
	DE       string
	EN       string
	Mappings []sourceNames
}

// definitions is the versioned canonical field table. Order matters: synonym
// lookup resolves ambiguous names to the first registration.
var definitions = []definition{
	// Common INSPIRE fields.
	{
		ID: "inspire_id", Type: domain.TypeString,
		DE: "INSPIRE Identifikator", EN: "INSPIRE Identifier",
		Mappings: []sourceNames{
			{SourceInspire, []string{"inspireId", "inspireID", "INSPIREID"}},
			{"Oberösterreich", []string{"InspireID", "InspireId"}},
		},
	},
	{
		ID: "geometry", Type: domain.TypeGeometry,
		DE: "Geometrie", EN: "Geometry",
		Mappings: []sourceNames{
			{SourceInspire, []string{"geometry", "geometry2D", "location"}},
			{"Oberösterreich", []string{"Shape", "SHAPE"}},
			{SourceArcGIS, []string{"Shape", "SHAPE", "geom"}},
		},
	},
	{
		ID: "name", Type: domain.TypeString,
		DE: "Name/Bezeichnung", EN: "Name",
		Mappings: []sourceNames{
			{SourceInspire, []string{"name", "siteName", "geographicalName"}},
			{"Oberösterreich", []string{"Name", "NAME", "Bezeichnung"}},
		},
	},
	{
		ID: "begin_lifespan", Type: domain.TypeDateTime,
		DE: "Gültig ab", EN: "Valid from",
		Mappings: []sourceNames{
			{SourceInspire, []string{"beginLifespanVersion", "beginLifeSpanVersion", "validFrom"}},
			{"Oberösterreich", []string{"ValidFrom", "GueltigAb"}},
		},
	},

	// Area management / protected sites.
	{
		ID: "zone_type", Type: domain.TypeCodelist,
		DE: "Zonentyp", EN: "Zone Type",
		Mappings: []sourceNames{
			{SourceInspire, []string{"zoneType", "siteDesignation", "siteProtectionClassification"}},
		},
	},
	{
		ID: "legal_basis", Type: domain.TypeString,
		DE: "Rechtsgrundlage", EN: "Legal Basis",
		Mappings: []sourceNames{
			{SourceInspire, []string{"legalBasis", "legalFoundationDocument"}},
			{"Oberösterreich", []string{"OfficialDocument", "Richtlinie"}},
		},
	},
	{
		ID: "legal_date", Type: domain.TypeDate,
		DE: "Rechtskraft-Datum", EN: "Legal Foundation Date",
		Mappings: []sourceNames{
			{SourceInspire, []string{"legalFoundationDate"}},
			{"Oberösterreich", []string{"ValidFrom"}},
		},
	},
	{
		ID: "authority", Type: domain.TypeString,
		DE: "Zuständige Behörde", EN: "Competent Authority",
		Mappings: []sourceNames{
			{SourceInspire, []string{"competentAuthority"}},
		},
	},

	// Land use / zoning.
	{
		ID: "land_use_type", Type: domain.TypeCodelist,
		DE: "Nutzungsart", EN: "Land Use Type",
		Mappings: []sourceNames{
			{SourceInspire, []string{"hilucsLandUse", "specificLandUse"}},
			{"Oberösterreich", []string{"RegulationNature", "SpecificRegulationNature", "KENNZAHL"}},
			{"Tirol", []string{"WIDMUNG", "Widmungsart"}},
		},
	},
	{
		ID: "supplementary_regulation", Type: domain.TypeString,
		DE: "Ergänzende Bestimmung", EN: "Supplementary Regulation",
		Mappings: []sourceNames{
			{SourceInspire, []string{"supplementaryRegulation"}},
			{"Oberösterreich", []string{"SupplementaryRegulation", "ZUSATZTEXT"}},
		},
	},
	{
		ID: "background_map", Type: domain.TypeString,
		DE: "Kartengrundlage", EN: "Background Map",
		Mappings: []sourceNames{
			{"Oberösterreich", []string{"BackgroundMap", "BackgroundMapDate"}},
		},
	},

	// Transport.
	{
		ID: "road_class", Type: domain.TypeCodelist,
		DE: "Straßenklasse", EN: "Functional Road Class",
		Mappings: []sourceNames{
			{SourceInspire, []string{"functionalClass"}},
		},
	},
	{
		ID: "num_lanes", Type: domain.TypeInteger,
		DE: "Anzahl Fahrspuren", EN: "Number of Lanes",
		Mappings: []sourceNames{
			{SourceInspire, []string{"numberOfLanes"}},
		},
	},
	{
		ID: "traffic_direction", Type: domain.TypeCodelist,
		DE: "Verkehrsrichtung", EN: "Traffic Direction",
		Mappings: []sourceNames{
			{SourceInspire, []string{"direction"}},
		},
	},

	// Hydrography.
	{
		ID: "water_level", Type: domain.TypeDecimal,
		DE: "Wasserstand", EN: "Water Level",
		Mappings: []sourceNames{
			{SourceEHYD, []string{"W", "Wasserstand", "Pegel"}},
		},
	},
	{
		ID: "discharge", Type: domain.TypeDecimal,
		DE: "Abfluss", EN: "Discharge",
		Mappings: []sourceNames{
			{SourceEHYD, []string{"Q", "Abfluss", "Durchfluss"}},
		},
	},

	// Hazard / risk zones.
	{
		ID: "hazard_type", Type: domain.TypeCodelist,
		DE: "Gefahrentyp", EN: "Hazard Type",
		Mappings: []sourceNames{
			{SourceInspire, []string{"typeOfHazard"}},
			{"Tirol", []string{"Gefahrenart", "GEFAHR"}},
		},
	},
	{
		ID: "risk_level", Type: domain.TypeCodelist,
		DE: "Risikostufe", EN: "Risk Level",
		Mappings: []sourceNames{
			{SourceInspire, []string{"levelOfRisk"}},
			{"Tirol", []string{"Risikostufe", "ZONE"}},
		},
	},
	{
		ID: "likelihood", Type: domain.TypeString,
		DE: "Eintrittswahrscheinlichkeit", EN: "Likelihood of Occurrence",
		Mappings: []sourceNames{
			{SourceInspire, []string{"likelihoodOfOccurrence"}},
		},
	},

	// Buildings.
	{
		ID: "building_height", Type: domain.TypeDecimal,
		DE: "Gebäudehöhe", EN: "Building Height",
		Mappings: []sourceNames{
			{SourceInspire, []string{"heightAboveGround"}},
			{"Oberösterreich", []string{"Hoehe", "HEIGHT"}},
		},
	},
	{
		ID: "building_condition", Type: domain.TypeCodelist,
		DE: "Gebäudezustand", EN: "Condition of Construction",
		Mappings: []sourceNames{
			{SourceInspire, []string{"conditionOfConstruction"}},
		},
	},

	// Habitats / biotopes.
	{
		ID: "habitat_type", Type: domain.TypeCodelist,
		DE: "Lebensraumtyp", EN: "Habitat Type",
		Mappings: []sourceNames{
			{SourceInspire, []string{"habitat"}},
			{"Oberösterreich", []string{"Biotoptyp", "BIOTOP_TYP"}},
		},
	},

	// Common technical fields.
	{
		ID: "object_id", Type: domain.TypeInteger,
		DE: "Objekt-ID", EN: "Object ID",
		Mappings: []sourceNames{
			{SourceArcGIS, []string{"OBJECTID", "OID", "FID"}},
		},
	},
	{
		ID: "global_id", Type: domain.TypeString,
		DE: "Globale ID", EN: "Global ID",
		Mappings: []sourceNames{
			{SourceArcGIS, []string{"GlobalID", "GLOBALID"}},
		},
	},
	{
		ID: "municipality_code", Type: domain.TypeString,
		DE: "Gemeindekennzahl", EN: "Municipality Code",
		Mappings: []sourceNames{
			{SourceAustria, []string{"GEM_NR", "GKZ", "Gemeindekennzahl", "MunicipalityCode"}},
		},
	},

	// Network / reference fields.
	{
		ID: "identifier", Type: domain.TypeString,
		DE: "Kennung", EN: "Identifier",
		Mappings: []sourceNames{
			{SourceInspire, []string{"identifier", "Identifier"}},
		},
	},
	{
		ID: "network_ref", Type: domain.TypeReference,
		DE: "Netzwerk-Referenz", EN: "Network Reference",
		Mappings: []sourceNames{
			{SourceInspire, []string{"networkRef", "inNetwork", "link"}},
		},
	},
	{
		ID: "description", Type: domain.TypeString,
		DE: "Beschreibung", EN: "Description",
		Mappings: []sourceNames{
			{SourceInspire, []string{"description"}},
		},
	},

	// Area management, additional.
	{
		ID: "designation_period", Type: domain.TypePeriod,
		DE: "Ausweisungszeitraum", EN: "Designation Period",
		Mappings: []sourceNames{
			{SourceInspire, []string{"designationPeriod", "validityPeriod"}},
		},
	},
	{
		ID: "environmental_domain", Type: domain.TypeCodelist,
		DE: "Umweltbereich", EN: "Environmental Domain",
		Mappings: []sourceNames{
			{SourceInspire, []string{"environmentalDomain"}},
		},
	},
	{
		ID: "end_lifespan", Type: domain.TypeDateTime,
		DE: "Gültig bis", EN: "Valid until",
		Mappings: []sourceNames{
			{SourceInspire, []string{"endLifespanVersion", "endLifeSpanVersion", "validTo"}},
		},
	},
	{
		ID: "plan_reference", Type: domain.TypeReference,
		DE: "Plan-Referenz", EN: "Plan Reference",
		Mappings: []sourceNames{
			{SourceInspire, []string{"plan", "relatedZone"}},
		},
	},
	{
		ID: "specialized_zone_type", Type: domain.TypeCodelist,
		DE: "Spezieller Zonentyp", EN: "Specialized Zone Type",
		Mappings: []sourceNames{
			{SourceInspire, []string{"specialisedZoneType"}},
		},
	},

	// Habitats, additional.
	{
		ID: "species", Type: domain.TypeComplex,
		DE: "Arten", EN: "Species",
		Mappings: []sourceNames{
			{SourceInspire, []string{"habitatSpecies", "species"}},
		},
	},
	{
		ID: "vegetation", Type: domain.TypeComplex,
		DE: "Vegetation", EN: "Vegetation",
		Mappings: []sourceNames{
			{SourceInspire, []string{"habitatVegetation", "vegetation"}},
		},
	},

	// Land use, additional.
	{
		ID: "observation_date", Type: domain.TypeDate,
		DE: "Beobachtungsdatum", EN: "Observation Date",
		Mappings: []sourceNames{
			{SourceInspire, []string{"observationDate"}},
		},
	},
	{
		ID: "land_use_presence", Type: domain.TypeComplex,
		DE: "Nutzungspräsenz", EN: "Land Use Presence",
		Mappings: []sourceNames{
			{SourceInspire, []string{"hilucsPresence", "specificPresence"}},
		},
	},
	{
		ID: "dataset_ref", Type: domain.TypeReference,
		DE: "Datensatz-Referenz", EN: "Dataset Reference",
		Mappings: []sourceNames{
			{SourceInspire, []string{"dataset", "member"}},
		},
	},
}

// themeProfiles lists the canonical fields expected per INSPIRE theme.
var themeProfiles = []struct {
	Theme  string
	Fields []string
}{
	{"Area Management", []string{
		"inspire_id", "name", "geometry", "zone_type", "legal_basis",
		"legal_date", "authority", "begin_lifespan",
	}},
	{"Protected Sites", []string{
		"inspire_id", "name", "geometry", "zone_type", "legal_basis",
		"legal_date", "begin_lifespan",
	}},
	{"Existing Land Use", []string{
		"inspire_id", "name", "geometry", "land_use_type", "begin_lifespan",
	}},
	{"Transport Networks", []string{
		"inspire_id", "name", "geometry", "road_class", "num_lanes",
		"traffic_direction", "begin_lifespan",
	}},
	{"Habitats and Biotopes", []string{
		"inspire_id", "geometry", "habitat_type", "begin_lifespan",
	}},
	{"Buildings", []string{
		"inspire_id", "name", "geometry", "building_height",
		"building_condition", "begin_lifespan",
	}},
}
