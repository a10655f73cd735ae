package catalog

// provinceKeywords maps lowercase spellings (including umlaut-free and
// abbreviated forms) to the canonical province name.
var provinceKeywords = []struct {
	Keyword  string
	Province string
}{
	{"wien", "Wien"},
	{"burgenland", "Burgenland"},
	{"kärnten", "Kärnten"},
	{"kaernten", "Kärnten"},
	{"niederösterreich", "Niederösterreich"},
	{"niederoesterreich", "Niederösterreich"},
	{"nö", "Niederösterreich"},
	{"oberösterreich", "Oberösterreich"},
	{"oberoesterreich", "Oberösterreich"},
	{"oö", "Oberösterreich"},
	{"salzburg", "Salzburg"},
	{"steiermark", "Steiermark"},
	{"tirol", "Tirol"},
	{"vorarlberg", "Vorarlberg"},
}

// topicKeywords groups related datasets under coarse topics.
var topicKeywords = []struct {
	Topic    string
	Keywords []string
}{
	{"grundwasser", []string{"grundwasser", "groundwater", "aquifer", "wasserspiegel", "pegel"}},
	{"wetter", []string{"wetter", "weather", "niederschlag", "temperatur", "klima", "meteorolog"}},
	{"hochwasser", []string{"hochwasser", "flood", "überschwemmung", "überflutung", "hwz"}},
	{"gewässer", []string{"gewässer", "fluss", "bach", "see", "wasser", "hydrograph", "hydro"}},
	{"boden", []string{"boden", "soil", "erdreich", "bodenkarte"}},
	{"wald", []string{"wald", "forst", "forest", "baum", "waldkarte"}},
	{"naturschutz", []string{"naturschutz", "natura 2000", "schutzgebiet", "biotop", "habitat"}},
	{"kataster", []string{"kataster", "grundstück", "parzelle", "cadastr", "eigentum"}},
	{"raumordnung", []string{"raumordnung", "raumplan", "flächenwidmung", "bebauung", "landuse", "land use"}},
	{"verkehr", []string{"verkehr", "strasse", "straße", "transport", "schiene", "bahn", "weg"}},
	{"energie", []string{"energie", "strom", "kraftwerk", "wind", "solar", "photovoltaik"}},
	{"geologie", []string{"geologie", "gestein", "geology", "mineral", "bergbau"}},
	{"höhenmodell", []string{"höhen", "elevation", "dgm", "dem", "dtm", "gelände", "relief"}},
	{"orthofoto", []string{"orthofoto", "orthophoto", "luftbild", "aerial", "imagery"}},
	{"adresse", []string{"adresse", "address", "hausnummer", "postleitzahl"}},
	{"gebäude", []string{"gebäude", "building", "bauwerk", "haus"}},
	{"bevölkerung", []string{"bevölkerung", "population", "einwohner", "demograph"}},
	{"landwirtschaft", []string{"landwirtschaft", "agrar", "farm", "agricult", "acker", "weinbau"}},
	{"gesundheit", []string{"gesundheit", "health", "krankenhaus", "arzt", "medizin"}},
	{"umwelt", []string{"umwelt", "environment", "emission", "lärm", "luft", "noise"}},
}

// conceptPatterns tags datasets with unified cross-province concepts. A
// dataset matches a concept when any pattern matches its title or abstract.
var conceptPatterns = []struct {
	ID       string
	NameDE   string
	NameEN   string
	Patterns []string
}{
	{
		ID: "flächenwidmung", NameDE: "Flächenwidmungsplan", NameEN: "Zoning Plan",
		Patterns: []string{
			`flächenwidmung`, `widmungsplan`, `bebauungsplan`, `nutzungsplan`,
			`raumordnung`, `örtliche.*raumordnung`, `überörtliche.*raumordnung`, `landnutzung`,
		},
	},
	{
		ID: "naturschutzgebiet", NameDE: "Naturschutzgebiete", NameEN: "Nature Reserves",
		Patterns: []string{
			`naturschutzgebiet`, `naturschutz`, `natura.?2000`, `habitatrichtlinie`,
			`vogelschutzrichtlinie`, `ffh`, `naturpark`, `nationalpark`,
			`biosphärenpark`, `landschaftsschutz`, `naturdenkmal`,
		},
	},
	{
		ID: "wasserschutzgebiet", NameDE: "Wasserschutzgebiete", NameEN: "Water Protection Zones",
		Patterns: []string{
			`wasserschutz`, `wasserschon`, `trinkwasserschutz`, `grundwasserschutz`, `quellschutz`,
		},
	},
	{
		ID: "hochwasser", NameDE: "Hochwasserrisiko / Überflutungsflächen", NameEN: "Flood Risk Zones",
		Patterns: []string{
			`hochwasser`, `überflutung`, `überschwemmung`, `hwz`, `hq\d+`, `flood`, `gefahrenzone.*wasser`,
		},
	},
	{
		ID: "kataster", NameDE: "Kataster / Grundstücke", NameEN: "Cadastral Parcels",
		Patterns: []string{
			`kataster`, `grundstück`, `parzelle`, `cadastr`, `dkm`, `grenzkataster`,
		},
	},
	{
		ID: "adressen", NameDE: "Adressen", NameEN: "Addresses",
		Patterns: []string{
			`adress`, `hausnummer`, `gebäudeadress`, `address`,
		},
	},
	{
		ID: "höhenmodell", NameDE: "Digitales Höhenmodell", NameEN: "Digital Elevation Model",
		Patterns: []string{
			`höhenmodell`, `geländemodell`, `oberflächenmodell`, `\bdgm\b`, `\bdom\b`,
			`\bdtm\b`, `\bdem\b`, `höhenraster`, `\bals\b.*höhen`, `laserscan`, `lidar`,
		},
	},
	{
		ID: "orthofoto", NameDE: "Orthofoto / Luftbild", NameEN: "Orthophoto / Aerial Image",
		Patterns: []string{
			`orthofoto`, `orthophoto`, `luftbild`, `aerial`, `befliegung`,
		},
	},
	{
		ID: "wald", NameDE: "Wald / Forst", NameEN: "Forest",
		Patterns: []string{
			`\bwald\b`, `forst`, `waldkarte`, `baumkataster`, `waldentwicklung`,
		},
	},
	{
		ID: "grundwasser", NameDE: "Grundwasser", NameEN: "Groundwater",
		Patterns: []string{
			`grundwasser`, `groundwater`, `aquifer`, `brunnen`, `quellen`,
		},
	},
	{
		ID: "pegel", NameDE: "Pegelstände / Hydrologie", NameEN: "Water Levels / Hydrology",
		Patterns: []string{
			`pegel`, `wasserstand`, `abfluss`, `durchfluss`, `hydrograph`, `ehyd`,
		},
	},
	{
		ID: "niederschlag", NameDE: "Niederschlag", NameEN: "Precipitation",
		Patterns: []string{
			`niederschlag`, `regen`, `precipitation`, `schneehöhe`,
		},
	},
	{
		ID: "verwaltungsgrenzen", NameDE: "Verwaltungsgrenzen", NameEN: "Administrative Boundaries",
		Patterns: []string{
			`verwaltungsgrenze`, `gemeindegrenze`, `bezirksgrenze`, `landesgrenze`, `administrative`,
		},
	},
	{
		ID: "biotop", NameDE: "Biotope", NameEN: "Biotopes",
		Patterns: []string{
			`biotop`, `lebensraum`, `habitat`, `biotopkartierung`,
		},
	},
	{
		ID: "energie", NameDE: "Energieinfrastruktur", NameEN: "Energy Infrastructure",
		Patterns: []string{
			`kraftwerk`, `windkraft`, `photovoltaik`, `solaranlage`, `energieinfrastruktur`, `stromnetz`,
		},
	},
	{
		ID: "boden", NameDE: "Bodenkarte", NameEN: "Soil Map",
		Patterns: []string{
			`bodenkarte`, `bodentyp`, `bodenschätzung`, `\bsoil\b`,
		},
	},
}
