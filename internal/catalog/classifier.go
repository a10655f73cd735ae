// Package catalog turns raw GeoNetwork catalog records into tagged datasets:
// province and topic extraction, cross-province concept matching, service
// link classification and the gem quality score.
package catalog

import (
	"regexp"
	"strings"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

// Concept is one matched cross-province concept.
type Concept struct {
	ID     string
	NameDE string
	NameEN string
}

// Classifier applies the fixed keyword and pattern tables. All patterns are
// compiled once at construction; the classifier is immutable afterwards.
type Classifier struct {
	yearRe   *regexp.Regexp
	concepts []compiledConcept
}

type compiledConcept struct {
	Concept
	patterns []*regexp.Regexp
}

func NewClassifier() *Classifier {
	c := &Classifier{
		yearRe: regexp.MustCompile(`\b(19\d{2}|20[0-2]\d)\b`),
	}
	for _, cp := range conceptPatterns {
		cc := compiledConcept{
			Concept: Concept{ID: cp.ID, NameDE: cp.NameDE, NameEN: cp.NameEN},
		}
		for _, p := range cp.Patterns {
			cc.patterns = append(cc.patterns, regexp.MustCompile(p))
		}
		c.concepts = append(c.concepts, cc)
	}
	return c
}

// ConceptByID returns the concept definition for an id.
func ConceptByID(id string) (Concept, bool) {
	for _, cp := range conceptPatterns {
		if cp.ID == id {
			return Concept{ID: cp.ID, NameDE: cp.NameDE, NameEN: cp.NameEN}, true
		}
	}
	return Concept{}, false
}

// AllConcepts lists every known concept in table order.
func AllConcepts() []Concept {
	concepts := make([]Concept, 0, len(conceptPatterns))
	for _, cp := range conceptPatterns {
		concepts = append(concepts, Concept{ID: cp.ID, NameDE: cp.NameDE, NameEN: cp.NameEN})
	}
	return concepts
}

// Province extracts the first matching province keyword, in table order.
func (c *Classifier) Province(text string) string {
	lower := strings.ToLower(text)
	for _, pk := range provinceKeywords {
		if strings.Contains(lower, pk.Keyword) {
			return pk.Province
		}
	}
	return ""
}

// Topics returns every topic whose keyword list matches the text.
func (c *Classifier) Topics(text string) []string {
	lower := strings.ToLower(text)
	var topics []string
	for _, tk := range topicKeywords {
		for _, kw := range tk.Keywords {
			if strings.Contains(lower, kw) {
				topics = append(topics, tk.Topic)
				break
			}
		}
	}
	return topics
}

// Year extracts the first plausible year (1900-2029) from the text.
func (c *Classifier) Year(text string) string {
	return c.yearRe.FindString(text)
}

// Concepts returns every concept with at least one pattern matching the
// combined title and abstract, in table order.
func (c *Classifier) Concepts(title, abstract string) []Concept {
	text := strings.ToLower(title + " " + abstract)
	var matches []Concept
	for _, cc := range c.concepts {
		for _, re := range cc.patterns {
			if re.MatchString(text) {
				matches = append(matches, cc.Concept)
				break
			}
		}
	}
	return matches
}

// ServiceTypeFor classifies a catalog link into a service type from its URL,
// declared protocol and function.
func ServiceTypeFor(url, protocol, function string) domain.ServiceType {
	urlLower := strings.ToLower(url)
	protoLower := strings.ToLower(protocol)

	switch {
	case strings.Contains(urlLower, "wfs") || strings.Contains(protoLower, "wfs"):
		return domain.ServiceWFS
	case strings.Contains(urlLower, "wmts") || strings.Contains(protoLower, "wmts"):
		return domain.ServiceWMTS
	case strings.Contains(urlLower, "wms") || strings.Contains(protoLower, "wms"):
		return domain.ServiceWMS
	case strings.Contains(urlLower, "atom") || strings.Contains(protoLower, "atom"):
		return domain.ServiceAtom
	case strings.Contains(urlLower, "ogcapi") || strings.Contains(urlLower, "api/features"):
		return domain.ServiceOGCAPI
	case strings.Contains(protoLower, "download") || strings.Contains(strings.ToLower(function), "download"):
		return domain.ServiceDownload
	case url != "":
		return domain.ServiceLink
	default:
		return domain.ServiceUnknown
	}
}

// GemScore ranks a dataset by data quality signals: live vector services
// beat static downloads, resolution, freshness and nationwide coverage add
// up. Used only to order discovery and reporting, never for filtering.
func GemScore(ds *domain.Dataset) int {
	score := 0
	fullText := strings.ToLower(ds.Title + " " + ds.Abstract)

	var hasWFS, hasOGCAPI, hasDownload bool
	for _, svc := range ds.Services {
		switch svc.ServiceType {
		case domain.ServiceWFS:
			hasWFS = true
		case domain.ServiceOGCAPI:
			hasOGCAPI = true
		case domain.ServiceDownload, domain.ServiceAtom:
			hasDownload = true
		}
	}
	if hasWFS {
		score += 3
	}
	if hasOGCAPI {
		score += 4
	}
	if hasDownload {
		score += 2
	}

	if containsAny(fullText, "1m", "1 m", "meter", "hochauflösend", "high resolution", "detailliert") {
		score += 2
	}
	if containsAny(fullText, "real-time", "echtzeit", "aktuell", "live", "stündlich", "täglich") {
		score += 3
	}
	if containsAny(fullText, "zeitreihe", "time series", "historisch", "langzeit", "mehrjährig") {
		score += 3
	}

	if containsAny(fullText, "österreich", "austria") {
		score += 2
	}
	if containsAny(fullText, "bundesweit", "nationwide") {
		score += 2
	}

	if strings.Contains(fullText, "inspire") {
		score++
	}
	if ds.IsOpenData {
		score++
	}

	return score
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
