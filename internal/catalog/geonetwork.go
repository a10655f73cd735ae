package catalog

import (
	"strings"
	"time"

	"github.com/raffopenssh/inspire-austria/internal/domain"
)

// Hit is one search hit of a GeoNetwork catalog dump.
type Hit struct {
	ID     string    `json:"_id"`
	Source HitSource `json:"_source"`
}

type HitSource struct {
	MetadataIdentifier    string                  `json:"metadataIdentifier"`
	ResourceTitleObject   LocalizedText           `json:"resourceTitleObject"`
	ResourceAbstractObject LocalizedText          `json:"resourceAbstractObject"`
	ResourceType          []string                `json:"resourceType"`
	InspireTheme          []string                `json:"inspireTheme"`
	AllKeywords           map[string]KeywordGroup `json:"allKeywords"`
	Tags                  []LocalizedText         `json:"tag"`
	Links                 []Link                  `json:"link"`
	Formats               []string                `json:"format"`
	IsOpenData            bool                    `json:"isOpenData"`
	OrgForResource        LocalizedText           `json:"OrgForResourceObject"`
	Contacts              []Contact               `json:"contactForResource"`
	CreateDate            string                  `json:"createDate"`
	ChangeDate            string                  `json:"changeDate"`
}

type LocalizedText struct {
	Default string `json:"default"`
	LangGer string `json:"langger"`
}

func (t LocalizedText) Text() string {
	if t.Default != "" {
		return t.Default
	}
	return t.LangGer
}

type KeywordGroup struct {
	Keywords []LocalizedText `json:"keywords"`
}

type Link struct {
	URLObject LocalizedText `json:"urlObject"`
	Protocol  string        `json:"protocol"`
	Function  string        `json:"function"`
	MimeType  string        `json:"mimeType"`
}

type Contact struct {
	Email string `json:"email"`
}

const abstractLimit = 2000

// ProcessHit tags and scores one catalog record. The province, topics and
// concepts are derived from the combined title, abstract and keywords.
func (c *Classifier) ProcessHit(hit Hit, now time.Time) domain.Dataset {
	src := hit.Source

	title := src.ResourceTitleObject.Text()
	abstract := src.ResourceAbstractObject.Text()
	if len(abstract) > abstractLimit {
		abstract = abstract[:abstractLimit]
	}

	keywords := collectKeywords(src)

	var services []domain.ServiceEndpoint
	for _, link := range src.Links {
		url := link.URLObject.Text()
		if url == "" {
			continue
		}
		services = append(services, domain.ServiceEndpoint{
			DatasetID:   hit.ID,
			URL:         url,
			ServiceType: ServiceTypeFor(url, link.Protocol, link.Function),
			Protocol:    link.Protocol,
		})
	}

	fullText := title + " " + abstract + " " + strings.Join(keywords, " ")

	dsType := "unknown"
	if len(src.ResourceType) > 0 {
		dsType = src.ResourceType[0]
	}

	year := c.Year(title)
	if year == "" {
		year = c.Year(abstract)
	}

	var contact string
	if len(src.Contacts) > 0 {
		contact = src.Contacts[0].Email
	}

	var concepts []string
	for _, con := range c.Concepts(title, abstract) {
		concepts = append(concepts, con.ID)
	}

	ds := domain.Dataset{
		ID:         hit.ID,
		UUID:       src.MetadataIdentifier,
		Title:      title,
		Abstract:   abstract,
		Type:       dsType,
		Province:   c.Province(fullText),
		Year:       year,
		IsOpenData: src.IsOpenData,
		Org:        src.OrgForResource.Text(),
		Contact:    contact,
		CreateDate: src.CreateDate,
		UpdateDate: src.ChangeDate,
		Themes:     src.InspireTheme,
		Topics:     c.Topics(fullText),
		Concepts:   concepts,
		Keywords:   keywords,
		Services:   services,
		IngestedAt: now,
	}
	ds.GemScore = GemScore(&ds)

	return ds
}

func collectKeywords(src HitSource) []string {
	seen := make(map[string]bool)
	var keywords []string

	add := func(kw string) {
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	for _, group := range src.AllKeywords {
		for _, kw := range group.Keywords {
			add(kw.Text())
		}
	}
	for _, tag := range src.Tags {
		add(tag.Text())
	}
	return keywords
}
