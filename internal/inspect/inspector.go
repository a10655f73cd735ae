// Package inspect runs the per-service discovery pipeline: capability
// listing, feature sampling and schema extraction, folded into a single
// status-classified result.
package inspect

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/raffopenssh/inspire-austria/internal/config"
	"github.com/raffopenssh/inspire-austria/internal/domain"
	"github.com/raffopenssh/inspire-austria/internal/fetch"
	"github.com/raffopenssh/inspire-austria/internal/schema"
)

// Result is the outcome of inspecting one service endpoint. FeatureTypes is
// empty unless Status is working.
type Result struct {
	Target       domain.InspectionTarget
	Status       domain.ServiceCheckStatus
	ErrorMessage string
	FeatureTypes []domain.FeatureType
	CheckedAt    time.Time
}

// SampleFields returns the field names of the first extracted feature type.
func (r *Result) SampleFields() []string {
	if len(r.FeatureTypes) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.FeatureTypes[0].Fields))
	for _, f := range r.FeatureTypes[0].Fields {
		names = append(names, f.Name)
	}
	return names
}

// Status builds the service status record the result maps to.
func (r *Result) ServiceStatus() *domain.ServiceStatus {
	return &domain.ServiceStatus{
		DatasetID:    r.Target.DatasetID,
		URL:          r.Target.URL,
		ServiceType:  r.Target.ServiceType,
		LastChecked:  r.CheckedAt,
		Status:       r.Status,
		SampleFields: r.SampleFields(),
		ErrorMessage: r.ErrorMessage,
	}
}

// Inspector probes WFS and OGC-API endpoints. Safe for concurrent use.
type Inspector struct {
	client      *fetch.Client
	extractor   *schema.Extractor
	sampleCount int
	maxTypes    int
	logger      *slog.Logger
}

func NewInspector(client *fetch.Client, extractor *schema.Extractor, cfg config.FetchConfig, logger *slog.Logger) *Inspector {
	return &Inspector{
		client:      client,
		extractor:   extractor,
		sampleCount: cfg.SampleCount,
		maxTypes:    cfg.MaxTypes,
		logger:      logger.With("component", "inspect"),
	}
}

// Inspect runs the discovery pipeline for one endpoint. Never returns an
// error: every failure mode collapses into a classified status on the result.
func (i *Inspector) Inspect(ctx context.Context, target domain.InspectionTarget) *Result {
	res := &Result{Target: target, CheckedAt: time.Now()}

	var (
		types []domain.FeatureType
		err   error
	)
	switch target.ServiceType {
	case domain.ServiceWFS:
		types, err = i.inspectWFS(ctx, target)
	case domain.ServiceOGCAPI:
		types, err = i.inspectOGCAPI(ctx, target)
	default:
		res.Status = domain.StatusInvalid
		res.ErrorMessage = "unsupported service type: " + string(target.ServiceType)
		return res
	}

	if err != nil {
		if fetch.IsTimeout(err) {
			res.Status = domain.StatusTimeout
		} else {
			res.Status = domain.StatusError
		}
		res.ErrorMessage = err.Error()
		i.logger.Warn("inspection failed",
			"url", target.URL,
			"service_type", target.ServiceType,
			"status", res.Status,
			"error", err,
		)
		return res
	}

	res.Status = domain.StatusWorking
	res.FeatureTypes = types
	i.logger.Info("inspection succeeded",
		"url", target.URL,
		"service_type", target.ServiceType,
		"feature_types", len(types),
	)
	return res
}

func (i *Inspector) inspectWFS(ctx context.Context, target domain.InspectionTarget) ([]domain.FeatureType, error) {
	caps, err := i.client.WFSCapabilities(ctx, target.URL)
	if err != nil {
		return nil, err
	}

	capTypes := i.extractor.Capabilities(caps)
	if len(capTypes) == 0 {
		return nil, &fetch.Error{Kind: fetch.KindNoFeatureTypes, Message: "no feature types advertised"}
	}
	if len(capTypes) > i.maxTypes {
		capTypes = capTypes[:i.maxTypes]
	}

	now := time.Now()
	isInspireURL := strings.Contains(strings.ToLower(target.URL), "inspire")

	var types []domain.FeatureType
	for _, ct := range capTypes {
		ft := domain.FeatureType{
			ServiceID:    target.ServiceID,
			DatasetID:    target.DatasetID,
			TypeName:     ct.Name,
			Namespace:    ct.Prefix,
			Title:        ct.Title,
			IsInspire:    schema.IsInspireNamespace(ct.Prefix) || isInspireURL,
			InspireTheme: schema.DetermineTheme(ct.Prefix, ct.Name),
			FetchedAt:    now,
		}

		// A failed or empty sample keeps the advertised type with zero
		// fields instead of erasing it from the result.
		body, err := i.client.WFSSample(ctx, target.URL, ct.Name, i.sampleCount)
		if err != nil {
			if fetch.IsTimeout(err) {
				return nil, err
			}
			i.logger.Debug("feature sample failed", "url", target.URL, "type", ct.Name, "error", err)
			types = append(types, ft)
			continue
		}

		if fields, err := i.extractFields(body); err == nil {
			ft.Fields = fields
		}
		types = append(types, ft)
	}
	return types, nil
}

func (i *Inspector) inspectOGCAPI(ctx context.Context, target domain.InspectionTarget) ([]domain.FeatureType, error) {
	collections, err := i.client.OGCCollections(ctx, target.URL)
	if err != nil {
		return nil, err
	}

	// The first collection stands in for the whole endpoint; sibling
	// collections of Austrian OGC-API services share their schema.
	first := collections[0]
	body, err := i.client.OGCItems(ctx, target.URL, first.Identifier(), i.sampleCount)
	if err != nil {
		return nil, err
	}

	fields, _, err := i.extractor.GeoJSONFields(body)
	if err != nil {
		return nil, &fetch.Error{Kind: fetch.KindNoFeatures, Message: err.Error()}
	}

	title := first.Title
	if title == "" {
		title = first.Identifier()
	}
	return []domain.FeatureType{{
		ServiceID:    target.ServiceID,
		DatasetID:    target.DatasetID,
		TypeName:     first.Identifier(),
		Title:        title,
		IsInspire:    strings.Contains(strings.ToLower(target.URL), "inspire"),
		InspireTheme: schema.DetermineTheme("", first.Identifier()),
		FetchedAt:    time.Now(),
		Fields:       fields,
	}}, nil
}

// extractFields picks the extractor matching the payload shape: servers that
// honour the JSON output format answer GeoJSON, the rest answer GML.
func (i *Inspector) extractFields(body []byte) ([]domain.Field, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		fields, _, err := i.extractor.GeoJSONFields(trimmed)
		return fields, err
	}
	return i.extractor.GMLFields(body), nil
}
