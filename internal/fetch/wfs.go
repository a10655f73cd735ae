package fetch

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// wfsVersion picks the WFS version declared in the original URL's query
// string, defaulting to 2.0.0.
func wfsVersion(q url.Values) string {
	for key, vals := range q {
		if strings.EqualFold(key, "VERSION") && len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return "2.0.0"
}

// WFSCapabilities fetches a GetCapabilities document. The capability request
// parameters are appended unless the URL already asks for them.
func (c *Client) WFSCapabilities(ctx context.Context, rawURL string) ([]byte, error) {
	target := rawURL
	if !strings.Contains(strings.ToLower(rawURL), "getcapabilities") {
		base, q := splitBase(rawURL)
		params := url.Values{}
		params.Set("SERVICE", "WFS")
		params.Set("REQUEST", "GetCapabilities")
		params.Set("VERSION", wfsVersion(q))
		target = base + "?" + params.Encode()
	}

	c.logger.Debug("fetching capabilities", "url", target)
	return c.doGet(ctx, target, "")
}

// WFSSample fetches up to count features of one type. JSON output is
// requested; servers that ignore OUTPUTFORMAT answer with GML, which the
// schema extractor handles.
func (c *Client) WFSSample(ctx context.Context, rawURL, typeName string, count int) ([]byte, error) {
	base, q := splitBase(rawURL)

	params := url.Values{}
	params.Set("SERVICE", "WFS")
	params.Set("REQUEST", "GetFeature")
	params.Set("VERSION", wfsVersion(q))
	params.Set("TYPENAMES", typeName)
	params.Set("COUNT", strconv.Itoa(count))
	params.Set("OUTPUTFORMAT", "application/json")

	target := base + "?" + params.Encode()
	c.logger.Debug("fetching feature sample", "url", target, "type", typeName)
	return c.doGet(ctx, target, "")
}
