package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Collection is one entry of an OGC-API Features collections listing.
type Collection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type collectionsDoc struct {
	Collections []Collection     `json:"collections"`
	Links       []map[string]any `json:"links"`
}

// Identifier returns the collection id, falling back to the legacy name key.
func (c Collection) Identifier() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Name
}

// OGCCollections lists the collections of an OGC-API Features endpoint.
// Some landing pages only carry a links array; in that case the bare base URL
// is tried once before giving up.
func (c *Client) OGCCollections(ctx context.Context, baseURL string) ([]Collection, error) {
	base := strings.TrimRight(baseURL, "/")

	body, err := c.doGet(ctx, base+"/collections", "application/json")
	if err != nil {
		return nil, err
	}

	var doc collectionsDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &Error{Kind: KindParse, Err: fmt.Errorf("decode collections: %w", err)}
	}

	if len(doc.Collections) == 0 && len(doc.Links) > 0 {
		body, err = c.doGet(ctx, base, "application/json")
		if err != nil {
			return nil, err
		}
		doc = collectionsDoc{}
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, &Error{Kind: KindParse, Err: fmt.Errorf("decode root document: %w", err)}
		}
	}

	if len(doc.Collections) == 0 {
		return nil, &Error{Kind: KindNoFeatureTypes, Message: "no collections found"}
	}

	return doc.Collections, nil
}

// OGCItems fetches up to limit items of one collection as GeoJSON.
func (c *Client) OGCItems(ctx context.Context, baseURL, collectionID string, limit int) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	target := fmt.Sprintf("%s/collections/%s/items?limit=%d&f=json", base, collectionID, limit)

	c.logger.Debug("fetching items", "url", target)
	return c.doGet(ctx, target, "application/geo+json,application/json")
}
