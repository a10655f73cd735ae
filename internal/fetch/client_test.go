package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raffopenssh/inspire-austria/internal/config"
)

func testClient(timeout time.Duration) *Client {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(config.FetchConfig{
		Timeout:   timeout,
		UserAgent: "schema-fetcher-test/1.0",
	}, logger)
}

func TestWFSCapabilities_AppendsParameters(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "schema-fetcher-test/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<WFS_Capabilities/>"))
	}))
	defer srv.Close()

	c := testClient(5 * time.Second)

	body, err := c.WFSCapabilities(context.Background(), srv.URL+"?VERSION=1.1.0&foo=bar")
	require.NoError(t, err)
	assert.Contains(t, string(body), "WFS_Capabilities")

	assert.Equal(t, []string{"WFS"}, gotQuery["SERVICE"])
	assert.Equal(t, []string{"GetCapabilities"}, gotQuery["REQUEST"])
	// The declared version survives, other original parameters do not.
	assert.Equal(t, []string{"1.1.0"}, gotQuery["VERSION"])
	assert.Empty(t, gotQuery["foo"])
}

func TestWFSCapabilities_RespectsExplicitRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// URL already asks for capabilities: passed through untouched.
		assert.Equal(t, "getcapabilities", r.URL.Query().Get("request"))
		assert.Empty(t, r.URL.Query().Get("SERVICE"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := testClient(5 * time.Second)

	_, err := c.WFSCapabilities(context.Background(), srv.URL+"?request=getcapabilities")
	require.NoError(t, err)
}

func TestWFSSample(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "GetFeature", q.Get("REQUEST"))
		assert.Equal(t, "ps:ProtectedSite", q.Get("TYPENAMES"))
		assert.Equal(t, "5", q.Get("COUNT"))
		assert.Equal(t, "application/json", q.Get("OUTPUTFORMAT"))
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	c := testClient(5 * time.Second)

	_, err := c.WFSSample(context.Background(), srv.URL, "ps:ProtectedSite", 5)
	require.NoError(t, err)
}

func TestDoGet_ErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(5 * time.Second)

	_, err := c.doGet(context.Background(), srv.URL, "")
	require.Error(t, err)
	assert.Equal(t, KindHTTPStatus, Kind(err))

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusBadGateway, fe.StatusCode)
}

func TestDoGet_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := testClient(20 * time.Millisecond)

	_, err := c.doGet(context.Background(), srv.URL, "")
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestDoGet_ConnectionRefused(t *testing.T) {
	c := testClient(time.Second)

	_, err := c.doGet(context.Background(), "http://127.0.0.1:1/x", "")
	require.Error(t, err)
	assert.Equal(t, KindConnection, Kind(err))
}

func TestOGCCollections(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ogc/collections", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"collections":[{"id":"gemeinden","title":"Gemeinden"},{"name":"bezirke"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(5 * time.Second)

	cols, err := c.OGCCollections(context.Background(), srv.URL+"/ogc/")
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "gemeinden", cols[0].Identifier())
	// Legacy listings carry name instead of id.
	assert.Equal(t, "bezirke", cols[1].Identifier())
}

func TestOGCCollections_RetriesBareBase(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ogc/collections", func(w http.ResponseWriter, r *http.Request) {
		// Landing page style answer: links only, no collections.
		_, _ = w.Write([]byte(`{"links":[{"rel":"data"}]}`))
	})
	mux.HandleFunc("/ogc", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"collections":[{"id":"wasser"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(5 * time.Second)

	cols, err := c.OGCCollections(context.Background(), srv.URL+"/ogc")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "wasser", cols[0].ID)
}

func TestOGCCollections_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"collections":[]}`))
	}))
	defer srv.Close()

	c := testClient(5 * time.Second)

	_, err := c.OGCCollections(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, KindNoFeatureTypes, Kind(err))
}

func TestOGCItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ogc/collections/gemeinden/items", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "json", r.URL.Query().Get("f"))
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	c := testClient(5 * time.Second)

	_, err := c.OGCItems(context.Background(), srv.URL+"/ogc", "gemeinden", 10)
	require.NoError(t, err)
}
