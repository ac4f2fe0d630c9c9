package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/i18n"
	"finitefield.org/staking-web/internal/templates/staking"
	"finitefield.org/staking-web/internal/testutil"
	"finitefield.org/staking-web/locales"
)

var pixelPNG, _ = base64.StdEncoding.DecodeString("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"staking/index.md":                 {Data: []byte("---\ntitle: Ethereum staking\ntemplate: staking\nsidebar: true\nimage: ./hero.png\nsummaryPoints: [Earn rewards]\n---\n## Why stake\n")},
		"staking/hero.png":                 {Data: pixelPNG},
		"staking/broken/index.md":          {Data: []byte("---\ntitle: Broken\ntemplate: staking\n---\n{{< Nope >}}\n")},
		"translations/ar/staking/index.md": {Data: []byte("---\ntitle: التحصيص\ntemplate: staking\n---\n## لماذا\n")},
		"about/index.md":                   {Data: []byte("---\ntitle: About\n---\nOther template\n")},
	}
}

type testServer struct {
	*httptest.Server
	logs *observer.ObservedLogs
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	bundle, err := i18n.Load(locales.FS, "en", []string{"en", "ar", "es"})
	require.NoError(t, err)
	tmpl := staking.New(&content.Catalog{})
	fsys := contentFS()
	store := content.NewStore(fsys, content.SiteMetadata{Title: "ethereum.org", URL: "https://ethereum.org", DefaultLanguage: "en"}, tmpl.Markdown(), content.WithLanguages(bundle.Supported()))

	core, logs := observer.New(zap.InfoLevel)
	router := NewRouter(
		WithLogger(zap.New(core)),
		WithHealthHandlers(NewHealthHandlers(
			WithHealthVersion("test"),
			WithReadinessCheck(func(ctx context.Context) error {
				_, err := store.Routes(ctx, "")
				return err
			}),
		)),
		WithAssetRoutes(NewAssetHandlers([]byte(".page{}"), fsys).Routes),
		WithPageRoutes(NewPageHandlers(store, tmpl, bundle).Routes),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, logs: logs}
}

func noRedirect(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

func (s *testServer) get(t *testing.T, path string, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	client := &http.Client{CheckRedirect: noRedirect, Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouterRendersStakingPage(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := srv.get(t, "/ar/staking/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	doc := testutil.ParseHTML(t, body)
	dir, _ := doc.Find("div.page").Attr("dir")
	require.Equal(t, "rtl", dir)
	require.Equal(t, "هل كانت هذه الصفحة مفيدة؟", doc.Find(".feedback-card h3").Text())
	href, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	require.Equal(t, StylesheetPath, href)
}

func TestRouterRedirectsToCanonicalSlug(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := srv.get(t, "/staking", nil)
	require.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	require.Equal(t, "/staking/", resp.Header.Get("Location"))
}

func TestRouterRootFollowsAcceptLanguage(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := srv.get(t, "/", http.Header{"Accept-Language": {"ar-SA,ar;q=0.9,en;q=0.5"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/ar/staking/", resp.Header.Get("Location"))
	require.Contains(t, resp.Header.Values("Vary"), "Accept-Language")

	resp = srv.get(t, "/", http.Header{"Accept-Language": {"de"}})
	require.Equal(t, "/staking/", resp.Header.Get("Location"))
}

func TestRouterNotFound(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	require.Equal(t, http.StatusNotFound, srv.get(t, "/nope/", nil).StatusCode)
	// pages with another template are not routed
	require.Equal(t, http.StatusNotFound, srv.get(t, "/about/", nil).StatusCode)
}

func TestRouterRenderFailureIs500(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := srv.get(t, "/staking/broken/", http.Header{"Accept": {"application/json"}})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "internal error", body["error"])

	require.Eventually(t, func() bool {
		return srv.logs.FilterMessage("render page").Len() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRouterServesAssets(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	css := srv.get(t, StylesheetPath, nil)
	require.Equal(t, http.StatusOK, css.StatusCode)
	require.Equal(t, "text/css; charset=utf-8", css.Header.Get("Content-Type"))

	img := srv.get(t, "/content/staking/hero.png", nil)
	require.Equal(t, http.StatusOK, img.StatusCode)
	data, err := io.ReadAll(img.Body)
	require.NoError(t, err)
	require.Equal(t, pixelPNG, data)

	require.Equal(t, http.StatusNotFound, srv.get(t, "/content/staking/index.md", nil).StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp := srv.get(t, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		var body healthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "ok", body.Status)
		require.Equal(t, "test", body.Version)
	}
}

func TestReadyzReportsFailure(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHealthHandlers(
		WithHealthClock(func() time.Time { return now }),
		WithReadinessCheck(func(context.Context) error { return errors.New("content unavailable") }),
	)
	rec := httptest.NewRecorder()
	h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "unavailable", body.Status)
	require.Equal(t, "content unavailable", body.Error)
	require.Equal(t, "0s", body.Uptime)
}

func TestRouterContinuesIncomingTrace(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	resp := srv.get(t, "/healthz", http.Header{"Traceparent": {"00-" + traceID + "-00f067aa0ba902b7-01"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Traceparent"), traceID)

	require.Eventually(t, func() bool {
		for _, entry := range srv.logs.All() {
			if entry.ContextMap()["trace_id"] == traceID {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}
