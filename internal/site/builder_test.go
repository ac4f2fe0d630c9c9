package site

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"finitefield.org/staking-web/internal/app"
	"finitefield.org/staking-web/internal/config"
	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/i18n"
	"finitefield.org/staking-web/internal/markdown"
	"finitefield.org/staking-web/internal/templates/staking"
	"finitefield.org/staking-web/internal/testutil"
	"finitefield.org/staking-web/locales"
)

var pixelPNG, _ = base64.StdEncoding.DecodeString("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func newTestBuilder(t *testing.T, fsys fstest.MapFS, opts ...Option) (*Builder, string) {
	t.Helper()
	bundle, err := i18n.Load(locales.FS, "en", []string{"en", "ar"})
	require.NoError(t, err)
	tmpl := staking.New(&content.Catalog{})
	store := content.NewStore(fsys, content.SiteMetadata{Title: "ethereum.org", URL: "https://ethereum.org/", DefaultLanguage: "en"}, tmpl.Markdown(), content.WithLanguages(bundle.Supported()))
	out := t.TempDir()
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	opts = append([]Option{
		WithWorkers(2),
		WithClock(func() time.Time { return clock }),
		WithIDGenerator(func() string { return "01HXTESTBUILD" }),
	}, opts...)
	return NewBuilder(store, tmpl, bundle, out, opts...), out
}

func siteFS() fstest.MapFS {
	return fstest.MapFS{
		"staking/index.md":                 {Data: []byte("---\ntitle: Staking\nlang: en\ntemplate: staking\nimage: ./hero.png\nsummaryPoints: [Earn]\n---\n## Why\n"), ModTime: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		"staking/hero.png":                 {Data: pixelPNG},
		"staking/solo/index.md":            {Data: []byte("---\ntitle: Solo\ntemplate: staking\n---\nBody\n")},
		"translations/ar/staking/index.md": {Data: []byte("---\ntitle: التحصيص\ntemplate: staking\n---\n## لماذا\n")},
		"about/index.md":                   {Data: []byte("---\ntitle: About\n---\nNot exported\n")},
	}
}

func TestBuildWritesPagesAndAssets(t *testing.T) {
	t.Parallel()

	b, out := newTestBuilder(t, siteFS())
	manifest, err := b.Build(context.Background())
	require.NoError(t, err)

	require.Equal(t, "01HXTESTBUILD", manifest.ID)
	require.Len(t, manifest.Pages, 3)
	outputs := make([]string, 0, len(manifest.Pages))
	for _, p := range manifest.Pages {
		outputs = append(outputs, p.Output)
	}
	require.Equal(t, []string{"ar/staking/index.html", "staking/index.html", "staking/solo/index.html"}, outputs)
	require.Equal(t, []string{"content/staking/hero.png"}, manifest.Assets)

	html, err := os.ReadFile(filepath.Join(out, "ar", "staking", "index.html"))
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, html)
	dir, _ := doc.Find("div.page").Attr("dir")
	require.Equal(t, "rtl", dir)
	href, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	require.Equal(t, StylesheetURL, href)

	_, err = os.Stat(filepath.Join(out, "about", "index.html"))
	require.True(t, errors.Is(err, os.ErrNotExist))

	image, err := os.ReadFile(filepath.Join(out, "content", "staking", "hero.png"))
	require.NoError(t, err)
	require.Equal(t, pixelPNG, image)

	css, err := os.ReadFile(filepath.Join(out, "assets", "styles.css"))
	require.NoError(t, err)
	require.Contains(t, string(css), ".hero-container")
}

func TestBuildWritesSitemapAndManifest(t *testing.T) {
	t.Parallel()

	b, out := newTestBuilder(t, siteFS())
	_, err := b.Build(context.Background())
	require.NoError(t, err)

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	body := string(sitemap)
	require.True(t, strings.HasPrefix(body, "<?xml"))
	require.Contains(t, body, "<loc>https://ethereum.org/staking/</loc>")
	require.Contains(t, body, "<lastmod>2024-03-01T00:00:00Z</lastmod>")
	require.Contains(t, body, "<loc>https://ethereum.org/ar/staking/</loc>")
	require.NotContains(t, body, "/about/")

	raw, err := os.ReadFile(filepath.Join(out, "build.json"))
	require.NoError(t, err)
	var manifest Manifest
	require.NoError(t, json.Unmarshal(raw, &manifest))
	require.Equal(t, "01HXTESTBUILD", manifest.ID)
	require.Equal(t, "ethereum/light", manifest.Theme)
	require.Len(t, manifest.Pages, 3)
}

func TestBuildFailsOnRenderError(t *testing.T) {
	t.Parallel()

	fsys := siteFS()
	fsys["staking/pools/index.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Pools\ntemplate: staking\n---\n{{< Missing >}}\n")}
	b, _ := newTestBuilder(t, fsys)

	_, err := b.Build(context.Background())
	require.ErrorIs(t, err, markdown.ErrUnknownComponent)
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "index.html", outputPath("/"))
	require.Equal(t, "staking/index.html", outputPath("/staking/"))
	require.Equal(t, "ar/staking/solo/index.html", outputPath("ar/staking/solo"))
}

func TestAssetPath(t *testing.T) {
	t.Parallel()

	p, ok := assetPath("/content/staking/hero.png")
	require.True(t, ok)
	require.Equal(t, "staking/hero.png", p)

	_, ok = assetPath("https://cdn.example.com/hero.png")
	require.False(t, ok)
	_, ok = assetPath("/content/../secret")
	require.False(t, ok)
}

func TestBuildSampleContent(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Site: config.SiteConfig{
		URL:             "https://ethereum.org",
		Title:           "ethereum.org",
		ContentDir:      filepath.Join("..", "..", "content"),
		DefaultLanguage: "en",
		Languages:       []string{"en", "ar"},
	}}
	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)

	out := t.TempDir()
	manifest, err := NewBuilder(a.Store, a.Template, a.Bundle, out).Build(context.Background())
	require.NoError(t, err)
	require.Len(t, manifest.Pages, 5)

	html, err := os.ReadFile(filepath.Join(out, "staking", "pools", "index.html"))
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, html)
	require.Equal(t, 2, doc.Find(".staking-products article.staking-product").Length())
	require.Equal(t, 1, doc.Find("h2#explore").Length())
}
