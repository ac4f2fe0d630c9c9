// Package site exports every routed page to static HTML.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/i18n"
	"finitefield.org/staking-web/internal/observability"
	"finitefield.org/staking-web/internal/styles"
	"finitefield.org/staking-web/internal/templates/staking"
)

const (
	manifestFileName   = "build.json"
	sitemapFileName    = "sitemap.xml"
	stylesheetFileName = "assets/styles.css"
	// StylesheetURL is where exported pages link the generated stylesheet.
	StylesheetURL = "/" + stylesheetFileName

	instrumentationName = "finitefield.org/staking-web/internal/site"
)

// Pages is the content the builder exports.
type Pages interface {
	Site() content.SiteMetadata
	FS() fs.FS
	Routes(ctx context.Context, template string) ([]content.PageContext, error)
	Page(ctx context.Context, slug string) (content.QueryResult, content.PageContext, error)
}

// Manifest summarises one build. It is written to build.json.
type Manifest struct {
	ID          string      `json:"id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Duration    string      `json:"duration"`
	Theme       string      `json:"theme"`
	Pages       []PageEntry `json:"pages"`
	Assets      []string    `json:"assets"`
}

// PageEntry is one exported page.
type PageEntry struct {
	Slug         string    `json:"slug"`
	Source       string    `json:"source"`
	Output       string    `json:"output"`
	Language     string    `json:"language"`
	LastModified time.Time `json:"last_modified"`
}

// Builder renders pages into a directory.
type Builder struct {
	pages    Pages
	template *staking.Template
	bundle   *i18n.Bundle
	outDir   string
	workers  int
	variant  string
	now      func() time.Time
	newID    func() string
	tracer   trace.Tracer
}

// Option customises a Builder.
type Option func(*Builder)

// WithWorkers bounds the number of pages rendered at once. Values below one
// use the CPU count.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.workers = n
	}
}

// WithThemeVariant selects the stylesheet variant.
func WithThemeVariant(variant string) Option {
	return func(b *Builder) {
		b.variant = variant
	}
}

// WithClock overrides the build clock.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator overrides the build id generator.
func WithIDGenerator(gen func() string) Option {
	return func(b *Builder) {
		if gen != nil {
			b.newID = gen
		}
	}
}

// WithTracerProvider sets the provider for build and page spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(b *Builder) {
		if tp != nil {
			b.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// NewBuilder exports pages rendered with tmpl into outDir.
func NewBuilder(pages Pages, tmpl *staking.Template, bundle *i18n.Bundle, outDir string, opts ...Option) *Builder {
	b := &Builder{
		pages:    pages,
		template: tmpl,
		bundle:   bundle,
		outDir:   outDir,
		now:      time.Now,
		newID:    func() string { return ulid.Make().String() },
		tracer:   otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.workers < 1 {
		b.workers = runtime.NumCPU()
	}
	return b
}

// Build renders every staking page, the stylesheet, referenced images, the
// sitemap and the manifest. The first failure aborts the build.
func (b *Builder) Build(ctx context.Context) (Manifest, error) {
	ctx, span := b.tracer.Start(ctx, "site.Build")
	defer span.End()

	manifest, err := b.build(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return Manifest{}, err
	}
	span.SetAttributes(attribute.Int("site.pages", len(manifest.Pages)))
	return manifest, nil
}

func (b *Builder) build(ctx context.Context) (Manifest, error) {
	logger := observability.FromContext(ctx)
	started := b.now()

	if b.pages == nil || b.template == nil {
		return Manifest{}, errors.New("site: builder requires pages and a template")
	}
	if b.outDir == "" {
		return Manifest{}, errors.New("site: output directory is required")
	}

	routes, err := b.pages.Routes(ctx, staking.Name)
	if err != nil {
		return Manifest{}, fmt.Errorf("site: list routes: %w", err)
	}

	entries := make([]PageEntry, len(routes))
	var (
		assetsMu sync.Mutex
		assets   = map[string]struct{}{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, route := range routes {
		g.Go(func() error {
			entry, image, err := b.renderPage(gctx, route.Slug)
			if err != nil {
				return err
			}
			entries[i] = entry
			if image != "" {
				assetsMu.Lock()
				assets[image] = struct{}{}
				assetsMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Manifest{}, err
	}

	copied, err := b.copyAssets(assets)
	if err != nil {
		return Manifest{}, err
	}

	variant := b.variant
	if variant == "" {
		variant = styles.VariantLight
	}
	css, err := styles.Build(variant)
	if err != nil {
		return Manifest{}, fmt.Errorf("site: stylesheet: %w", err)
	}
	if err := b.write(stylesheetFileName, []byte(css)); err != nil {
		return Manifest{}, err
	}

	sitemap, err := buildSitemap(b.pages.Site().URL, entries, started)
	if err != nil {
		return Manifest{}, fmt.Errorf("site: sitemap: %w", err)
	}
	if err := b.write(sitemapFileName, sitemap); err != nil {
		return Manifest{}, err
	}

	manifest := Manifest{
		ID:          b.newID(),
		GeneratedAt: started.UTC(),
		Duration:    b.now().Sub(started).String(),
		Theme:       styles.ThemeName + "/" + variant,
		Pages:       entries,
		Assets:      copied,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("site: encode manifest: %w", err)
	}
	if err := b.write(manifestFileName, append(data, '\n')); err != nil {
		return Manifest{}, err
	}

	logger.Info("site built",
		zap.String("build_id", manifest.ID),
		zap.Int("pages", len(entries)),
		zap.Int("assets", len(copied)),
		zap.String("out_dir", b.outDir),
		zap.Duration("duration", b.now().Sub(started)),
	)
	return manifest, nil
}

// renderPage writes one page and returns its entry and the content path of
// its hero image, if any.
func (b *Builder) renderPage(ctx context.Context, slug string) (_ PageEntry, _ string, err error) {
	ctx, span := b.tracer.Start(ctx, "site.renderPage", trace.WithAttributes(attribute.String("page.slug", slug)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
		}
		span.End()
	}()

	res, pc, err := b.pages.Page(ctx, slug)
	if err != nil {
		return PageEntry{}, "", fmt.Errorf("site: load %s: %w", slug, err)
	}

	lang := pc.Language
	rctx := i18n.WithLocalizer(ctx, b.bundle, lang)
	var buf bytes.Buffer
	page := b.template.Page(staking.Props{
		Data:        res,
		PageContext: pc,
		Location:    content.Location{Pathname: pc.Slug},
		Stylesheet:  StylesheetURL,
	})
	if err := page.Render(rctx, &buf); err != nil {
		return PageEntry{}, "", fmt.Errorf("site: render %s: %w", pc.Slug, err)
	}

	out := outputPath(pc.Slug)
	if err := b.write(out, buf.Bytes()); err != nil {
		return PageEntry{}, "", err
	}
	observability.FromContext(ctx).Debug("page exported", zap.String("slug", pc.Slug), zap.String("output", out))

	image := ""
	if img := res.PageData.Frontmatter.Image; img != nil {
		if p, ok := assetPath(img.Src); ok {
			image = p
		}
	}
	return PageEntry{
		Slug:         pc.Slug,
		Source:       pc.RelativePath,
		Output:       out,
		Language:     lang,
		LastModified: res.PageData.Parent.MTime,
	}, image, nil
}

func (b *Builder) copyAssets(assets map[string]struct{}) ([]string, error) {
	out := make([]string, 0, len(assets))
	for p := range assets {
		data, err := fs.ReadFile(b.pages.FS(), p)
		if err != nil {
			return nil, fmt.Errorf("site: read asset %s: %w", p, err)
		}
		target := "content/" + p
		if err := b.write(target, data); err != nil {
			return nil, err
		}
		out = append(out, target)
	}
	sort.Strings(out)
	return out, nil
}

// write stores data at the slash-separated rel path under the output directory.
func (b *Builder) write(rel string, data []byte) error {
	target := filepath.Join(b.outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("site: create dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("site: write %s: %w", rel, err)
	}
	return nil
}
