package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"

	"finitefield.org/staking-web/internal/markdown"
	"finitefield.org/staking-web/internal/observability"
)

// ErrNotFound is returned when no page matches a path or slug.
var ErrNotFound = errors.New("content: not found")

const (
	translationsDir = "translations"
	dataDir         = "data"
)

// HeadingSource extracts the outline of a markdown body.
type HeadingSource interface {
	Headings(source string) ([]markdown.Heading, error)
}

type frontMatter struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Lang          string   `yaml:"lang"`
	Template      string   `yaml:"template"`
	Sidebar       bool     `yaml:"sidebar"`
	SidebarDepth  int      `yaml:"sidebarDepth"`
	Emoji         string   `yaml:"emoji"`
	SummaryPoints []string `yaml:"summaryPoints"`
	Image         string   `yaml:"image"`
	Alt           string   `yaml:"alt"`
}

// Store loads markdown pages from a content tree and answers page queries.
//
// Pages in the default language live at `<path>/index.md` (or `<path>.md`);
// translations live under `translations/<lang>/<path>/index.md` and are
// routed under a `/<lang>/` prefix.
type Store struct {
	fsys      fs.FS
	headings  HeadingSource
	site      SiteMetadata
	languages []string
	ttl       time.Duration
	now       func() time.Time

	mu      sync.RWMutex
	snap    *snapshot
	expires time.Time
}

type snapshot struct {
	byPath map[string]PageData
	bySlug map[string]string
	routes []PageContext
}

// Option configures a Store.
type Option func(*Store)

// WithTTL bounds how long a loaded snapshot is served before the tree is
// re-read. Zero keeps the first snapshot until Invalidate.
func WithTTL(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.ttl = d
		}
	}
}

// WithLanguages sets the languages accepted as translation directories.
func WithLanguages(langs []string) Option {
	return func(s *Store) {
		s.languages = append([]string(nil), langs...)
	}
}

// WithClock overrides the time source used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore builds a store over fsys.
func NewStore(fsys fs.FS, site SiteMetadata, headings HeadingSource, opts ...Option) *Store {
	s := &Store{
		fsys:     fsys,
		headings: headings,
		site:     site,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.site.DefaultLanguage == "" {
		s.site.DefaultLanguage = "en"
	}
	if len(s.languages) == 0 {
		s.languages = []string{s.site.DefaultLanguage}
	}
	return s
}

// Site returns the site metadata attached to every query result.
func (s *Store) Site() SiteMetadata {
	return s.site
}

// FS exposes the content tree, e.g. for serving images.
func (s *Store) FS() fs.FS {
	return s.fsys
}

// Query returns the page stored at relativePath (e.g. "staking/index.md").
func (s *Store) Query(ctx context.Context, relativePath string) (QueryResult, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return QueryResult{}, err
	}
	page, ok := snap.byPath[path.Clean(strings.TrimPrefix(relativePath, "/"))]
	if !ok {
		return QueryResult{}, fmt.Errorf("%w: %s", ErrNotFound, relativePath)
	}
	return QueryResult{SiteData: SiteData{SiteMetadata: s.site}, PageData: clonePage(page)}, nil
}

// Page returns the page routed at slug. Missing leading or trailing slashes are tolerated.
func (s *Store) Page(ctx context.Context, slug string) (QueryResult, PageContext, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return QueryResult{}, PageContext{}, err
	}
	rel, ok := snap.bySlug[NormalizeSlug(slug)]
	if !ok {
		return QueryResult{}, PageContext{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	page := snap.byPath[rel]
	pc := PageContext{
		RelativePath: rel,
		Slug:         page.Fields.Slug,
		Language:     page.Frontmatter.Lang,
		Template:     page.Frontmatter.Template,
	}
	return QueryResult{SiteData: SiteData{SiteMetadata: s.site}, PageData: clonePage(page)}, pc, nil
}

// Routes lists the pages using template, sorted by slug. An empty template lists every page.
func (s *Store) Routes(ctx context.Context, template string) ([]PageContext, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PageContext, 0, len(snap.routes))
	for _, r := range snap.routes {
		if template == "" || r.Template == template {
			out = append(out, r)
		}
	}
	return out, nil
}

// Invalidate drops the cached snapshot.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
}

func (s *Store) load(ctx context.Context) (*snapshot, error) {
	s.mu.RLock()
	snap, expires := s.snap, s.expires
	s.mu.RUnlock()
	if snap != nil && (s.ttl == 0 || s.now().Before(expires)) {
		return snap, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap != nil && (s.ttl == 0 || s.now().Before(s.expires)) {
		return s.snap, nil
	}
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	s.snap = snap
	s.expires = s.now().Add(s.ttl)
	return snap, nil
}

func (s *Store) read(ctx context.Context) (*snapshot, error) {
	logger := observability.FromContext(ctx)
	snap := &snapshot{byPath: map[string]PageData{}, bySlug: map[string]string{}}

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p == dataDir {
				return fs.SkipDir
			}
			return nil
		}
		if path.Ext(p) != ".md" {
			return nil
		}
		page, err := s.readPage(ctx, p)
		if err != nil {
			return err
		}
		if prev, dup := snap.bySlug[page.Fields.Slug]; dup {
			logger.Warn("duplicate page slug", zap.String("slug", page.Fields.Slug), zap.String("kept", prev), zap.String("skipped", p))
			return nil
		}
		snap.byPath[p] = page
		snap.bySlug[page.Fields.Slug] = p
		snap.routes = append(snap.routes, PageContext{
			RelativePath: p,
			Slug:         page.Fields.Slug,
			Language:     page.Frontmatter.Lang,
			Template:     page.Frontmatter.Template,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: load: %w", err)
	}
	sort.Slice(snap.routes, func(i, j int) bool { return snap.routes[i].Slug < snap.routes[j].Slug })
	logger.Info("content loaded", zap.Int("pages", len(snap.routes)))
	return snap, nil
}

func (s *Store) readPage(ctx context.Context, p string) (PageData, error) {
	raw, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return PageData{}, err
	}
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return PageData{}, fmt.Errorf("parse front matter %s: %w", p, err)
	}

	lang, route := s.route(p)
	if l := strings.TrimSpace(fm.Lang); l != "" {
		lang = l
	}
	page := PageData{
		Fields: Fields{Slug: route},
		Frontmatter: Frontmatter{
			Title:         strings.TrimSpace(fm.Title),
			Description:   strings.TrimSpace(fm.Description),
			Lang:          lang,
			Template:      strings.TrimSpace(fm.Template),
			Sidebar:       fm.Sidebar,
			SidebarDepth:  fm.SidebarDepth,
			Emoji:         strings.TrimSpace(fm.Emoji),
			SummaryPoints: fm.SummaryPoints,
			Alt:           strings.TrimSpace(fm.Alt),
		},
		Body:   string(body),
		Parent: Parent{RelativePath: p},
	}
	if info, err := fs.Stat(s.fsys, p); err == nil {
		page.Parent.MTime = info.ModTime()
	}

	if ref := resolveAsset(path.Dir(p), fm.Image); ref != "" {
		img, err := loadImage(s.fsys, ref)
		if err != nil {
			observability.FromContext(ctx).Warn("hero image unavailable", zap.String("page", p), zap.Error(err))
		} else {
			page.Frontmatter.Image = img
		}
	}

	if s.headings != nil {
		headings, err := s.headings.Headings(page.Body)
		if err != nil {
			return PageData{}, fmt.Errorf("outline %s: %w", p, err)
		}
		page.TableOfContents.Items = BuildTOC(headings)
	}
	return page, nil
}

// route maps a content path to its language and slug.
func (s *Store) route(p string) (string, string) {
	lang := s.site.DefaultLanguage
	dir := strings.TrimSuffix(p, path.Ext(p))
	if path.Base(dir) == "index" {
		dir = path.Dir(dir)
	}
	if dir == "." {
		dir = ""
	}
	parts := strings.Split(dir, "/")
	if len(parts) >= 2 && parts[0] == translationsDir && s.isLanguage(parts[1]) {
		lang = parts[1]
		return lang, NormalizeSlug(strings.Join(parts[1:], "/"))
	}
	return lang, NormalizeSlug(dir)
}

func (s *Store) isLanguage(l string) bool {
	for _, lang := range s.languages {
		if strings.EqualFold(lang, l) {
			return true
		}
	}
	return false
}

// NormalizeSlug renders a route as "/a/b/" (or "/" for the root).
func NormalizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return "/"
	}
	return "/" + path.Clean(slug) + "/"
}

func clonePage(p PageData) PageData {
	p.Frontmatter.SummaryPoints = append([]string(nil), p.Frontmatter.SummaryPoints...)
	if p.Frontmatter.Image != nil {
		img := *p.Frontmatter.Image
		p.Frontmatter.Image = &img
	}
	p.TableOfContents.Items = cloneTOC(p.TableOfContents.Items)
	return p
}

func cloneTOC(items []TOCItem) []TOCItem {
	if items == nil {
		return nil
	}
	out := make([]TOCItem, len(items))
	for i, it := range items {
		it.Items = cloneTOC(it.Items)
		out[i] = it
	}
	return out
}
