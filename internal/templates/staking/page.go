// Package staking renders pages that use the "staking" template: a hero with
// breadcrumbs, summary and image above a two-column layout of a sticky
// navigation column and the markdown body.
package staking

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/staking-web/internal/components"
	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/i18n"
	"finitefield.org/staking-web/internal/markdown"
	"finitefield.org/staking-web/internal/nav"
	"finitefield.org/staking-web/internal/seo"
)

// Name is the front matter template value routed to this package.
const Name = "staking"

// Props is everything one page render needs.
type Props struct {
	Data        content.QueryResult
	PageContext content.PageContext
	Location    content.Location
	// Stylesheet overrides the stylesheet URL linked from the head.
	Stylesheet string
}

// Template renders staking pages. It is safe for concurrent use.
type Template struct {
	md *markdown.Renderer
}

// New builds the template with the shortcode data in catalog.
func New(catalog *content.Catalog) *Template {
	return &Template{md: markdown.New(Components(catalog))}
}

// Markdown exposes the body renderer so heading extraction assigns the same
// anchors the page renders.
func (t *Template) Markdown() *markdown.Renderer {
	return t.md
}

// Page renders the full document for p. Errors from the markdown body are
// returned unchanged.
func (t *Template) Page(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		page := p.Data.PageData
		fm := page.Frontmatter
		lang := fm.Lang
		if lang == "" {
			lang = p.PageContext.Language
		}
		bundle := i18n.BundleFromContext(ctx)
		ctx = i18n.WithLocalizer(ctx, bundle, lang)
		ctx = components.WithPathname(ctx, p.Location.Pathname)

		layout := components.LayoutProps{
			Lang:       lang,
			Meta:       t.meta(ctx, p, lang),
			Stylesheet: p.Stylesheet,
		}
		body := components.Render(func(ctx context.Context) g.Node {
			return t.body(ctx, p, lang)
		})
		return components.Layout(layout, body).Render(ctx, w)
	})
}

func (t *Template) body(ctx context.Context, p Props, lang string) g.Node {
	page := p.Data.PageData
	fm := page.Frontmatter
	toc := page.TableOfContents.Items
	staking := nav.StakingOptions()
	embed := func(c templ.Component) g.Node {
		return components.Embed(ctx, c)
	}

	return g.Group{
		h.Div(h.Class("hero-container"),
			h.Div(h.Class("title-card"),
				embed(components.Breadcrumbs(p.Location.Pathname)),
				h.H1(h.Class("staking-title"), g.Text(fm.Title)),
				h.Div(h.Class("summary-box"),
					h.Ul(g.Map(fm.SummaryPoints, func(point string) g.Node {
						return h.Li(h.Class("summary-point"), g.Text(point))
					})),
				),
				h.Div(h.Class("mobile-toc"), embed(components.TableOfContents(toc, fm.SidebarDepth, true))),
			),
			embed(components.Image(fm.Image, fm.Alt, "hero-image")),
		),
		h.Div(h.Class("page"), g.Attr("dir", i18n.Direction(lang)),
			h.Aside(h.Class("info-column"),
				embed(components.ButtonDropdown(staking, components.DropdownOptions{Class: "staking-dropdown"})),
				h.H1(h.Class("info-title"), g.Text(fm.Title)),
				g.If(fm.Sidebar, embed(components.UpgradeTableOfContents(toc, fm.SidebarDepth))),
			),
			h.Article(h.ID("content"), h.Class("content-container"),
				embed(t.md.Component(page.Body)),
				embed(components.FeedbackCard("")),
			),
		),
		h.Div(h.Class("mobile-button"),
			embed(components.ButtonDropdown(staking, components.DropdownOptions{Class: "mobile-dropdown", Mobile: true})),
		),
	}
}

func (t *Template) meta(ctx context.Context, p Props, lang string) seo.Meta {
	page := p.Data.PageData
	site := p.Data.SiteData.SiteMetadata
	crumbs := nav.Breadcrumbs(p.Location.Pathname, i18n.BundleFromContext(ctx).Supported())
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: i18n.TOr(ctx, c.LabelKey, c.Label), Item: c.Href})
	}
	image := ""
	if page.Frontmatter.Image != nil {
		image = page.Frontmatter.Image.Src
	}
	modified := ""
	if !page.Parent.MTime.IsZero() {
		modified = page.Parent.MTime.UTC().Format("2006-01-02")
	}
	return seo.ForPage(seo.PageInput{
		SiteTitle:   site.Title,
		SiteURL:     site.URL,
		Title:       page.Frontmatter.Title,
		Description: page.Frontmatter.Description,
		Slug:        page.Fields.Slug,
		Lang:        lang,
		Image:       image,
		Modified:    modified,
		Crumbs:      items,
	})
}
