package components

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/staking-web/internal/seo"
)

// LayoutProps configures the HTML document shell.
type LayoutProps struct {
	Lang       string
	Meta       seo.Meta
	Stylesheet string
}

// Layout renders the document shell around body.
func Layout(p LayoutProps, body templ.Component) templ.Component {
	stylesheet := p.Stylesheet
	if stylesheet == "" {
		stylesheet = "/assets/styles.css"
	}
	return Render(func(ctx context.Context) g.Node {
		return h.Doctype(h.HTML(h.Lang(p.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				pageMetadata(p.Meta),
				h.Link(h.Rel("stylesheet"), href(stylesheet)),
			),
			h.Body(Embed(ctx, body)),
		))
	})
}

// PageMetadata renders the title, description, canonical link, social
// cards and JSON-LD blocks of a page head.
func PageMetadata(m seo.Meta) templ.Component {
	return Static(pageMetadata(m))
}

func pageMetadata(m seo.Meta) g.Node {
	meta := func(attr, key, value string) g.Node {
		return g.If(value != "", h.Meta(g.Attr(attr, key), h.Content(value)))
	}
	return g.Group{
		h.TitleEl(g.Text(m.Title)),
		meta("name", "description", m.Description),
		g.If(m.Canonical != "", h.Link(h.Rel("canonical"), href(m.Canonical))),
		meta("property", "og:title", m.OG.Title),
		meta("property", "og:description", m.OG.Description),
		meta("property", "og:type", m.OG.Type),
		meta("property", "og:url", m.OG.URL),
		meta("property", "og:image", m.OG.Image),
		meta("property", "og:locale", m.OG.Locale),
		meta("name", "twitter:card", m.Twitter.Card),
		meta("name", "twitter:site", m.Twitter.Site),
		meta("name", "twitter:image", m.Twitter.Image),
		// encoding/json escapes <, > and &, so the payload cannot close the script element
		g.Map(m.JSONLD, func(doc string) g.Node {
			return h.Script(h.Type("application/ld+json"), g.Raw(doc))
		}),
	}
}
