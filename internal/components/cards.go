package components

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CardProps configures a Card.
type CardProps struct {
	Emoji       string
	Title       string
	Description string
	Href        string
}

// Card is a bordered tile with an optional emoji, title and description.
// Children render below the description.
func Card(p CardProps, children templ.Component) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		body := g.Group{
			g.If(p.Emoji != "", h.Div(h.Class("card-emoji"), emoji(p.Emoji))),
			g.If(p.Title != "", h.H3(g.Text(p.Title))),
			g.If(p.Description != "", h.P(g.Text(p.Description))),
			Embed(ctx, children),
		}
		if p.Href != "" {
			return h.A(classes("card", "card--link"), href(p.Href), body)
		}
		return h.Div(h.Class("card"), body)
	})
}

func CardGrid(children templ.Component) templ.Component {
	return wrap(h.Div, "card-grid", children)
}

func ExpandableCardGrid(children templ.Component) templ.Component {
	return wrap(h.Div, "expandable-card-grid", children)
}

// ExpandableCardProps configures an ExpandableCard.
type ExpandableCardProps struct {
	Title          string
	ContentPreview string
	Emoji          string
	Open           bool
}

// ExpandableCard shows a title and preview; children are revealed on expand.
func ExpandableCard(p ExpandableCardProps, children templ.Component) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		return h.Details(h.Class("expandable-card"), g.If(p.Open, g.Attr("open")),
			h.Summary(
				g.If(p.Emoji != "", emoji(p.Emoji)),
				h.Div(
					h.H3(g.Text(p.Title)),
					g.If(p.ContentPreview != "", h.P(g.Text(p.ContentPreview))),
				),
			),
			h.Div(h.Class("expandable-card-body"), Embed(ctx, children)),
		)
	})
}

// InfoBannerProps configures an InfoBanner.
type InfoBannerProps struct {
	Emoji     string
	Title     string
	IsWarning bool
}

// InfoBanner is a highlighted callout around children.
func InfoBanner(p InfoBannerProps, children templ.Component) templ.Component {
	variant, role := "", "note"
	if p.IsWarning {
		variant, role = "info-banner--warning", "alert"
	}
	return Render(func(ctx context.Context) g.Node {
		return h.Aside(classes("info-banner", variant), h.Role(role),
			g.If(p.Emoji != "", emoji(p.Emoji)),
			h.Div(
				g.If(p.Title != "", h.H4(h.Class("info-banner-title"), g.Text(p.Title))),
				Embed(ctx, children),
			),
		)
	})
}

func Divider() templ.Component {
	return Static(h.Hr(h.Class("divider")))
}

func SectionNav(children templ.Component) templ.Component {
	return wrap(h.Nav, "section-nav", children)
}

// Pill is a small rounded label.
func Pill(label templ.Component, secondary bool) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		return h.Span(pillClass(secondary), Embed(ctx, label))
	})
}

func pillClass(secondary bool) g.Node {
	if secondary {
		return classes("pill", "pill--secondary")
	}
	return classes("pill")
}

// ButtonLink is a link styled as a button. External targets open in a new tab.
func ButtonLink(to string, label templ.Component, secondary bool) templ.Component {
	variant := ""
	if secondary {
		variant = "button-link--secondary"
	}
	external := isExternal(to)
	return Render(func(ctx context.Context) g.Node {
		return h.A(classes("button-link", variant), href(to),
			g.If(external, h.Target("_blank")),
			g.If(external, h.Rel("noopener noreferrer")),
			Embed(ctx, label),
		)
	})
}

// DocLink points to another documentation page.
func DocLink(to string, label templ.Component) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		return h.A(h.Class("doc-link"), href(to),
			h.Span(h.Class("doc-link-label"), Embed(ctx, label)),
			h.Span(h.Class("doc-link-arrow"), h.Aria("hidden", "true"), g.Text("→")),
		)
	})
}

// wrap puts children inside a single classed element.
func wrap(el func(...g.Node) g.Node, class string, children templ.Component) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		return el(h.Class(class), Embed(ctx, children))
	})
}

func isExternal(to string) bool {
	return strings.HasPrefix(to, "http://") || strings.HasPrefix(to, "https://")
}
