package components

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/staking-web/internal/content"
)

// TableOfContents renders the page outline cut at maxDepth. The mobile
// variant collapses into a disclosure widget.
func TableOfContents(items []content.TOCItem, maxDepth int, isMobile bool) templ.Component {
	items = content.Trim(items, maxDepth)
	if len(items) == 0 {
		return templ.NopComponent
	}
	return Render(func(ctx context.Context) g.Node {
		if isMobile {
			return h.Details(classes("toc", "toc-mobile"),
				h.Summary(T(ctx, "toc.mobile.title", "Table of contents")),
				tocList(items),
			)
		}
		return h.Nav(h.Class("toc"), h.Aria("label", "Table of contents"), tocList(items))
	})
}

// UpgradeTableOfContents is the sticky sidebar outline. The frame renders
// even when the page has no headings.
func UpgradeTableOfContents(items []content.TOCItem, maxDepth int) templ.Component {
	items = content.Trim(items, maxDepth)
	return Render(func(ctx context.Context) g.Node {
		return h.Aside(classes("toc", "upgrade-toc"),
			h.Div(h.Class("toc-title"), T(ctx, "toc.title", "On this page")),
			g.If(len(items) > 0, tocList(items)),
		)
	})
}

func tocList(items []content.TOCItem) g.Node {
	if len(items) == 0 {
		return nil
	}
	return h.Ul(g.Map(items, func(it content.TOCItem) g.Node {
		return h.Li(g.Attr("data-depth", strconv.Itoa(it.Depth)),
			h.A(href(it.URL), g.Text(it.Title)),
			tocList(it.Items),
		)
	}))
}
