package components

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/staking-web/internal/i18n"
	"finitefield.org/staking-web/internal/nav"
)

// Breadcrumbs renders the trail for slug. Language prefixes known to the
// bundle in the render context are folded into the home crumb.
func Breadcrumbs(slug string) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		crumbs := nav.Breadcrumbs(slug, i18n.BundleFromContext(ctx).Supported())
		return h.Nav(h.Class("breadcrumbs"), h.Aria("label", "Breadcrumb"),
			h.Ol(g.Map(crumbs, func(c nav.Crumb) g.Node {
				return h.Li(h.A(href(c.Href), g.If(c.Active, h.Aria("current", "page")), T(ctx, c.LabelKey, c.Label)))
			})),
		)
	})
}
