package components

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/staking-web/internal/nav"
)

// DropdownOptions tunes how a ButtonDropdown is placed.
type DropdownOptions struct {
	Class  string
	Mobile bool
}

// ButtonDropdown renders a navigation menu as a disclosure button. The entry
// matching the route in the render context is marked current.
func ButtonDropdown(list nav.DropdownList, opts DropdownOptions) templ.Component {
	variant := ""
	if opts.Mobile {
		variant = "button-dropdown--mobile"
	}
	return Render(func(ctx context.Context) g.Node {
		current := PathnameFromContext(ctx)
		return h.Details(classes("button-dropdown", variant, opts.Class),
			h.Summary(h.Aria("label", list.AriaLabel), g.Text(list.Text)),
			h.Ul(h.Role("menu"),
				g.Map(list.Items, func(it nav.DropdownItem) g.Node {
					active := current != "" && nav.IsActive(it.To, current) && isMostSpecific(list.Items, it.To, current)
					return h.Li(h.A(href(it.To), h.Role("menuitem"), g.If(active, h.Aria("current", "page")), g.Text(it.Text)))
				}),
			),
		)
	})
}

// isMostSpecific reports whether no longer entry also matches current, so
// "/staking" is not marked on "/staking/solo/".
func isMostSpecific(items []nav.DropdownItem, to, current string) bool {
	for _, other := range items {
		if len(other.To) > len(to) && nav.IsActive(other.To, current) {
			return false
		}
	}
	return true
}
