package staking

import (
	"github.com/a-h/templ"

	"finitefield.org/staking-web/internal/components"
	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/markdown"
)

// Elements maps markdown element names to their styled renderers.
func Elements() map[string]markdown.ElementStyle {
	return map[string]markdown.ElementStyle{
		"a":     {Class: "md-link"},
		"h1":    {Class: "md-h1", Anchor: true},
		"h2":    {Class: "md-h2", Anchor: true},
		"h3":    {Class: "md-h3", Anchor: true},
		"h4":    {Class: "md-h4", Anchor: true},
		"p":     {Class: "md-p"},
		"pre":   {Class: "md-pre"},
		"table": {Class: "md-table"},
	}
}

// Shortcodes maps the shortcode names page bodies may use to components.
// Components that list structured data read it from catalog.
func Shortcodes(catalog *content.Catalog) map[string]markdown.ShortcodeFunc {
	if catalog == nil {
		catalog = &content.Catalog{}
	}
	return map[string]markdown.ShortcodeFunc{
		"MeetupList": func(markdown.Props) templ.Component {
			return components.MeetupList(catalog.Meetups)
		},
		"RandomAppList": func(p markdown.Props) templ.Component {
			return components.RandomAppList(catalog.Apps, p.Int("count", 5))
		},
		"Roadmap": func(markdown.Props) templ.Component {
			return components.Roadmap(catalog.Roadmap)
		},
		"Logo": func(p markdown.Props) templ.Component {
			return components.Logo(p.Int("size", 0))
		},
		"ButtonLink": func(p markdown.Props) templ.Component {
			return components.ButtonLink(p.Get("to"), label(p, "label"), p.Bool("isSecondary"))
		},
		"Contributors": func(markdown.Props) templ.Component {
			return components.Contributors(catalog.Contributors)
		},
		"InfoBanner": func(p markdown.Props) templ.Component {
			return components.InfoBanner(components.InfoBannerProps{
				Emoji:     p.Get("emoji"),
				Title:     p.Get("title"),
				IsWarning: p.Bool("isWarning"),
			}, p.Children)
		},
		"Card": func(p markdown.Props) templ.Component {
			return components.Card(components.CardProps{
				Emoji:       p.Get("emoji"),
				Title:       p.Get("title"),
				Description: p.Get("description"),
				Href:        p.Get("to"),
			}, p.Children)
		},
		"CardGrid": func(p markdown.Props) templ.Component {
			return components.CardGrid(p.Children)
		},
		"ExpandableCardGrid": func(p markdown.Props) templ.Component {
			return components.ExpandableCardGrid(p.Children)
		},
		"Divider": func(markdown.Props) templ.Component {
			return components.Divider()
		},
		"SectionNav": func(p markdown.Props) templ.Component {
			return components.SectionNav(p.Children)
		},
		"Pill": func(p markdown.Props) templ.Component {
			return components.Pill(label(p, "label"), p.Bool("isSecondary"))
		},
		"TranslationsInProgress": func(markdown.Props) templ.Component {
			return components.TranslationsInProgress()
		},
		"Emoji": func(p markdown.Props) templ.Component {
			return components.Emoji(p.GetOr("text", p.Get("param1")))
		},
		"UpgradeStatus": func(p markdown.Props) templ.Component {
			key := p.GetOr("name", p.Get("param1"))
			upgrade, ok := catalog.Upgrades[key]
			if !ok {
				upgrade = content.Upgrade{Name: key}
			}
			return components.UpgradeStatus(upgrade, p.Children)
		},
		"DocLink": func(p markdown.Props) templ.Component {
			return components.DocLink(p.Get("to"), label(p, "title"))
		},
		"ExpandableCard": func(p markdown.Props) templ.Component {
			return components.ExpandableCard(components.ExpandableCardProps{
				Title:          p.Get("title"),
				ContentPreview: p.Get("contentPreview"),
				Emoji:          p.Get("emoji"),
				Open:           p.Bool("open"),
			}, p.Children)
		},
		"YouTube": func(p markdown.Props) templ.Component {
			return components.YouTube(p.GetOr("id", p.Get("param1")), p.Int("start", 0), p.Get("title"))
		},
		"LaunchpadWidget": func(markdown.Props) templ.Component {
			return components.LaunchpadWidget()
		},
		"StakingProductsCardGrid": func(p markdown.Props) templ.Component {
			return components.StakingProductsCardGrid(catalog.ProductsIn(p.Get("category")))
		},
		"StakingComparison": func(p markdown.Props) templ.Component {
			return components.StakingComparison(p.Get("page"))
		},
	}
}

// Modes declares which shortcodes wrap inner markdown. Shortcodes that fall
// back to their inner content for a label are optional.
func Modes() map[string]markdown.InnerMode {
	return map[string]markdown.InnerMode{
		"CardGrid":                markdown.InnerRequired,
		"ExpandableCardGrid":      markdown.InnerRequired,
		"SectionNav":              markdown.InnerRequired,
		"MeetupList":              markdown.InnerNone,
		"RandomAppList":           markdown.InnerNone,
		"Roadmap":                 markdown.InnerNone,
		"Logo":                    markdown.InnerNone,
		"Contributors":            markdown.InnerNone,
		"Divider":                 markdown.InnerNone,
		"TranslationsInProgress":  markdown.InnerNone,
		"Emoji":                   markdown.InnerNone,
		"YouTube":                 markdown.InnerNone,
		"LaunchpadWidget":         markdown.InnerNone,
		"StakingProductsCardGrid": markdown.InnerNone,
		"StakingComparison":       markdown.InnerNone,
	}
}

// Components is the full element and shortcode table for staking pages.
func Components(catalog *content.Catalog) markdown.Components {
	return markdown.Components{Elements: Elements(), Shortcodes: Shortcodes(catalog), Modes: Modes()}
}

// label prefers the named attribute and falls back to the inner content.
func label(p markdown.Props, key string) templ.Component {
	if v := p.Get(key); v != "" {
		return components.Text(v)
	}
	return p.Children
}
