package components

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/staking-web/internal/content"
)

// StakingProductsCardGrid lists staking products of one category.
func StakingProductsCardGrid(products []content.StakingProduct) templ.Component {
	pill := func(label string, secondary bool) g.Node {
		return h.Span(pillClass(secondary), g.Text(label))
	}
	return Static(h.Div(h.Class("staking-products"), g.Map(products, func(p content.StakingProduct) g.Node {
		return h.Article(h.Class("staking-product"), g.Attr("data-category", p.Category),
			h.H3(h.A(href(p.URL), g.Text(p.Name))),
			g.If(p.Description != "", h.P(g.Text(p.Description))),
			h.Div(h.Class("staking-product-flags"),
				g.If(p.OpenSource, pill("Open source", false)),
				g.If(p.Audited, pill("Audited", false)),
				g.Map(p.Platforms, func(platform string) g.Node {
					return pill(platform, true)
				}),
			),
		)
	})))
}

type stakingOption struct {
	Key         string
	Title       string
	Emoji       string
	Description string
	To          string
}

var stakingOptions = []stakingOption{
	{
		Key:         "solo",
		Title:       "Solo staking",
		Emoji:       ":money_bag:",
		Description: "Run your own hardware and keep full control of your keys. Requires 32 ETH and a reliable connection.",
		To:          "/staking/solo/",
	},
	{
		Key:         "saas",
		Title:       "Staking as a service",
		Emoji:       ":handshake:",
		Description: "Deposit 32 ETH and let a node operator run the validator for you, keeping your withdrawal keys.",
		To:          "/staking/saas/",
	},
	{
		Key:         "pools",
		Title:       "Pooled staking",
		Emoji:       ":people_holding_hands:",
		Description: "Stake any amount of ETH alongside others and often receive a liquid token in return.",
		To:          "/staking/pools/",
	},
}

// StakingComparison compares the current staking option with the others. An
// unknown page shows every option.
func StakingComparison(page string) templ.Component {
	others := make([]stakingOption, 0, len(stakingOptions))
	for _, o := range stakingOptions {
		if o.Key != page {
			others = append(others, o)
		}
	}
	return Render(func(ctx context.Context) g.Node {
		return h.Section(h.Class("staking-comparison"),
			h.H2(T(ctx, "staking.comparison.title", "Compare with other options")),
			g.Map(others, func(o stakingOption) g.Node {
				return h.Div(h.Class("staking-comparison-item"), g.Attr("data-option", o.Key),
					emoji(o.Emoji),
					h.Div(
						h.H3(g.Text(o.Title)),
						h.P(g.Text(o.Description)),
						Embed(ctx, DocLink(o.To, Text(o.Title))),
					),
				)
			}),
		)
	})
}
