package components

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/staking-web/internal/content"
)

// MeetupList lists community meetups.
func MeetupList(meetups []content.Meetup) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		if len(meetups) == 0 {
			return h.Div(h.Class("meetup-list"), h.P(T(ctx, "meetups.empty", "No meetups found")))
		}
		return h.Div(h.Class("meetup-list"),
			h.Ul(g.Map(meetups, func(m content.Meetup) g.Node {
				return h.Li(
					h.A(href(m.Link),
						g.If(m.Emoji != "", emoji(m.Emoji)),
						g.Text(" "+m.Title),
					),
					h.Span(h.Class("meetup-location"), g.Text(m.Location)),
				)
			})),
		)
	})
}

// RandomAppList shows count apps in an order derived from the rendered route,
// so a page always renders the same selection.
func RandomAppList(apps []content.App, count int) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		picked := shuffleApps(apps, PathnameFromContext(ctx))
		if count > 0 && count < len(picked) {
			picked = picked[:count]
		}
		return h.Div(h.Class("app-list"),
			h.Ul(g.Map(picked, func(a content.App) g.Node {
				return h.Li(
					h.Div(
						h.A(href(a.URL), g.Text(a.Name)),
						g.If(a.Description != "", h.P(g.Text(a.Description))),
					),
					g.If(a.Image != "", h.Img(src(a.Image), h.Alt(a.Name), h.Width("48"), h.Height("48"))),
				)
			})),
		)
	})
}

func shuffleApps(apps []content.App, seed string) []content.App {
	out := append([]content.App(nil), apps...)
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(seed))
	sum := hash.Sum64()
	r := rand.New(rand.NewPCG(sum, sum>>1))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Roadmap lists roadmap items with their status.
func Roadmap(items []content.RoadmapItem) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		return h.Section(h.Class("roadmap"),
			h.H3(T(ctx, "roadmap.title", "Ethereum roadmap")),
			h.Ol(g.Map(items, func(it content.RoadmapItem) g.Node {
				title := g.Text(it.Title)
				if it.Link != "" {
					title = h.A(href(it.Link), title)
				}
				return h.Li(g.Attr("data-status", it.Status),
					h.Strong(title),
					g.If(it.Status != "", h.Span(h.Class("roadmap-status"), g.Text(it.Status))),
					g.If(it.Description != "", h.P(g.Text(it.Description))),
				)
			})),
		)
	})
}

const ethDiamondPath = `<path fill="currentColor" d="M127.9 0l-2.8 9.5v275.7l2.8 2.8 127.9-75.6z"/><path fill="currentColor" opacity="0.6" d="M127.9 0L0 212.3l127.9 75.6V154.2z"/><path fill="currentColor" d="M127.9 312.2l-1.6 1.9v98.2l1.6 4.6L256 236.6z"/><path fill="currentColor" opacity="0.6" d="M127.9 416.9V312.2L0 236.6z"/>`

// Logo renders the Ethereum glyph at the given height in pixels.
func Logo(size int) templ.Component {
	if size <= 0 {
		size = 64
	}
	return Static(h.Span(h.Class("logo"),
		g.El("svg",
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.Attr("viewBox", "0 0 256 417"),
			h.Height(strconv.Itoa(size)),
			h.Role("img"),
			h.Aria("label", "Ethereum logo"),
			g.Raw(ethDiamondPath),
		),
	))
}

// Contributors renders contributor avatars linking to their profiles.
func Contributors(list []content.Contributor) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		return h.Section(h.Class("contributors"),
			h.H3(T(ctx, "contributors.title", "Contributors")),
			h.Ul(g.Map(list, func(c content.Contributor) g.Node {
				name := c.Name
				if name == "" {
					name = c.Login
				}
				return h.Li(
					h.A(href(c.Profile), h.Title(name),
						g.If(c.AvatarURL != "", h.Img(src(c.AvatarURL), h.Alt(name), g.Attr("loading", "lazy"))),
						h.Span(h.Class("sr-only"), g.Text(name)),
					),
				)
			})),
		)
	})
}

// TranslationsInProgress notes that a page is still being translated.
func TranslationsInProgress() templ.Component {
	return Render(func(ctx context.Context) g.Node {
		return h.Aside(h.Class("translations-in-progress"), h.Role("note"),
			h.P(T(ctx, "translations.in.progress", "Translations in progress")),
		)
	})
}

// UpgradeStatus reports whether a network upgrade has shipped.
func UpgradeStatus(u content.Upgrade, children templ.Component) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		label := T(ctx, "upgrade.status.planned", "Planned")
		variant := ""
		if u.Shipped {
			label = T(ctx, "upgrade.status.shipped", "Shipped")
			variant = "upgrade-status--shipped"
		}
		return h.Aside(classes("upgrade-status", variant),
			h.H4(g.Text(u.Name)),
			h.P(h.Class("upgrade-status-label"), label),
			g.If(u.Date != "", g.El("time", g.Attr("datetime", u.Date), g.Text(u.Date))),
			g.If(u.Description != "", h.P(g.Text(u.Description))),
			Embed(ctx, children),
		)
	})
}

// YouTube embeds a video through the privacy-enhanced player.
func YouTube(id string, start int, title string) templ.Component {
	if id == "" {
		return templ.NopComponent
	}
	u := "https://www.youtube-nocookie.com/embed/" + url.PathEscape(id)
	if start > 0 {
		u += "?start=" + strconv.Itoa(start)
	}
	if title == "" {
		title = "YouTube video"
	}
	return Static(h.Figure(h.Class("youtube"),
		g.El("iframe",
			src(u),
			h.Title(title),
			g.Attr("loading", "lazy"),
			g.Attr("allow", "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"),
			g.Attr("allowfullscreen"),
		),
	))
}

type launchpadNetwork struct {
	Name string
	URL  string
}

// launchpadNetworks are the staking launchpad deployments offered by LaunchpadWidget.
var launchpadNetworks = []launchpadNetwork{
	{Name: "Mainnet", URL: "https://launchpad.ethereum.org"},
	{Name: "Holesky testnet", URL: "https://holesky.launchpad.ethereum.org"},
}

// LaunchpadWidget links to the staking launchpad for each network.
func LaunchpadWidget() templ.Component {
	return Render(func(ctx context.Context) g.Node {
		items := make([]g.Node, 0, len(launchpadNetworks))
		for i, n := range launchpadNetworks {
			label := Static(g.Group{T(ctx, "launchpad.cta", "Start staking"), g.Text(" (" + n.Name + ")")})
			items = append(items, h.Li(Embed(ctx, ButtonLink(n.URL, label, i > 0))))
		}
		return h.Section(h.Class("launchpad-widget"),
			h.H3(T(ctx, "launchpad.title", "Choose network")),
			h.Ul(items...),
		)
	})
}
