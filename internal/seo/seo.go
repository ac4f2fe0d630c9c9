package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	Locale      string
	URL         string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Lang        string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// PageInput carries the page facts a Meta is built from.
type PageInput struct {
	SiteTitle   string
	SiteURL     string
	Title       string
	Description string
	Slug        string
	Lang        string
	Image       string
	Modified    string
	Crumbs      []BreadcrumbItem
}

// ForPage builds head metadata for a content page. Relative crumb and image
// URLs are made absolute against the site URL.
func ForPage(in PageInput) Meta {
	title := in.Title
	if in.SiteTitle != "" && title != in.SiteTitle {
		title = title + " | " + in.SiteTitle
	}
	canonical := Absolute(in.SiteURL, in.Slug)
	image := ""
	if in.Image != "" {
		image = Absolute(in.SiteURL, in.Image)
	}
	m := Meta{
		Title:       title,
		Description: in.Description,
		Canonical:   canonical,
		Lang:        in.Lang,
		OG: OpenGraph{
			Title:       in.Title,
			Description: in.Description,
			Image:       image,
			Type:        "website",
			Locale:      in.Lang,
			URL:         canonical,
		},
		Twitter: Twitter{Card: "summary_large_image", Site: "@ethereum", Image: image},
		JSONLD:  []string{JSON(WebPage(in.Title, in.Description, canonical, in.Lang, in.Modified))},
	}
	if len(in.Crumbs) > 0 {
		items := make([]BreadcrumbItem, 0, len(in.Crumbs))
		for _, c := range in.Crumbs {
			items = append(items, BreadcrumbItem{Name: c.Name, Item: Absolute(in.SiteURL, c.Item)})
		}
		m.JSONLD = append(m.JSONLD, JSON(BreadcrumbList(items)))
	}
	return m
}

// Absolute joins a site URL and a path. Absolute URLs are returned unchanged.
func Absolute(siteURL, p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(siteURL, "/") + p
}
