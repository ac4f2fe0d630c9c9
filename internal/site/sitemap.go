package site

import (
	"encoding/xml"
	"sort"
	"strings"
	"time"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// buildSitemap renders the sitemap for pages. Pages without a modification
// time use fallback.
func buildSitemap(baseURL string, pages []PageEntry, fallback time.Time) ([]byte, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "http://localhost"
	}

	seen := map[string]struct{}{}
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range pages {
		loc := base + page.Slug
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		lastMod := page.LastModified
		if lastMod.IsZero() {
			lastMod = fallback
		}
		entry := sitemapURL{Loc: loc}
		if !lastMod.IsZero() {
			entry.LastMod = lastMod.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, entry)
	}
	sort.Slice(set.URLs, func(i, j int) bool { return set.URLs[i].Loc < set.URLs[j].Loc })

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
