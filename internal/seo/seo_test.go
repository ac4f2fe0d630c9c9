package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForPage(t *testing.T) {
	t.Parallel()

	m := ForPage(PageInput{
		SiteTitle:   "ethereum.org",
		SiteURL:     "https://ethereum.org/",
		Title:       "Ethereum staking",
		Description: "Earn rewards",
		Slug:        "/staking/",
		Lang:        "en",
		Image:       "/content/staking/hero.png",
		Modified:    "2024-01-02",
		Crumbs: []BreadcrumbItem{
			{Name: "Home", Item: "/"},
			{Name: "Staking", Item: "/staking/"},
		},
	})

	require.Equal(t, "Ethereum staking | ethereum.org", m.Title)
	require.Equal(t, "https://ethereum.org/staking/", m.Canonical)
	require.Equal(t, "https://ethereum.org/content/staking/hero.png", m.OG.Image)
	require.Len(t, m.JSONLD, 2)

	var crumbs map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[1]), &crumbs))
	require.Equal(t, "BreadcrumbList", crumbs["@type"])
	items := crumbs["itemListElement"].([]any)
	require.Len(t, items, 2)
	require.Equal(t, "https://ethereum.org/staking/", items[1].(map[string]any)["item"])
}

func TestAbsolute(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://x.org/a", Absolute("https://x.org", "a"))
	require.Equal(t, "https://cdn.org/a.png", Absolute("https://x.org", "https://cdn.org/a.png"))
}
