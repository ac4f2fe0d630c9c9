package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var langs = []string{"en", "ar", "es"}

func TestStakingOptionsHasFourFixedEntries(t *testing.T) {
	t.Parallel()

	list := StakingOptions()
	require.Equal(t, "Staking Options", list.Text)
	require.Equal(t, "Staking options dropdown menu", list.AriaLabel)
	want := []DropdownItem{
		{Text: "Staking Home", To: "/staking"},
		{Text: "Solo staking", To: "/staking/solo"},
		{Text: "Staking as a service", To: "/staking/saas"},
		{Text: "Pooled staking", To: "/staking/pools"},
	}
	if diff := cmp.Diff(want, list.Items); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}

	list.Items[0].Text = "mutated"
	require.Equal(t, "Staking Home", StakingOptions().Items[0].Text)
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	got := Breadcrumbs("/staking/solo/", langs)
	want := []Crumb{
		{Href: "/", LabelKey: "nav.home", Label: "Home"},
		{Href: "/staking/", LabelKey: "breadcrumb.staking", Label: "Staking"},
		{Href: "/staking/solo/", LabelKey: "breadcrumb.solo", Label: "Solo", Active: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected crumbs (-want +got):\n%s", diff)
	}
}

func TestBreadcrumbsSkipLanguageSegment(t *testing.T) {
	t.Parallel()

	got := Breadcrumbs("/ar/staking/", langs)
	require.Len(t, got, 2)
	require.Equal(t, "/ar/", got[0].Href)
	require.Equal(t, "/ar/staking/", got[1].Href)
	require.True(t, got[1].Active)
}

func TestBreadcrumbsUnknownSegment(t *testing.T) {
	t.Parallel()

	got := Breadcrumbs("/staking/node-operators", langs)
	require.Equal(t, "", got[2].LabelKey)
	require.Equal(t, "Node operators", got[2].Label)
}

func TestBreadcrumbsRoot(t *testing.T) {
	t.Parallel()

	got := Breadcrumbs("/", langs)
	require.Len(t, got, 1)
	require.True(t, got[0].Active)
}

func TestLanguageOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ar", LanguageOf("/ar/staking/", langs, "en"))
	require.Equal(t, "en", LanguageOf("/staking/", langs, "en"))
	require.Equal(t, "en", LanguageOf("/", langs, "en"))
}

func TestIsActive(t *testing.T) {
	t.Parallel()

	require.True(t, IsActive("/staking", "/staking/"))
	require.True(t, IsActive("/staking/solo", "/staking/solo/"))
	require.False(t, IsActive("/staking/solo", "/staking/saas/"))
	require.True(t, IsActive("/staking", "/staking/pools/"))
	require.False(t, IsActive("/", "/staking/"))
}

func TestTitleFromSegment(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Node operators", titleFromSegment("node-operators"))
	require.Equal(t, "Über uns", titleFromSegment("über_uns"))
	require.Equal(t, "ETH staking", titleFromSegment("ETH-staking"))
	require.Equal(t, "", titleFromSegment("--"))
}
