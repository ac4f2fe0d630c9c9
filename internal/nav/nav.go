package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DropdownItem is one entry of a navigation dropdown.
type DropdownItem struct {
	Text string
	To   string
}

// DropdownList describes a navigation dropdown: its toggle text, accessible label and entries.
type DropdownList struct {
	Text      string
	AriaLabel string
	Items     []DropdownItem
}

// StakingOptions returns the hand-authored staking menu. A fresh value is
// returned on each call so callers cannot mutate the shared entries.
func StakingOptions() DropdownList {
	return DropdownList{
		Text:      "Staking Options",
		AriaLabel: "Staking options dropdown menu",
		Items: []DropdownItem{
			{Text: "Staking Home", To: "/staking"},
			{Text: "Solo staking", To: "/staking/solo"},
			{Text: "Staking as a service", To: "/staking/saas"},
			{Text: "Pooled staking", To: "/staking/pools"},
		},
	}
}

// Crumb represents a breadcrumb entry. If LabelKey has no translation, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// segmentKeys maps known route segments to i18n keys.
var segmentKeys = map[string]string{
	"staking": "breadcrumb.staking",
	"solo":    "breadcrumb.solo",
	"saas":    "breadcrumb.saas",
	"pools":   "breadcrumb.pools",
}

// Breadcrumbs builds breadcrumb entries from a page slug.
// Rules:
// - Always start with Home (the language root for translated pages)
// - A leading language segment is folded into the hrefs, never shown as a crumb
// - Known segments carry label keys, others a prettified segment label
func Breadcrumbs(slug string, languages []string) []Crumb {
	clean := path.Clean("/" + strings.TrimSpace(slug))
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	if len(parts) == 1 && parts[0] == "" {
		parts = nil
	}

	prefix := ""
	if len(parts) > 0 && isLanguage(parts[0], languages) {
		prefix = "/" + parts[0]
		parts = parts[1:]
	}

	home := prefix + "/"
	crumbs := []Crumb{{Href: home, LabelKey: "nav.home", Label: "Home", Active: len(parts) == 0}}

	href := prefix
	for i, seg := range parts {
		href = href + "/" + seg
		crumbs = append(crumbs, Crumb{
			Href:     href + "/",
			LabelKey: segmentKeys[seg],
			Label:    titleFromSegment(seg),
			Active:   i == len(parts)-1,
		})
	}
	return crumbs
}

// LanguageOf returns the language prefix of slug when it names one of
// languages, else fallback.
func LanguageOf(slug string, languages []string, fallback string) string {
	seg := strings.SplitN(strings.TrimPrefix(path.Clean("/"+slug), "/"), "/", 2)[0]
	if isLanguage(seg, languages) {
		return seg
	}
	return fallback
}

// IsActive reports whether itemPath matches currentPath exactly or as a
// prefix boundary. Trailing slashes are ignored.
func IsActive(itemPath, currentPath string) bool {
	itemPath = normalize(itemPath)
	currentPath = normalize(currentPath)
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

func normalize(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean("/" + p)
}

func isLanguage(seg string, languages []string) bool {
	for _, l := range languages {
		if seg != "" && strings.EqualFold(seg, l) {
			return true
		}
	}
	return false
}

// titleFromSegment turns a slug segment into a sentence-cased label:
// "staking-pools" becomes "Staking pools".
func titleFromSegment(seg string) string {
	words := strings.FieldsFunc(seg, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(words) == 0 {
		return ""
	}
	// a Caser keeps state, so one is built per call
	words[0] = cases.Title(language.Und, cases.NoLower).String(words[0])
	return strings.Join(words, " ")
}
