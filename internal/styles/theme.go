package styles

import (
	"fmt"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

const (
	ThemeName      = "ethereum"
	VariantLight   = "light"
	VariantDark    = "dark"
	defaultVariant = VariantLight
)

// lightTokens are the base design tokens. Keys are "<group>.<name>".
var lightTokens = map[string]string{
	"colors.primary":       "#1c1ce1",
	"colors.text":          "#333333",
	"colors.text200":       "#666666",
	"colors.text300":       "#4c4c4c",
	"colors.background":    "#ffffff",
	"colors.border":        "#e5e5e5",
	"colors.preBackground": "#f2f2f2",
	"colors.preBorder":     "rgba(0, 0, 0, 0.05)",
	"colors.infoBanner":    "#cae7fc",
	"colors.warning":       "#fff4db",
	"colors.success":       "#109e62",
	"colors.homeDivider":   "#a4a4f3",
	"colors.cardGradient":  "linear-gradient(49.21deg, rgba(127, 127, 213, 0.2) 19.87%, rgba(134, 168, 231, 0.2) 58.46%, rgba(145, 234, 228, 0.2) 97.05%)",
	"breakpoints.s":        "414px",
	"breakpoints.m":        "768px",
	"breakpoints.l":        "1024px",
	"breakpoints.xl":       "1440px",
}

var darkTokens = map[string]string{
	"colors.primary":       "#ff7324",
	"colors.text":          "#ffffff",
	"colors.text200":       "#b2b2b2",
	"colors.text300":       "#cccccc",
	"colors.background":    "#222222",
	"colors.border":        "#333333",
	"colors.preBackground": "#191919",
	"colors.preBorder":     "rgba(255, 255, 255, 0.05)",
	"colors.infoBanner":    "#1b3b52",
	"colors.warning":       "#4a3a14",
	"colors.homeDivider":   "#ff7324",
	"colors.cardGradient":  "linear-gradient(49.21deg, rgba(127, 127, 213, 0.2) 19.87%, rgba(134, 168, 231, 0.2) 58.46%, rgba(145, 234, 228, 0.2) 97.05%)",
}

// Theme is a resolved token set split into its groups.
type Theme struct {
	Name        string
	Variant     string
	Colors      map[string]string
	Breakpoints map[string]string
	tokens      map[string]string
}

// Var is one CSS custom property.
type Var struct {
	Name  string
	Value string
}

// Vars lists every token as a CSS custom property, sorted by name.
func (t Theme) Vars() []Var {
	out := make([]Var, 0, len(t.tokens))
	for k, v := range t.tokens {
		out = append(out, Var{Name: "--" + strings.ReplaceAll(k, ".", "-"), Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Manifest describes the site theme with its light and dark variants.
func Manifest() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens:  copyTokens(lightTokens),
		Variants: map[string]gotheme.Variant{
			VariantLight: {Tokens: map[string]string{}},
			VariantDark:  {Tokens: copyTokens(darkTokens)},
		},
	}
}

// Resolve selects a variant of the site theme. An empty variant selects light.
func Resolve(variant string) (Theme, error) {
	registry := gotheme.NewRegistry()
	if err := registry.Register(Manifest()); err != nil {
		return Theme{}, fmt.Errorf("register theme: %w", err)
	}
	selector := gotheme.Selector{
		Registry:       registry,
		DefaultTheme:   ThemeName,
		DefaultVariant: defaultVariant,
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = defaultVariant
	}
	selection, err := selector.Select(ThemeName, variant)
	if err != nil {
		return Theme{}, fmt.Errorf("select theme %s/%s: %w", ThemeName, variant, err)
	}

	t := Theme{
		Name:        ThemeName,
		Variant:     variant,
		Colors:      map[string]string{},
		Breakpoints: map[string]string{},
		tokens:      map[string]string{},
	}
	// variants only carry overrides; start from the base set
	tokens := copyTokens(lightTokens)
	for k, v := range selection.Tokens() {
		tokens[k] = v
	}
	for k, v := range tokens {
		t.tokens[k] = v
		group, name, ok := strings.Cut(k, ".")
		if !ok {
			continue
		}
		switch group {
		case "colors":
			t.Colors[name] = v
		case "breakpoints":
			t.Breakpoints[name] = v
		}
	}
	return t, nil
}

func copyTokens(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
