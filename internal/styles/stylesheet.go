package styles

import (
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.css.tpl
var templateFS embed.FS

// sheets are concatenated in this order.
var sheets = []string{
	"templates/base.css.tpl",
	"templates/page.css.tpl",
	"templates/markdown.css.tpl",
	"templates/components.css.tpl",
}

// Stylesheet renders the CSS rules of every styled component with the tokens of t.
type Stylesheet struct {
	set *pongo2.TemplateSet
}

func NewStylesheet() *Stylesheet {
	return &Stylesheet{set: pongo2.NewSet("styles", pongo2.NewFSLoader(templateFS))}
}

// Render writes the stylesheet for t to w.
func (s *Stylesheet) Render(t Theme, w io.Writer) error {
	ctx := pongo2.Context{
		"colors":      t.Colors,
		"breakpoints": t.Breakpoints,
		"vars":        t.Vars(),
		"variant":     t.Variant,
	}
	for _, name := range sheets {
		tpl, err := s.set.FromCache(name)
		if err != nil {
			return fmt.Errorf("styles: parse %s: %w", name, err)
		}
		if err := tpl.ExecuteWriter(ctx, w); err != nil {
			return fmt.Errorf("styles: execute %s: %w", name, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Build resolves variant and renders its stylesheet to a string.
func Build(variant string) (string, error) {
	t, err := Resolve(variant)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := NewStylesheet().Render(t, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
