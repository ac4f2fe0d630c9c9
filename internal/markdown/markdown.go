// Package markdown compiles page bodies into HTML. Markdown elements are
// rendered through a fixed element table and Hugo-style shortcodes are
// resolved to templ components by exact name.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Props carries a shortcode's attributes and its rendered inner content.
type Props struct {
	Name   string
	Params map[string]string
	// Children renders the inner markdown of a paired shortcode. It is a no-op
	// for self-closing shortcodes.
	Children templ.Component
}

// Get returns the named attribute or "".
func (p Props) Get(key string) string {
	return p.Params[key]
}

// GetOr returns the named attribute, or def when it is missing or blank.
func (p Props) GetOr(key, def string) string {
	if v := strings.TrimSpace(p.Params[key]); v != "" {
		return v
	}
	return def
}

// Int parses the named attribute, returning def when missing or invalid.
func (p Props) Int(key string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(p.Params[key])); err == nil {
		return v
	}
	return def
}

// Bool reports whether the named attribute is "true" or "1". A bare
// attribute name (e.g. `{{< Card horizontal >}}`) counts as set.
func (p Props) Bool(key string) bool {
	if v, ok := p.Params[key]; ok {
		b, err := strconv.ParseBool(v)
		return err == nil && b
	}
	for k, v := range p.Params {
		if strings.HasPrefix(k, "param") && v == key {
			return true
		}
	}
	return false
}

// ShortcodeFunc builds the component for one shortcode occurrence.
type ShortcodeFunc func(Props) templ.Component

// Components is the element and shortcode table a Renderer dispatches on.
type Components struct {
	Elements   map[string]ElementStyle
	Shortcodes map[string]ShortcodeFunc
	// Modes declares which shortcodes wrap inner markdown.
	Modes map[string]InnerMode
}

// Renderer turns markdown bodies into HTML. It is safe for concurrent use.
type Renderer struct {
	md         goldmark.Markdown
	components Components
	policy     *bluemonday.Policy
}

// New builds a renderer for the given component table.
func New(components Components) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithParserOptions(parser.WithAutoHeadingID(), parser.WithAttribute()),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(util.Prioritized(newElementRenderer(components.Elements), 100)),
		),
	)
	return &Renderer{md: md, components: components, policy: newPolicy()}
}

// Lookup returns the shortcode renderer registered under exactly name.
func (r *Renderer) Lookup(name string) (ShortcodeFunc, bool) {
	fn, ok := r.components.Shortcodes[name]
	return fn, ok && fn != nil
}

// Render writes the HTML for source to w.
func (r *Renderer) Render(ctx context.Context, source string, w io.Writer) error {
	text, shortcodes, err := ExtractShortcodes(source, r.components.Modes)
	if err != nil {
		return err
	}

	fns := make([]ShortcodeFunc, len(shortcodes))
	for i, sc := range shortcodes {
		fn, ok := r.Lookup(sc.Name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownComponent, sc.Name)
		}
		fns[i] = fn
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf, parser.WithContext(newParseContext())); err != nil {
		return fmt.Errorf("markdown convert: %w", err)
	}
	out := r.policy.SanitizeBytes(buf.Bytes())
	if len(shortcodes) == 0 {
		_, err := w.Write(out)
		return err
	}

	pairs := make([]string, 0, len(shortcodes)*2)
	for i, sc := range shortcodes {
		props := Props{Name: sc.Name, Params: sc.Params, Children: templ.NopComponent}
		if sc.Paired {
			props.Children = r.Component(sc.Inner)
		}
		var sb strings.Builder
		if err := fns[i](props).Render(ctx, &sb); err != nil {
			return fmt.Errorf("render %s: %w", sc.Name, err)
		}
		pairs = append(pairs, Placeholder(i), sb.String())
	}
	_, err = strings.NewReplacer(pairs...).WriteString(w, string(out))
	return err
}

// Component wraps Render so a body can be placed in a templ tree.
func (r *Renderer) Component(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.Render(ctx, source, w)
	})
}

// RenderString is Render into a string.
func (r *Renderer) RenderString(ctx context.Context, source string) (string, error) {
	var sb strings.Builder
	if err := r.Render(ctx, source, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// placeholderIDs generates heading ids as goldmark does, ignoring shortcode
// placeholders so "## Why stake {{< Emoji >}}" is anchored at why-stake.
type placeholderIDs struct {
	parser.IDs
}

func (ids placeholderIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	return ids.IDs.Generate([]byte(StripPlaceholders(string(value))), kind)
}

func newParseContext() parser.Context {
	return parser.NewContext(parser.WithIDs(placeholderIDs{IDs: parser.NewContext().IDs()}))
}
