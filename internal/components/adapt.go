package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Render adapts a gomponents tree into a templ component. build runs on every
// render so it can read the localizer and route stored in ctx.
func Render(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderNode(w, build(ctx))
	})
}

// Static adapts a tree that does not depend on the render context.
func Static(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return renderNode(w, n)
	})
}

// Embed places a templ component, such as shortcode children or a markdown
// body, inside a gomponents tree. A nil component renders nothing.
func Embed(ctx context.Context, c templ.Component) g.Node {
	if c == nil {
		return nil
	}
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

// Text renders escaped text as a templ component.
func Text(s string) templ.Component {
	return Static(g.Text(s))
}

// T is the translation of key for the page language in ctx.
func T(ctx context.Context, key, fallback string) g.Node {
	return g.Text(translate(ctx, key, fallback))
}

func renderNode(w io.Writer, n g.Node) error {
	switch n := n.(type) {
	case nil:
		return nil
	case g.Group:
		for _, c := range n {
			if err := renderNode(w, c); err != nil {
				return err
			}
		}
		return nil
	default:
		return n.Render(w)
	}
}

// classes joins the non-empty names into one class attribute.
func classes(names ...string) g.Node {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return h.Class(strings.Join(parts, " "))
}

// href neutralises unsafe URL schemes. An empty URL adds no attribute.
func href(u string) g.Node {
	if u == "" {
		return nil
	}
	return h.Href(string(templ.URL(u)))
}

func src(u string) g.Node {
	if u == "" {
		return nil
	}
	return h.Src(string(templ.URL(u)))
}
