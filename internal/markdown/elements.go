package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ElementStyle is the presentational treatment of one markdown element.
type ElementStyle struct {
	Class string
	// Anchor adds a self-link after heading text.
	Anchor bool
}

// elementRenderer replaces goldmark's HTML output for the mapped elements.
// Elements without an entry render like goldmark's defaults.
type elementRenderer struct {
	html.Config
	styles map[string]ElementStyle
}

func newElementRenderer(styles map[string]ElementStyle) renderer.NodeRenderer {
	return &elementRenderer{Config: html.NewConfig(), styles: styles}
}

func (r *elementRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(east.KindTable, r.renderTable)
}

func (r *elementRenderer) writeClass(w util.BufWriter, name string) {
	if st, ok := r.styles[name]; ok && st.Class != "" {
		_, _ = w.WriteString(` class="`)
		_, _ = w.Write(util.EscapeHTML([]byte(st.Class)))
		_ = w.WriteByte('"')
	}
}

func (r *elementRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	tag := "h" + string("0123456"[n.Level])
	if entering {
		_, _ = w.WriteString("<" + tag)
		r.writeClass(w, tag)
		if n.Attributes() != nil {
			html.RenderAttributes(w, node, html.HeadingAttributeFilter)
		}
		_ = w.WriteByte('>')
		return ast.WalkContinue, nil
	}
	if st := r.styles[tag]; st.Anchor {
		if id, ok := n.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				_, _ = w.WriteString(`<a href="#`)
				_, _ = w.Write(util.EscapeHTML(b))
				_, _ = w.WriteString(`" class="header-anchor" aria-hidden="true">#</a>`)
			}
		}
	}
	_, _ = w.WriteString("</" + tag + ">\n")
	return ast.WalkContinue, nil
}

// renderParagraph drops the <p> wrapper around paragraphs made only of
// shortcode placeholders so block components are not nested inside a
// paragraph.
func (r *elementRenderer) renderParagraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Paragraph)
	if isPlaceholderBlock(n, source) {
		if !entering {
			_ = w.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	}
	if entering {
		_, _ = w.WriteString("<p")
		r.writeClass(w, "p")
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, html.ParagraphAttributeFilter)
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

func isPlaceholderBlock(n ast.Node, source []byte) bool {
	if n.ChildCount() == 0 {
		return false
	}
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			return false
		}
		sb.Write(t.Segment.Value(source))
		sb.WriteByte('\n')
	}
	return IsPlaceholderRun(sb.String())
}

func (r *elementRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<a href="`)
	if r.Unsafe || !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_ = w.WriteByte('"')
	r.writeClass(w, "a")
	if isExternal(n.Destination) {
		_, _ = w.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		r.Writer.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	if n.Attributes() != nil {
		html.RenderAttributes(w, n, html.LinkAttributeFilter)
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func isExternal(dest []byte) bool {
	return bytes.HasPrefix(dest, []byte("http://")) || bytes.HasPrefix(dest, []byte("https://"))
}

func (r *elementRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)
	if entering {
		_, _ = w.WriteString("<pre")
		r.writeClass(w, "pre")
		_, _ = w.WriteString("><code")
		if language := n.Language(source); language != nil {
			_, _ = w.WriteString(` class="language-`)
			r.Writer.Write(w, language)
			_ = w.WriteByte('"')
		}
		_ = w.WriteByte('>')
		r.writeLines(w, source, n)
	} else {
		_, _ = w.WriteString("</code></pre>\n")
	}
	return ast.WalkContinue, nil
}

func (r *elementRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<pre")
		r.writeClass(w, "pre")
		_, _ = w.WriteString("><code>")
		r.writeLines(w, source, node)
	} else {
		_, _ = w.WriteString("</code></pre>\n")
	}
	return ast.WalkContinue, nil
}

func (r *elementRenderer) writeLines(w util.BufWriter, source []byte, n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		r.Writer.RawWrite(w, line.Value(source))
	}
}

// renderTable wraps tables in a scroll container; rows and cells keep the
// table extension's renderers.
func (r *elementRenderer) renderTable(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(`<div class="table-wrapper"><table`)
		r.writeClass(w, "table")
		_, _ = w.WriteString(">\n")
	} else {
		_, _ = w.WriteString("</table></div>\n")
	}
	return ast.WalkContinue, nil
}
