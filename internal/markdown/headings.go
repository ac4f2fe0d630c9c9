package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is one document heading with the anchor id the renderer assigns it.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Headings lists the top-level headings of source in document order. Headings
// inside paired shortcodes are not part of the outline, and shortcodes inline
// in a heading are left out of its text and id.
func (r *Renderer) Headings(source string) ([]Heading, error) {
	body, _, err := ExtractShortcodes(source, r.components.Modes)
	if err != nil {
		return nil, err
	}
	src := []byte(body)
	doc := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(newParseContext()))

	var out []Heading
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		title := strings.Join(strings.Fields(StripPlaceholders(plainText(h, src))), " ")
		heading := Heading{Level: h.Level, Text: title}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.ID = string(b)
			}
		}
		out = append(out, heading)
		return ast.WalkSkipChildren, nil
	})
	return out, err
}

func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(plainText(c, source))
		}
	}
	return sb.String()
}
