package markdown

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

func testComponents() Components {
	return Components{
		Elements: map[string]ElementStyle{
			"h2":    {Class: "md-h2", Anchor: true},
			"p":     {Class: "md-p"},
			"a":     {Class: "md-link"},
			"pre":   {Class: "md-pre"},
			"table": {Class: "md-table"},
		},
		Shortcodes: map[string]ShortcodeFunc{
			"Box": func(p Props) templ.Component {
				return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
					if _, err := io.WriteString(w, `<div class="box" data-title="`+templ.EscapeString(p.Get("title"))+`">`); err != nil {
						return err
					}
					if err := p.Children.Render(ctx, w); err != nil {
						return err
					}
					_, err := io.WriteString(w, `</div>`)
					return err
				})
			},
			"Divider": func(Props) templ.Component {
				return templ.Raw(`<hr class="divider"/>`)
			},
			"Emoji": func(Props) templ.Component {
				return templ.Raw(`<span class="emoji">🎉</span>`)
			},
		},
		Modes: map[string]InnerMode{"Box": InnerRequired, "Divider": InnerNone, "Emoji": InnerNone},
	}
}

func render(t *testing.T, src string) *goquery.Document {
	t.Helper()
	out, err := New(testComponents()).RenderString(context.Background(), src)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	return doc
}

func TestRenderAppliesElementStyles(t *testing.T) {
	t.Parallel()

	doc := render(t, "## Why stake\n\nSome [text](https://ethereum.org) and [local](/staking/solo/).\n\n```go\nfmt.Println(\"<hi>\")\n```\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")

	h2 := doc.Find("h2.md-h2")
	require.Equal(t, 1, h2.Length())
	id, ok := h2.Attr("id")
	require.True(t, ok)
	require.Equal(t, "why-stake", id)
	href, _ := h2.Find("a.header-anchor").Attr("href")
	require.Equal(t, "#why-stake", href)

	require.Equal(t, 1, doc.Find("p.md-p").Length())
	external := doc.Find(`a.md-link[href="https://ethereum.org"]`)
	require.Equal(t, 1, external.Length())
	target, _ := external.Attr("target")
	require.Equal(t, "_blank", target)
	local := doc.Find(`a.md-link[href="/staking/solo/"]`)
	require.Equal(t, 1, local.Length())
	_, hasTarget := local.Attr("target")
	require.False(t, hasTarget)

	require.Equal(t, `fmt.Println("<hi>")`, strings.TrimSpace(doc.Find("pre.md-pre code").Text()))
	require.Equal(t, 1, doc.Find("div.table-wrapper table.md-table").Length())
}

func TestRenderUnmappedElementsUseDefaults(t *testing.T) {
	t.Parallel()

	doc := render(t, "### Plain\n")
	h3 := doc.Find("h3")
	require.Equal(t, 1, h3.Length())
	_, hasClass := h3.Attr("class")
	require.False(t, hasClass)
	require.Equal(t, 0, h3.Find("a").Length())
}

func TestRenderShortcodes(t *testing.T) {
	t.Parallel()

	doc := render(t, "Intro\n\n{{< Box title=\"Solo staking\" >}}\n## Inside\n\nInner *text*\n{{< /Box >}}\n\n{{< Divider >}}\n")

	box := doc.Find("div.box")
	require.Equal(t, 1, box.Length())
	title, _ := box.Attr("data-title")
	require.Equal(t, "Solo staking", title)
	require.Equal(t, 1, box.Find("h2.md-h2").Length())
	require.Equal(t, "text", box.Find("p.md-p em").Text())
	require.Equal(t, 1, doc.Find("hr.divider").Length())
	// block shortcodes are not wrapped in paragraphs
	require.Equal(t, 0, doc.Find("p div.box, p hr.divider").Length())
	require.NotContains(t, doc.Text(), "§")
}

func TestRenderUnknownShortcodeFails(t *testing.T) {
	t.Parallel()

	_, err := New(testComponents()).RenderString(context.Background(), "{{< Nope >}}")
	require.ErrorIs(t, err, ErrUnknownComponent)

	_, err = New(testComponents()).RenderString(context.Background(), "{{< Box >}}{{< Nope >}}{{< /Box >}}")
	require.True(t, errors.Is(err, ErrUnknownComponent))
}

func TestRenderLookupIsExactMatch(t *testing.T) {
	t.Parallel()

	r := New(testComponents())
	_, ok := r.Lookup("box")
	require.False(t, ok)
	_, ok = r.Lookup("Box")
	require.True(t, ok)
}

func TestRenderSanitizesAuthorHTML(t *testing.T) {
	t.Parallel()

	doc := render(t, "<script>alert(1)</script>\n\n<div class=\"note\" onclick=\"x()\">hi</div>\n")
	require.Equal(t, 0, doc.Find("script").Length())
	note := doc.Find("div.note")
	require.Equal(t, 1, note.Length())
	_, hasHandler := note.Attr("onclick")
	require.False(t, hasHandler)
}

func TestHeadingsSkipShortcodeInner(t *testing.T) {
	t.Parallel()

	r := New(testComponents())
	got, err := r.Headings("## First `code`\n\n### Second *em*\n\n{{< Box >}}\n## Hidden\n{{< /Box >}}\n\n## First code\n")
	require.NoError(t, err)
	require.Equal(t, []Heading{
		{Level: 2, ID: "first-code", Text: "First code"},
		{Level: 3, ID: "second-em", Text: "Second em"},
		{Level: 2, ID: "first-code-1", Text: "First code"},
	}, got)
}

func TestRenderUnwrapsConsecutiveShortcodeLines(t *testing.T) {
	t.Parallel()

	doc := render(t, "{{< Box title=\"grid\" >}}\n{{< Box title=\"A\" >}}\none\n{{< /Box >}}\n{{< Box title=\"B\" >}}\ntwo\n{{< /Box >}}\n{{< /Box >}}\n\n{{< Divider >}}\n{{< Divider >}}\n")

	require.Equal(t, 2, doc.Find(`div.box[data-title="grid"] > div.box`).Length())
	require.Equal(t, 2, doc.Find("hr.divider").Length())
	require.Equal(t, 0, doc.Find("p div.box, p hr.divider").Length())
	require.Equal(t, 2, doc.Find("p.md-p").Length())
}

func TestHeadingsLeaveOutInlineShortcodes(t *testing.T) {
	t.Parallel()

	r := New(testComponents())
	src := "## Why stake {{< Emoji \":tada:\" >}}\n"
	got, err := r.Headings(src)
	require.NoError(t, err)
	require.Equal(t, []Heading{{Level: 2, ID: "why-stake", Text: "Why stake"}}, got)

	out, err := r.RenderString(context.Background(), src)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find("h2#why-stake span.emoji").Length())
	require.NotContains(t, out, "§")
}
