package markdown

import "github.com/microcosm-cc/bluemonday"

// newPolicy starts from the UGC policy and lets through the markup the
// element renderers emit: classes, heading ids and link hints.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("rel", "target", "aria-label", "aria-hidden").OnElements("a")
	p.AllowElements("div", "span")
	return p
}
