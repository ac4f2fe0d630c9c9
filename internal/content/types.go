package content

import "time"

// QueryResult is everything the page templates read for one page.
type QueryResult struct {
	SiteData SiteData
	PageData PageData
}

type SiteData struct {
	SiteMetadata SiteMetadata
}

// SiteMetadata holds site-wide facts shared by every page.
type SiteMetadata struct {
	Title           string
	URL             string
	DefaultLanguage string
}

// PageData is one content page with its parsed front matter, raw markdown
// body and extracted table of contents.
type PageData struct {
	Fields          Fields
	Frontmatter     Frontmatter
	Body            string
	TableOfContents TableOfContents
	Parent          Parent
}

type Fields struct {
	Slug string
}

type Frontmatter struct {
	Title         string
	Description   string
	Lang          string
	Template      string
	Sidebar       bool
	SidebarDepth  int
	Emoji         string
	SummaryPoints []string
	Alt           string
	Image         *Image
}

// Image is a processed hero image. Width and Height are the display size
// after the constrained-width resize, zero when the format carries no
// intrinsic size.
type Image struct {
	Src    string
	Width  int
	Height int
}

type TableOfContents struct {
	Items []TOCItem
}

// TOCItem is one heading in the outline. URL is the in-page anchor and Depth
// starts at 1 for the shallowest heading level present in the document.
type TOCItem struct {
	URL   string
	Title string
	Depth int
	Items []TOCItem
}

// Parent describes the source file of a page.
type Parent struct {
	RelativePath string
	MTime        time.Time
}

// PageContext is the routing metadata a page is rendered with.
type PageContext struct {
	RelativePath string
	Slug         string
	Language     string
	Template     string
}

// Location is the request location a page is rendered for.
type Location struct {
	Pathname string
}
