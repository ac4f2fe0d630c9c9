package site

import (
	"path"
	"strings"

	"finitefield.org/staking-web/internal/content"
)

// outputPath maps a page slug to its file inside the export directory.
// "/" maps to "index.html" and "/ar/staking/" to "ar/staking/index.html".
func outputPath(slug string) string {
	clean := strings.Trim(content.NormalizeSlug(slug), "/")
	if clean == "" {
		return "index.html"
	}
	return path.Join(clean, "index.html")
}

// assetPath maps an image URL produced by the content store to its path
// inside the content tree. ok is false for URLs outside the content prefix.
func assetPath(src string) (string, bool) {
	if !strings.HasPrefix(src, content.AssetPrefix) {
		return "", false
	}
	p := path.Clean(strings.TrimPrefix(src, content.AssetPrefix))
	if p == "." || strings.HasPrefix(p, "..") {
		return "", false
	}
	return p, true
}
