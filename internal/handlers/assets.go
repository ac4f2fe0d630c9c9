package handlers

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/middleware"
)

// StylesheetPath is the URL the generated stylesheet is served at.
const StylesheetPath = "/assets/styles.css"

// imageExtensions are the content files served under /content/.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}

// AssetHandlers serves the generated stylesheet and content images.
type AssetHandlers struct {
	stylesheet []byte
	content    fs.FS
}

// NewAssetHandlers serves css at StylesheetPath and images of contentFS under
// the content asset prefix.
func NewAssetHandlers(css []byte, contentFS fs.FS) *AssetHandlers {
	return &AssetHandlers{stylesheet: css, content: contentFS}
}

// Routes registers the asset routes.
func (h *AssetHandlers) Routes(r chi.Router) {
	r.Method(http.MethodGet, StylesheetPath, middleware.StaticContent("text/css; charset=utf-8", h.stylesheet))
	if h.content != nil {
		prefix := content.AssetPrefix[:len(content.AssetPrefix)-1]
		r.Method(http.MethodGet, content.AssetPrefix+"*", http.StripPrefix(prefix, middleware.AssetsWithCache(h.content, imageExtensions...)))
	}
}
