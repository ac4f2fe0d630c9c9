package content

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"
)

// ConstrainedWidth is the display width hero images are scaled down to.
const ConstrainedWidth = 500

// AssetPrefix is the URL prefix content files are served and exported under.
const AssetPrefix = "/content/"

// loadImage reads the intrinsic size of the image at p and scales it to
// ConstrainedWidth, keeping the aspect ratio. Images narrower than the
// constraint keep their size.
func loadImage(fsys fs.FS, p string) (*Image, error) {
	img := &Image{Src: AssetPrefix + p}
	if strings.EqualFold(path.Ext(p), ".svg") {
		if _, err := fs.Stat(fsys, p); err != nil {
			return nil, fmt.Errorf("image %s: %w", p, err)
		}
		return img, nil
	}
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", p, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", p, err)
	}
	img.Width, img.Height = constrain(cfg.Width, cfg.Height, ConstrainedWidth)
	return img, nil
}

func constrain(w, h, max int) (int, int) {
	if w <= max || w == 0 {
		return w, h
	}
	return max, (h*max + w/2) / w
}

// resolveAsset turns a front matter path into a path inside the content FS.
// Relative references resolve against the page directory.
func resolveAsset(pageDir, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "/") {
		return strings.TrimPrefix(path.Clean(ref), "/")
	}
	return path.Clean(path.Join(pageDir, ref))
}
