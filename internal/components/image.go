package components

import (
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/staking-web/internal/content"
)

// Image renders a processed image. A nil image renders nothing.
func Image(img *content.Image, alt, class string) templ.Component {
	if img == nil || img.Src == "" {
		return templ.NopComponent
	}
	sized := img.Width > 0 && img.Height > 0
	return Static(h.Img(
		src(img.Src),
		h.Alt(alt),
		classes(class),
		g.If(sized, h.Width(strconv.Itoa(img.Width))),
		g.If(sized, h.Height(strconv.Itoa(img.Height))),
		g.Attr("loading", "lazy"),
		g.Attr("decoding", "async"),
	))
}
