package markdown

import "errors"

var (
	// ErrUnknownComponent is returned when a body references a shortcode that has no renderer.
	ErrUnknownComponent = errors.New("markdown: unknown component")
	// ErrUnterminatedShortcode reports a paired shortcode that is still open at the end of the body.
	ErrUnterminatedShortcode = errors.New("markdown: unterminated shortcode")
	// ErrMalformedShortcode covers stray or mismatched closing tags.
	ErrMalformedShortcode = errors.New("markdown: malformed shortcode")
)
