package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Bundle holds UI string dictionaries keyed by base language.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
	// matcher ranks tags with the fallback first, so an unmatched header
	// resolves to it.
	matcher language.Matcher
	tags    []string
}

// Load reads `<lang>.json` from fsys for every supported language. Only the
// fallback dictionary is mandatory.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	fallback = strings.ToLower(strings.TrimSpace(fallback))
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	if len(supported) == 0 {
		supported = []string{fallback}
	}
	for _, l := range supported {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		b.supported[l] = struct{}{}
		raw, err := fs.ReadFile(fsys, l+".json")
		if err != nil {
			// allow missing file for non-default locales
			if l != fallback && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	b.buildMatcher()
	return b, nil
}

func (b *Bundle) buildMatcher() {
	names := []string{b.fallback}
	for _, l := range b.Supported() {
		if l != b.fallback {
			names = append(names, l)
		}
	}
	tags := make([]language.Tag, 0, len(names))
	for _, n := range names {
		tag, err := language.Parse(n)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		b.tags = append(b.tags, n)
	}
	b.matcher = language.NewMatcher(tags)
}

// Supported returns the configured languages in sorted order.
func (b *Bundle) Supported() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string {
	if b == nil {
		return ""
	}
	return b.fallback
}

// IsSupported reports whether lang (any BCP 47 tag) maps to a configured language.
func (b *Bundle) IsSupported(lang string) bool {
	if b == nil {
		return false
	}
	_, ok := b.supported[BaseLanguage(lang)]
	return ok
}

// T returns the translation for key in lang, falling back to the default
// language and finally to the key itself.
func (b *Bundle) T(lang, key string) string {
	if v, ok := b.Lookup(lang, key); ok {
		return v
	}
	return key
}

// Lookup is T without the key fallback.
func (b *Bundle) Lookup(lang, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	if base := BaseLanguage(lang); base != "" {
		if m, ok := b.dict[base]; ok {
			if v, ok := m[key]; ok {
				return v, true
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	return "", false
}

// Resolve chooses the best supported language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	if b == nil || b.matcher == nil {
		return b.Fallback()
	}
	tags, weights, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil {
		return b.Fallback()
	}
	prefs := make([]language.Tag, 0, len(tags))
	for i, tag := range tags {
		if weights[i] > 0 {
			prefs = append(prefs, tag)
		}
	}
	if len(prefs) == 0 {
		return b.Fallback()
	}
	_, index, confidence := b.matcher.Match(prefs...)
	if confidence == language.No || index < 0 || index >= len(b.tags) {
		return b.Fallback()
	}
	return b.tags[index]
}

// BaseLanguage returns the lower-case ISO 639 base of a language tag, or the
// trimmed input when it does not parse.
func BaseLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return strings.ToLower(tag)
	}
	base, _ := parsed.Base()
	return base.String()
}
