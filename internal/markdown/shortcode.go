package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	startTagPattern   = regexp.MustCompile(`{{<\s*([^\s/>]+)([^>]*)>}}`)
	endTagPattern     = regexp.MustCompile(`{{<\s*/\s*([^\s>]+)\s*>}}`)
	placeholderFormat = "§shortcode-%d§"
	placeholderRegexp = regexp.MustCompile(`^§shortcode-\d+§$`)
	placeholderRun    = regexp.MustCompile(`^(?:\s*§shortcode-\d+§)+\s*$`)
	placeholderToken  = regexp.MustCompile(`§shortcode-\d+§[ \t]*`)
)

// InnerMode says whether a shortcode wraps inner markdown.
type InnerMode int

const (
	// InnerOptional shortcodes are paired when the next tag carrying their
	// name is a closing tag.
	InnerOptional InnerMode = iota
	// InnerNone shortcodes never take a closing tag.
	InnerNone
	// InnerRequired shortcodes must be closed.
	InnerRequired
)

// Shortcode is one `{{< Name key="value" >}}` occurrence extracted from a body.
type Shortcode struct {
	Name   string
	Params map[string]string
	// Inner is the raw markdown between a paired open and close tag.
	Inner  string
	Paired bool
}

// Placeholder returns the token that stands in for the i-th extracted shortcode.
func Placeholder(i int) string {
	return fmt.Sprintf(placeholderFormat, i)
}

// IsPlaceholder reports whether s is exactly one placeholder token.
func IsPlaceholder(s string) bool {
	return placeholderRegexp.MatchString(strings.TrimSpace(s))
}

// IsPlaceholderRun reports whether s holds only placeholder tokens and whitespace.
func IsPlaceholderRun(s string) bool {
	return placeholderRun.MatchString(s)
}

// StripPlaceholders removes placeholder tokens and the blanks that follow them.
func StripPlaceholders(s string) string {
	return placeholderToken.ReplaceAllString(s, "")
}

// ExtractShortcodes replaces top-level shortcodes with placeholder tokens and
// returns the rewritten body with the shortcodes in placeholder order. modes
// declares per name whether a start tag opens a pair; names missing from
// modes are InnerOptional. A start tag whose parameters end in "/" is always
// self-closing.
func ExtractShortcodes(content string, modes map[string]InnerMode) (string, []Shortcode, error) {
	type stackEntry struct {
		name       string
		startIndex int
		params     map[string]string
	}

	var (
		result     []byte
		shortcodes []Shortcode
		stack      []stackEntry
		position   int
	)

	// inner shortcodes stay verbatim inside their parent's Inner
	emit := func(sc Shortcode) {
		result = append(result, Placeholder(len(shortcodes))...)
		shortcodes = append(shortcodes, sc)
	}

	for position < len(content) {
		loc := startTagPattern.FindStringIndex(content[position:])
		endLoc := endTagPattern.FindStringIndex(content[position:])

		if loc == nil && endLoc == nil {
			result = append(result, content[position:]...)
			break
		}

		startPos := -1
		if loc != nil {
			startPos = position + loc[0]
		}
		endPos := -1
		if endLoc != nil {
			endPos = position + endLoc[0]
		}

		if startPos >= 0 && (endPos == -1 || startPos < endPos) {
			result = append(result, content[position:startPos]...)

			matches := startTagPattern.FindStringSubmatch(content[startPos:])
			name := matches[1]
			rawParams := strings.TrimSpace(matches[2])
			selfClosing := strings.HasSuffix(rawParams, "/")
			params := parseParams(strings.TrimSuffix(rawParams, "/"))
			position = startPos + len(matches[0])

			paired := false
			switch mode := modes[name]; {
			case selfClosing || mode == InnerNone:
			case mode == InnerRequired:
				paired = true
			default:
				paired = nextTagCloses(content[position:], name)
			}
			if !paired {
				if len(stack) == 0 {
					emit(Shortcode{Name: name, Params: params})
				} else {
					result = append(result, matches[0]...)
				}
				continue
			}

			if len(stack) > 0 {
				result = append(result, matches[0]...)
			}
			stack = append(stack, stackEntry{name: name, startIndex: len(result), params: params})
			continue
		}

		result = append(result, content[position:endPos]...)
		matches := endTagPattern.FindStringSubmatch(content[endPos:])
		name := matches[1]
		position = endPos + len(matches[0])

		if len(stack) == 0 {
			return "", nil, fmt.Errorf("%w: unexpected closing %s at position %d", ErrMalformedShortcode, name, endPos)
		}
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if entry.name != name {
			return "", nil, fmt.Errorf("%w: closing %s, expected %s", ErrMalformedShortcode, name, entry.name)
		}

		if len(stack) > 0 {
			result = append(result, matches[0]...)
			continue
		}
		inner := string(result[entry.startIndex:])
		result = result[:entry.startIndex]
		emit(Shortcode{Name: name, Params: entry.params, Inner: inner, Paired: true})
	}

	if len(stack) > 0 {
		return "", nil, fmt.Errorf("%w: %s", ErrUnterminatedShortcode, stack[len(stack)-1].name)
	}
	return string(result), shortcodes, nil
}

// nextTagCloses reports whether the first tag named name in remainder is a
// closing tag, so a self-closing use followed later by a paired use of the
// same shortcode is not mistaken for one pair.
func nextTagCloses(remainder, name string) bool {
	nextStart := -1
	for _, m := range startTagPattern.FindAllStringSubmatchIndex(remainder, -1) {
		if remainder[m[2]:m[3]] == name {
			nextStart = m[0]
			break
		}
	}
	for _, m := range endTagPattern.FindAllStringSubmatchIndex(remainder, -1) {
		if remainder[m[2]:m[3]] == name {
			return nextStart == -1 || m[0] < nextStart
		}
	}
	return false
}

// parseParams reads `key="value"`, `key='value'`, `key=value` and bare
// positional values. Positional values are keyed param1, param2, ...
func parseParams(raw string) map[string]string {
	params := map[string]string{}
	s := strings.TrimSpace(raw)
	for s != "" {
		var key string
		if i := strings.IndexAny(s, "= \t\n"); i > 0 && s[i] == '=' {
			key = s[:i]
			s = s[i+1:]
		}
		value, rest := readValue(s)
		if key == "" {
			key = "param" + strconv.Itoa(len(params)+1)
		}
		params[key] = value
		s = strings.TrimSpace(rest)
	}
	return params
}

func readValue(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	if q := s[0]; q == '"' || q == '\'' {
		if end := strings.IndexByte(s[1:], q); end >= 0 {
			return s[1 : end+1], s[end+2:]
		}
		return s[1:], ""
	}
	if i := strings.IndexAny(s, " \t\n"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
