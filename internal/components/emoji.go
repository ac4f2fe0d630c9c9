package components

import (
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// emojiTable maps the shortcodes used in page content to characters.
var emojiTable = map[string]string{
	":tada:":                 "🎉",
	":wave:":                 "👋",
	":rocket:":               "🚀",
	":money_bag:":            "💰",
	":moneybag:":             "💰",
	":shield:":               "🛡️",
	":lock:":                 "🔒",
	":key:":                  "🔑",
	":computer:":             "💻",
	":desktop_computer:":     "🖥️",
	":house:":                "🏠",
	":handshake:":            "🤝",
	":people_holding_hands:": "🧑‍🤝‍🧑",
	":family:":               "👪",
	":globe_with_meridians:": "🌐",
	":earth_africa:":         "🌍",
	":warning:":              "⚠️",
	":white_check_mark:":     "✅",
	":x:":                    "❌",
	":bulb:":                 "💡",
	":books:":                "📚",
	":sparkles:":             "✨",
	":trophy:":               "🏆",
	":gem:":                  "💎",
	":muscle:":               "💪",
	":thinking_face:":        "🤔",
	":eyes:":                 "👀",
	":cloud:":                "☁️",
	":nerd_face:":            "🤓",
	":sauropod:":             "🦕",
	":rhino:":                "🦏",
	":construction:":         "🚧",
	":memo:":                 "📝",
	":calendar:":             "📅",
}

// ResolveEmoji maps ":name:" to its character. Unknown names and literal
// emoji are returned unchanged.
func ResolveEmoji(code string) string {
	code = strings.TrimSpace(code)
	if v, ok := emojiTable[code]; ok {
		return v
	}
	return code
}

// Emoji renders an emoji glyph with an accessible label.
func Emoji(code string) templ.Component {
	return Static(emoji(code))
}

func emoji(code string) g.Node {
	label := strings.Trim(strings.TrimSpace(code), ":")
	label = strings.ReplaceAll(label, "_", " ")
	return h.Span(h.Class("emoji"), h.Role("img"), h.Aria("label", label), g.Text(ResolveEmoji(code)))
}
