package components

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FeedbackCard asks the reader whether the page helped. An empty prompt uses
// the translated default.
func FeedbackCard(prompt string) templ.Component {
	return Render(func(ctx context.Context) g.Node {
		heading := T(ctx, "feedback.prompt.page", "Was this page helpful?")
		if prompt != "" {
			heading = g.Text(prompt)
		}
		return h.Section(h.Class("feedback-card"), g.Attr("aria-live", "polite"),
			h.H3(heading),
			h.Div(h.Class("feedback-actions"),
				h.Button(h.Type("button"), g.Attr("data-feedback", "yes"), T(ctx, "feedback.yes", "Yes")),
				h.Button(h.Type("button"), g.Attr("data-feedback", "no"), T(ctx, "feedback.no", "No")),
			),
			h.P(h.Class("feedback-thanks"), g.Attr("hidden"), T(ctx, "feedback.thanks", "Thank you for your feedback!")),
		)
	})
}
