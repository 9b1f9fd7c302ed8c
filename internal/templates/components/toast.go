package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/uistate"
)

// Toast renders a pending notification. It fades out through CSS.
func Toast(t *uistate.Toast) g.Node {
	if t == nil {
		return nil
	}

	return Div(
		ID("toast"),
		Class("toast fixed bottom-4 right-4 z-[100] w-full max-w-sm rounded-lg border border-border bg-background p-4 shadow-lg"),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		Div(Class("text-sm font-semibold text-foreground"), g.Text(t.Title)),
		g.If(t.Description != "", Div(Class("text-sm text-muted-foreground mt-1"), g.Text(t.Description))),
	)
}
