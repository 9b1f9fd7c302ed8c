package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/templates/components"
	"github.com/vangoframework/storefront/internal/ui"
)

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return component(components.Layout(
		components.PageConfig{Title: "Page not found | " + components.BrandName},
		Main(
			Class("container mx-auto px-4 py-20 text-center space-y-6"),
			Div(Class("flex justify-center"), components.Logo("")),
			H1(Class("text-4xl font-bold text-foreground"), g.Text("404")),
			P(Class("text-muted-foreground"), g.Text("The page or product you are looking for does not exist.")),
			ui.Button(ui.ButtonHref("/"), ui.Child[*ui.ButtonConfig](g.Text("Back to the store"))),
		),
	))
}
