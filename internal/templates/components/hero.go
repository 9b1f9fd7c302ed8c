package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/ui"
)

type heroFeature struct {
	Icon        string
	Gradient    string
	IconClass   string
	Title       string
	Description string
}

var heroFeatures = []heroFeature{
	{"lucide:truck", "bg-gradient-primary", "text-primary-foreground", "Free Shipping", "On orders over $50"},
	{"lucide:zap", "bg-gradient-secondary", "text-accent-foreground", "Flash Deals", "Limited time offers"},
	{"lucide:shopping-bag", "bg-gradient-flash", "text-flash-sale-foreground", "Easy Returns", "30-day return policy"},
}

func Hero() g.Node {
	return Section(
		Class("relative bg-gradient-hero py-16 px-4 overflow-hidden"),
		Div(Class("absolute inset-0 bg-grid-pattern opacity-5")),

		Div(
			Class("container mx-auto max-w-6xl relative z-10"),
			Div(
				Class("text-center space-y-8"),

				Div(
					Class("space-y-4"),
					H1(
						Class("text-4xl md:text-6xl font-bold text-foreground leading-tight"),
						g.Text("Shop the Latest"),
						Span(Class("bg-gradient-primary bg-clip-text text-transparent"), g.Text(" Trends")),
					),
					P(
						Class("text-lg md:text-xl text-muted-foreground max-w-2xl mx-auto"),
						g.Text("Discover amazing products at unbeatable prices. From electronics to fashion, we have everything you need."),
					),
				),

				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center items-center"),
					ui.Button(
						ui.ButtonHref("#products"),
						ui.Variant(ui.ButtonVariantBuy),
						ui.Size(ui.ButtonSizeLg),
						ui.Class[*ui.ButtonConfig]("group"),
						ui.Child[*ui.ButtonConfig](
							ui.Icon("lucide:shopping-bag", "h-5 w-5 group-hover:scale-110 transition-transform", ""),
							g.Text("Shop Now"),
						),
					),
					ui.Button(
						ui.ButtonHref("#products"),
						ui.Variant(ui.ButtonVariantOutline),
						ui.Size(ui.ButtonSizeLg),
						ui.Class[*ui.ButtonConfig]("group"),
						ui.Child[*ui.ButtonConfig](
							ui.Icon("lucide:zap", "h-5 w-5 group-hover:scale-110 transition-transform", ""),
							g.Text("Flash Sales"),
						),
					),
				),

				Div(
					Class("grid grid-cols-1 md:grid-cols-3 gap-6 mt-12 pt-8 border-t border-border/50"),
					g.Group(g.Map(heroFeatures, func(f heroFeature) g.Node {
						return Div(
							Class("flex flex-col items-center space-y-2 text-center"),
							Div(
								Class("w-12 h-12 rounded-full flex items-center justify-center "+f.Gradient),
								ui.Icon(f.Icon, "h-6 w-6 "+f.IconClass, ""),
							),
							H3(Class("font-semibold text-foreground"), g.Text(f.Title)),
							P(Class("text-sm text-muted-foreground"), g.Text(f.Description)),
						)
					})),
				),
			),
		),
	)
}
