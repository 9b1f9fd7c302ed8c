package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/ui"
)

var (
	quickLinks      = []string{"Home", "Products", "Categories", "Flash Sales", "About Us", "Contact"}
	serviceLinks    = []string{"Help Center", "Track Your Order", "Returns & Refunds", "Shipping Info", "Size Guide", "FAQ"}
	socialIcons     = []string{"lucide:facebook", "lucide:twitter", "lucide:instagram", "lucide:youtube"}
	copyrightNotice = "© 2024 " + BrandName + ". All rights reserved. | Privacy Policy | Terms of Service"
)

// PageFooter renders the static footer. The newsletter field has no form and
// submits nowhere.
func PageFooter() g.Node {
	return Footer(
		Class("bg-card border-t border-border mt-16"),
		Div(
			Class("container mx-auto px-4 py-12"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),

				Div(
					Class("space-y-4"),
					Logo(""),
					P(Class("text-muted-foreground text-sm"), g.Text("Your trusted online shopping destination with quality products and excellent service.")),
					Div(
						Class("flex space-x-2"),
						g.Group(g.Map(socialIcons, func(icon string) g.Node {
							return ui.Button(
								ui.Variant(ui.ButtonVariantGhost),
								ui.Size(ui.ButtonSizeIcon),
								ui.Class[*ui.ButtonConfig]("h-8 w-8"),
								ui.Child[*ui.ButtonConfig](ui.Icon(icon, "h-4 w-4", "")),
							)
						})),
					),
				),

				linkColumn("Quick Links", quickLinks),
				linkColumn("Customer Service", serviceLinks),

				Div(
					Class("space-y-4"),
					H3(Class("font-semibold text-foreground"), g.Text("Stay Connected")),
					Div(
						Class("space-y-3 text-sm text-muted-foreground"),
						contactLine("lucide:mail", "support@ecomstore.com"),
						contactLine("lucide:phone", "+1 (555) 123-4567"),
						contactLine("lucide:map-pin", "123 Commerce St, NY 10001"),
					),
					Div(
						Class("space-y-2"),
						P(Class("text-sm font-medium text-foreground"), g.Text("Newsletter")),
						Div(
							Class("flex space-x-2"),
							ui.Input(
								ui.InputType("email"),
								ui.InputPlaceholder("Enter your email"),
								ui.Class[*ui.InputConfig]("text-sm"),
							),
							ui.Button(ui.Size(ui.ButtonSizeSm), ui.Child[*ui.ButtonConfig](g.Text("Subscribe"))),
						),
					),
				),
			),

			Div(
				Class("border-t border-border mt-8 pt-8 text-center"),
				P(Class("text-sm text-muted-foreground"), g.Text(copyrightNotice)),
			),
		),
	)
}

func linkColumn(title string, links []string) g.Node {
	return Div(
		Class("space-y-4"),
		H3(Class("font-semibold text-foreground"), g.Text(title)),
		Ul(
			Class("space-y-2 text-sm"),
			g.Group(g.Map(links, func(link string) g.Node {
				return Li(A(Href("#"), Class("text-muted-foreground hover:text-foreground transition-colors"), g.Text(link)))
			})),
		),
	)
}

func contactLine(icon, text string) g.Node {
	return Div(
		Class("flex items-center space-x-2"),
		ui.Icon(icon, "h-4 w-4", ""),
		Span(g.Text(text)),
	)
}
