package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/ui"
	"github.com/vangoframework/storefront/internal/uistate"
)

// NavbarView is the data the navigation bar renders.
type NavbarView struct {
	Location      Location
	CartCount     int
	WishlistCount int
	Theme         string
}

func Navbar(v NavbarView) g.Node {
	return Nav(
		Class("sticky top-0 z-50 bg-background/95 backdrop-blur supports-[backdrop-filter]:bg-background/60 border-b border-border shadow-sm"),
		Div(
			Class("container mx-auto px-4"),

			// Checkbox driving the mobile menu, sibling of the menu for peer-checked.
			Input(ID("mobile-menu-toggle"), Type("checkbox"), Class("peer hidden")),

			Div(
				Class("flex items-center justify-between h-16"),
				A(Href("/"), Logo("")),

				Div(
					Class("hidden md:flex flex-1 max-w-md mx-8"),
					searchForm(v.Location.Query, "pl-4 pr-10 h-10 rounded-lg border-2 border-input focus:border-primary transition-colors"),
				),

				Div(
					Class("hidden md:flex items-center space-x-4"),
					themeToggle(v.Theme, v.Location),
					iconButton("lucide:heart", "Wishlist", v.WishlistCount, ui.BadgeVariantAlert),
					iconButton("lucide:shopping-cart", "Cart", v.CartCount, ui.BadgeVariantCount),
					iconButton("lucide:user", "Account", 0, ""),
				),

				Label(
					For("mobile-menu-toggle"),
					Class("md:hidden inline-flex items-center justify-center h-10 w-10 rounded-md hover:bg-accent cursor-pointer"),
					g.Attr("aria-label", "Toggle menu"),
					ui.Icon("lucide:menu", "h-5 w-5", ""),
				),
			),

			Div(
				ID("mobile-menu"),
				Class("md:hidden overflow-hidden transition-all duration-300 ease-in-out max-h-0 peer-checked:max-h-96 peer-checked:pb-4"),
				Div(
					Class("mb-4"),
					searchForm(v.Location.Query, "pl-4 pr-10 h-10 rounded-lg border-2 border-input focus:border-primary"),
				),
				Div(
					Class("flex justify-around items-center"),
					Div(Class("flex justify-center"), themeToggle(v.Theme, v.Location)),
					mobileButton("lucide:heart", "Wishlist", v.WishlistCount, ui.BadgeVariantAlert),
					mobileButton("lucide:shopping-cart", "Cart", v.CartCount, ui.BadgeVariantCount),
					mobileButton("lucide:user", "Account", 0, ""),
				),
			),
		),
	)
}

// searchForm submits the query without a page so a new search starts on page 1.
func searchForm(query, inputClass string) g.Node {
	return g.El("form",
		Method("get"),
		Action("/"),
		Class("flex w-full"),
		g.Attr("role", "search"),
		Div(
			Class("relative flex-1"),
			ui.Input(
				ui.InputName("q"),
				ui.InputPlaceholder("Search products..."),
				ui.InputValue(query),
				ui.Class[*ui.InputConfig](inputClass),
			),
			ui.Button(
				ui.ButtonType("submit"),
				ui.Size(ui.ButtonSizeIcon),
				ui.Variant(ui.ButtonVariantGhost),
				ui.Class[*ui.ButtonConfig]("absolute right-1 top-1/2 -translate-y-1/2 h-8 w-8"),
				ui.Child[*ui.ButtonConfig](ui.Icon("lucide:search", "h-4 w-4", "Search")),
			),
		),
	)
}

func themeToggle(theme string, loc Location) g.Node {
	icon, label := "lucide:moon", "Switch to dark theme"
	if theme == uistate.ThemeDark {
		icon, label = "lucide:sun", "Switch to light theme"
	}

	return postForm("/theme",
		loc.Fields(),
		ui.Button(
			ui.ButtonType("submit"),
			ui.Size(ui.ButtonSizeIcon),
			ui.Variant(ui.ButtonVariantGhost),
			ui.Child[*ui.ButtonConfig](ui.Icon(icon, "h-5 w-5", label)),
		),
	)
}

func countBadge(count int, variant ui.BadgeVariant, class string) g.Node {
	if count <= 0 || variant == "" {
		return nil
	}
	return ui.Badge(
		ui.BadgeVariantOf(variant),
		ui.Class[*ui.BadgeConfig](class),
		ui.Child[*ui.BadgeConfig](g.Text(strconv.Itoa(count))),
	)
}

func iconButton(icon, label string, count int, variant ui.BadgeVariant) g.Node {
	return ui.Button(
		ui.Size(ui.ButtonSizeIcon),
		ui.Variant(ui.ButtonVariantGhost),
		ui.Class[*ui.ButtonConfig]("relative"),
		ui.Child[*ui.ButtonConfig](
			ui.Icon(icon, "h-5 w-5", label),
			countBadge(count, variant, ""),
		),
	)
}

func mobileButton(icon, label string, count int, variant ui.BadgeVariant) g.Node {
	return ui.Button(
		ui.Size(ui.ButtonSizeSm),
		ui.Variant(ui.ButtonVariantGhost),
		ui.Class[*ui.ButtonConfig]("flex flex-col items-center space-y-1 relative h-auto"),
		ui.Child[*ui.ButtonConfig](
			ui.Icon(icon, "h-5 w-5", ""),
			Span(Class("text-xs"), g.Text(label)),
			countBadge(count, variant, "h-4 w-4"),
		),
	)
}
