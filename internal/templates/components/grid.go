package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/catalog"
	"github.com/vangoframework/storefront/internal/ui"
)

// GridView is the filtered product list and the page of it to show.
type GridView struct {
	Query      string
	Products   []catalog.Product // all products matching Query
	Page       catalog.Page
	Wishlisted func(id int) bool
}

func ProductGrid(v GridView) g.Node {
	if len(v.Products) == 0 {
		return emptyGrid(v.Query)
	}

	loc := Location{Query: v.Query, Page: v.Page.Current}
	heading := "Featured Products"
	if v.Query != "" {
		heading = fmt.Sprintf(`Search Results for "%s"`, v.Query)
	}

	return Div(
		ID("products"),
		Class("space-y-8"),

		Div(
			Class("flex items-center justify-between"),
			H2(Class("text-2xl font-bold text-foreground"), g.Text(heading)),
			P(Class("text-muted-foreground"), g.Textf("Showing %d-%d of %d products", v.Page.Start+1, v.Page.End, v.Page.Total)),
		),

		Div(
			Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6"),
			g.Group(g.Map(v.Page.Slice(v.Products), func(p catalog.Product) g.Node {
				return ProductCard(p, v.isWishlisted(p.ID), loc)
			})),
		),

		g.If(v.Page.TotalPages > 1, Pagination(loc, v.Page)),
	)
}

func (v GridView) isWishlisted(id int) bool {
	return v.Wishlisted != nil && v.Wishlisted(id)
}

func emptyGrid(query string) g.Node {
	message := "No products available"
	if query != "" {
		message = fmt.Sprintf(`No results for "%s"`, query)
	}

	return Div(
		ID("products"),
		Class("text-center py-20"),
		Div(
			Class("space-y-4"),
			Div(Class("text-6xl"), g.Text("🔍")),
			H3(Class("text-xl font-semibold text-foreground"), g.Text("No products found")),
			P(Class("text-muted-foreground"), g.Text(message)),
		),
	)
}

// Pagination renders prev, numbered and next page links for page.
func Pagination(loc Location, page catalog.Page) g.Node {
	return Nav(
		Class("flex items-center justify-center space-x-2 pt-8"),
		g.Attr("aria-label", "Pagination"),

		ui.Button(
			ui.ButtonHref(loc.WithPage(page.Current-1)),
			ui.ButtonDisabled(!page.HasPrev()),
			ui.Variant(ui.ButtonVariantOutline),
			ui.Size(ui.ButtonSizeIcon),
			ui.Attr[*ui.ButtonConfig](g.Attr("rel", "prev")),
			ui.Child[*ui.ButtonConfig](ui.Icon("lucide:chevron-left", "h-4 w-4", "Previous page")),
		),

		Div(
			Class("flex space-x-1"),
			g.Group(g.Map(page.Numbers(), func(n int) g.Node {
				variant := ui.ButtonVariantOutline
				var current g.Node
				if n == page.Current {
					variant = ui.ButtonVariantDefault
					current = g.Attr("aria-current", "page")
				}
				return ui.Button(
					ui.ButtonHref(loc.WithPage(n)),
					ui.Variant(variant),
					ui.Size(ui.ButtonSizeSm),
					ui.Class[*ui.ButtonConfig]("min-w-[40px]"),
					ui.Attr[*ui.ButtonConfig](current),
					ui.Child[*ui.ButtonConfig](g.Text(strconv.Itoa(n))),
				)
			})),
		),

		ui.Button(
			ui.ButtonHref(loc.WithPage(page.Current+1)),
			ui.ButtonDisabled(!page.HasNext()),
			ui.Variant(ui.ButtonVariantOutline),
			ui.Size(ui.ButtonSizeIcon),
			ui.Attr[*ui.ButtonConfig](g.Attr("rel", "next")),
			ui.Child[*ui.ButtonConfig](ui.Icon("lucide:chevron-right", "h-4 w-4", "Next page")),
		),
	)
}
