package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/catalog"
	"github.com/vangoframework/storefront/internal/ui"
)

// ProductCard renders one product with its pricing, wishlist heart and
// cart/buy actions. Actions post back to the handlers with loc.
func ProductCard(p catalog.Product, wishlisted bool, loc Location) g.Node {
	price := catalog.Pricing(p)
	id := strconv.Itoa(p.ID)

	buyVariant := ui.ButtonVariantBuy
	if price.FlashSale {
		buyVariant = ui.ButtonVariantFlashSale
	}

	heartClass := "text-muted-foreground hover:text-flash-sale"
	heartLabel := "Add to wishlist"
	if wishlisted {
		heartClass = "fill-flash-sale text-flash-sale"
		heartLabel = "Remove from wishlist"
	}

	return ui.Card(
		ui.Class[*ui.CardConfig]("group relative hover:border-primary/30 hover:shadow-lg transition-all duration-300 overflow-hidden"),
		ui.Attr[*ui.CardConfig](ID("product-"+id), g.Attr("data-product-id", id)),
		ui.Child[*ui.CardConfig](
			g.If(price.FlashSale,
				Div(
					Class("absolute top-3 left-3 z-10"),
					ui.Badge(
						ui.BadgeVariantOf(ui.BadgeVariantFlash),
						ui.Child[*ui.BadgeConfig](g.Text(fmt.Sprintf("🔥 -%d%% OFF", price.Discount))),
					),
				),
			),

			postForm("/wishlist/"+id,
				Class(ui.CN("absolute top-3 right-3 z-10 opacity-0 group-hover:opacity-100 transition-opacity duration-300", ui.ClassIf(wishlisted, "opacity-100"))),
				loc.Fields(),
				ui.Button(
					ui.ButtonType("submit"),
					ui.Variant(ui.ButtonVariantGhost),
					ui.Size(ui.ButtonSizeIcon),
					ui.Attr[*ui.ButtonConfig](g.Attr("aria-pressed", strconv.FormatBool(wishlisted))),
					ui.Child[*ui.ButtonConfig](ui.Icon("lucide:heart", "h-5 w-5 transition-colors "+heartClass, heartLabel)),
				),
			),

			Div(
				Class("relative aspect-square overflow-hidden bg-secondary/50"),
				Img(
					Src(p.Image),
					Alt(p.Title),
					Class("w-full h-full object-contain p-4 transition-transform duration-300 group-hover:scale-105"),
					g.Attr("loading", "lazy"),
				),
			),

			Div(
				Class("p-4 space-y-3"),
				Div(Class("text-xs text-muted-foreground uppercase tracking-wide font-medium"), g.Text(p.Category)),
				H3(Class("font-semibold text-card-foreground line-clamp-2 group-hover:text-primary transition-colors"), g.Text(p.Title)),

				Div(
					Class("flex items-center space-x-1"),
					Div(
						Class("flex items-center"),
						ui.Icon("lucide:star", "h-4 w-4 fill-warning text-warning", ""),
						Span(Class("text-sm font-medium text-card-foreground ml-1"), g.Text(strconv.FormatFloat(p.Rating.Rate, 'f', -1, 64))),
					),
					Span(Class("text-xs text-muted-foreground"), g.Textf("(%d)", p.Rating.Count)),
				),

				Div(
					Class("flex items-center space-x-2"),
					Span(Class("text-lg font-bold text-card-foreground"), g.Text(catalog.FormatPrice(price.Display))),
					g.If(price.FlashSale && price.Discount > 0,
						Span(Class("text-sm text-muted-foreground line-through"), g.Text(catalog.FormatPrice(price.Original))),
					),
				),

				Div(
					Class("flex space-x-2 pt-2"),
					postForm("/cart/"+id,
						Class("flex-1"),
						loc.Fields(),
						ui.Button(
							ui.ButtonType("submit"),
							ui.Variant(ui.ButtonVariantCart),
							ui.Size(ui.ButtonSizeSm),
							ui.Class[*ui.ButtonConfig]("w-full"),
							ui.Child[*ui.ButtonConfig](ui.Icon("lucide:shopping-cart", "h-4 w-4", ""), g.Text("Add to Cart")),
						),
					),
					postForm("/buy/"+id,
						Class("flex-1"),
						loc.Fields(),
						ui.Button(
							ui.ButtonType("submit"),
							ui.Variant(buyVariant),
							ui.Size(ui.ButtonSizeSm),
							ui.Class[*ui.ButtonConfig]("w-full"),
							ui.Child[*ui.ButtonConfig](g.Text("Buy Now")),
						),
					),
				),
			),
		),
	)
}
