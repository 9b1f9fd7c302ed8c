package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/catalog"
	"github.com/vangoframework/storefront/internal/templates/components"
	"github.com/vangoframework/storefront/internal/uistate"
)

// StorefrontView is everything the storefront page needs to render.
type StorefrontView struct {
	Query    string
	Products []catalog.Product // products matching Query
	Page     catalog.Page
	State    *uistate.State
	Toast    *uistate.Toast
}

// Storefront renders the home page: navbar, hero (hidden while searching),
// product grid and footer.
func Storefront(v StorefrontView) templ.Component {
	state := v.State
	if state == nil {
		state = uistate.New()
	}

	loc := components.Location{Query: v.Query, Page: v.Page.Current}

	title := ""
	if v.Query != "" {
		title = "Search: " + v.Query + " | " + components.BrandName
	}

	return component(components.Layout(
		components.PageConfig{Title: title, Theme: state.Theme},
		components.Navbar(components.NavbarView{
			Location:      loc,
			WishlistCount: state.WishlistCount(),
			Theme:         state.Theme,
		}),
		g.If(v.Query == "", components.Hero()),
		Main(
			Class("container mx-auto px-4 py-8"),
			components.ProductGrid(components.GridView{
				Query:      v.Query,
				Products:   v.Products,
				Page:       v.Page,
				Wishlisted: state.IsWishlisted,
			}),
		),
		components.PageFooter(),
		components.Toast(v.Toast),
	))
}
