// Package components renders the storefront sections as gomponents nodes.
package components

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"

	"github.com/vangoframework/storefront/internal/ui"
)

// Location is the search query and grid page a view was rendered for.
// Actions post it back so the visitor returns to the same place.
type Location struct {
	Query string
	Page  int
}

// URL returns the storefront URL for the location.
func (l Location) URL() string {
	return l.WithPage(l.Page)
}

// WithPage returns the storefront URL for page, keeping the query.
func (l Location) WithPage(page int) string {
	v := url.Values{}
	if l.Query != "" {
		v.Set("q", l.Query)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// Fields renders the location as hidden form fields.
func (l Location) Fields() g.Node {
	return g.Group([]g.Node{
		ui.Hidden("q", l.Query),
		ui.Hidden("page", strconv.Itoa(l.Page)),
	})
}
