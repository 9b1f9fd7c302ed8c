// Package pages assembles full HTML pages from components and exposes them as
// templ components.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// component adapts a gomponents node to templ.Component.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}
