package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// BrandName is the storefront's display name.
const BrandName = "EcomStore"

func Logo(size string) g.Node {
	box, letter, name := "w-8 h-8", "text-lg", "text-xl"
	if size == "sm" {
		box, letter, name = "w-6 h-6", "text-sm", "text-lg"
	}

	return Div(
		Class("flex items-center space-x-2"),
		Div(
			Class("bg-gradient-primary rounded-lg flex items-center justify-center "+box),
			Span(Class("text-primary-foreground font-bold "+letter), g.Text("E")),
		),
		Span(Class("font-bold text-foreground "+name), g.Text(BrandName)),
	)
}

func postForm(action string, children ...g.Node) g.Node {
	return g.El("form", append([]g.Node{Method("post"), Action(action)}, children...)...)
}
