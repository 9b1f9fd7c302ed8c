package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon renders an iconify icon. name uses the iconify form "lucide:heart".
// An empty label marks the icon decorative.
func Icon(name, class, label string) g.Node {
	nodes := []g.Node{
		h.Class(CN("iconify inline-block", class)),
		g.Attr("data-icon", name),
	}
	if label != "" {
		nodes = append(nodes, g.Attr("role", "img"), g.Attr("aria-label", label))
	} else {
		nodes = append(nodes, g.Attr("aria-hidden", "true"))
	}
	return h.Span(nodes...)
}
