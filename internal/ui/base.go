// Package ui holds the storefront's HTML primitives: buttons, inputs, cards,
// badges and icons, each configured through typed options.
package ui

import g "maragu.dev/gomponents"

// BaseConfig is embedded in every component config
type BaseConfig struct {
	Classes []string
	Nodes   []g.Node // attributes and children, in order
}

// ConfigProvider interface allows generic options to work on any config
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider
type Option[T ConfigProvider] func(T)

// Class adds utility classes (merged via CN later)
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Attr passes raw attributes through to the rendered element.
func Attr[T ConfigProvider](attrs ...g.Node) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Nodes = append(base.Nodes, attrs...)
	}
}

// Child appends child nodes.
func Child[T ConfigProvider](nodes ...g.Node) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Nodes = append(base.Nodes, nodes...)
	}
}

func (b *BaseConfig) render(class string, extra ...g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(b.Nodes)+len(extra)+1)
	nodes = append(nodes, g.Attr("class", CN(append([]string{class}, b.Classes...)...)))
	nodes = append(nodes, extra...)
	nodes = append(nodes, b.Nodes...)
	return nodes
}
