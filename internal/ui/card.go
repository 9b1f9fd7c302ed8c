package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Card
type CardConfig struct{ BaseConfig }

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func Card(opts ...CardOption) g.Node {
	c := &CardConfig{}
	for _, opt := range opts {
		opt(c)
	}

	return h.Div(c.render("rounded-xl border border-border bg-card text-card-foreground shadow-sm")...)
}

// Badge
type BadgeVariant string

const (
	BadgeVariantCount BadgeVariant = "count"
	BadgeVariantFlash BadgeVariant = "flash"
	BadgeVariantAlert BadgeVariant = "alert"
)

type BadgeConfig struct {
	BaseConfig
	Variant BadgeVariant
}

func (c *BadgeConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type BadgeOption = Option[*BadgeConfig]

func BadgeVariantOf(v BadgeVariant) BadgeOption {
	return func(c *BadgeConfig) { c.Variant = v }
}

func Badge(opts ...BadgeOption) g.Node {
	c := &BadgeConfig{Variant: BadgeVariantCount}
	for _, opt := range opts {
		opt(c)
	}

	var class string
	switch c.Variant {
	case BadgeVariantFlash:
		class = "bg-gradient-flash text-flash-sale-foreground px-3 py-1 rounded-full text-sm font-semibold animate-pulse shadow-md"
	case BadgeVariantAlert:
		class = "absolute -top-1 -right-1 bg-flash-sale text-flash-sale-foreground text-xs rounded-full h-5 w-5 flex items-center justify-center font-medium"
	default:
		class = "absolute -top-1 -right-1 bg-accent text-accent-foreground text-xs rounded-full h-5 w-5 flex items-center justify-center font-medium"
	}

	return h.Span(c.render(class)...)
}
