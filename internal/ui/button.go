package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ButtonVariant string

const (
	ButtonVariantDefault   ButtonVariant = "default"
	ButtonVariantOutline   ButtonVariant = "outline"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantGhost     ButtonVariant = "ghost"
	ButtonVariantCart      ButtonVariant = "cart"
	ButtonVariantBuy       ButtonVariant = "buy"
	ButtonVariantFlashSale ButtonVariant = "flash-sale"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

type ButtonConfig struct {
	BaseConfig
	Variant  ButtonVariant
	Size     ButtonSize
	Type     string
	Href     string
	Disabled bool
}

func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type ButtonOption = Option[*ButtonConfig]

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

// ButtonType sets the button type attribute (button, submit).
func ButtonType(t string) ButtonOption {
	return func(c *ButtonConfig) { c.Type = t }
}

// ButtonHref renders the button as a link to href.
func ButtonHref(href string) ButtonOption {
	return func(c *ButtonConfig) { c.Href = href }
}

func ButtonDisabled(d bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = d }
}

// Button renders a <button>, or an <a> when ButtonHref is set.
// A disabled link renders as a disabled <button> since anchors cannot be disabled.
func Button(opts ...ButtonOption) g.Node {
	c := &ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
		Type:    "button",
	}
	for _, opt := range opts {
		opt(c)
	}

	class := CN(
		"inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
		buttonVariants(c.Variant, c.Size),
	)

	if c.Href != "" && !c.Disabled {
		return h.A(c.render(class, h.Href(c.Href))...)
	}

	extra := []g.Node{h.Type(c.Type)}
	if c.Disabled {
		extra = append(extra, h.Disabled())
	}
	return h.Button(c.render(class, extra...)...)
}

func buttonVariants(v ButtonVariant, s ButtonSize) string {
	var classes []string

	switch v {
	case ButtonVariantDefault:
		classes = append(classes, "bg-primary text-primary-foreground hover:bg-primary/90")
	case ButtonVariantOutline:
		classes = append(classes, "border border-input bg-background hover:bg-accent hover:text-accent-foreground")
	case ButtonVariantSecondary:
		classes = append(classes, "bg-secondary text-secondary-foreground hover:bg-secondary/80")
	case ButtonVariantGhost:
		classes = append(classes, "hover:bg-accent hover:text-accent-foreground")
	case ButtonVariantCart:
		classes = append(classes, "bg-accent text-accent-foreground hover:bg-accent/90 shadow-sm")
	case ButtonVariantBuy:
		classes = append(classes, "bg-gradient-primary text-primary-foreground hover:opacity-90 shadow-sm")
	case ButtonVariantFlashSale:
		classes = append(classes, "bg-gradient-flash text-flash-sale-foreground hover:opacity-90 shadow-md")
	}

	switch s {
	case ButtonSizeDefault:
		classes = append(classes, "h-10 px-4 py-2")
	case ButtonSizeSm:
		classes = append(classes, "h-9 rounded-md px-3")
	case ButtonSizeLg:
		classes = append(classes, "h-11 rounded-md px-8")
	case ButtonSizeIcon:
		classes = append(classes, "h-10 w-10")
	}

	return strings.Join(classes, " ")
}
