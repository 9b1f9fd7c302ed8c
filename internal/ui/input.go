package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type InputConfig struct {
	BaseConfig
	Type        string
	Name        string
	Placeholder string
	Value       string
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputName(n string) InputOption {
	return func(c *InputConfig) { c.Name = n }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

func Input(opts ...InputOption) g.Node {
	c := &InputConfig{
		Type: "text",
	}
	for _, opt := range opts {
		opt(c)
	}

	class := "flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-base ring-offset-background placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50 md:text-sm"

	var extra []g.Node
	if c.Type != "" {
		extra = append(extra, h.Type(c.Type))
	}
	if c.Name != "" {
		extra = append(extra, h.Name(c.Name))
	}
	if c.Placeholder != "" {
		extra = append(extra, h.Placeholder(c.Placeholder))
	}
	if c.Value != "" {
		extra = append(extra, h.Value(c.Value))
	}

	return h.Input(c.render(class, extra...)...)
}

// Hidden renders a hidden form field.
func Hidden(name, value string) g.Node {
	return h.Input(h.Type("hidden"), h.Name(name), h.Value(value))
}
