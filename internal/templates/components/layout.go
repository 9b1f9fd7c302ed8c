package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vangoframework/storefront/internal/uistate"
)

type PageConfig struct {
	Title       string
	Description string
	Theme       string
}

const tailwindConfig = `tailwind.config = {
  darkMode: 'class',
  theme: {
    extend: {
      colors: {
        background: 'hsl(var(--background))',
        foreground: 'hsl(var(--foreground))',
        border: 'hsl(var(--border))',
        input: 'hsl(var(--input))',
        ring: 'hsl(var(--ring))',
        primary: { DEFAULT: 'hsl(var(--primary))', foreground: 'hsl(var(--primary-foreground))' },
        secondary: { DEFAULT: 'hsl(var(--secondary))', foreground: 'hsl(var(--secondary-foreground))' },
        accent: { DEFAULT: 'hsl(var(--accent))', foreground: 'hsl(var(--accent-foreground))' },
        muted: { DEFAULT: 'hsl(var(--muted))', foreground: 'hsl(var(--muted-foreground))' },
        card: { DEFAULT: 'hsl(var(--card))', foreground: 'hsl(var(--card-foreground))' },
        warning: 'hsl(var(--warning))',
        'flash-sale': { DEFAULT: 'hsl(var(--flash-sale))', foreground: 'hsl(var(--flash-sale-foreground))' },
      },
    },
  },
}`

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = BrandName + " - Shop the Latest Trends"
	}

	if config.Description == "" {
		config.Description = "Discover amazing products at unbeatable prices."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.If(config.Theme == uistate.ThemeDark, Class("dark")),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(g.Raw(tailwindConfig)),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(append([]g.Node{Class("min-h-screen bg-background text-foreground")}, content...)...),
		),
	})
}
