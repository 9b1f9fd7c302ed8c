package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestCN(t *testing.T) {
	assert.Equal(t, "a b c", CN("a b", "b c", ""))
	assert.Equal(t, "", CN())
	assert.Equal(t, "x", CN("  x  ", "x"))
}

func TestClassIf(t *testing.T) {
	assert.Equal(t, "on", ClassIf(true, "on"))
	assert.Equal(t, "", ClassIf(false, "on"))
}

func TestButton(t *testing.T) {
	html := render(t, Button(Variant(ButtonVariantCart), Class[*ButtonConfig]("my-class"), Child[*ButtonConfig](g.Text("Add to Cart"))))

	assert.True(t, strings.HasPrefix(html, "<button"))
	assert.Contains(t, html, "bg-accent")
	assert.Contains(t, html, "my-class")
	assert.Contains(t, html, `type="button"`)
	assert.Contains(t, html, "Add to Cart")
}

func TestButton_Link(t *testing.T) {
	html := render(t, Button(ButtonHref("/?page=2"), Variant(ButtonVariantOutline)))

	assert.True(t, strings.HasPrefix(html, "<a"))
	assert.Contains(t, html, `href="/?page=2"`)
	assert.Contains(t, html, "border-input")
}

func TestButton_DisabledLinkRendersButton(t *testing.T) {
	html := render(t, Button(ButtonHref("/?page=0"), ButtonDisabled(true)))

	assert.True(t, strings.HasPrefix(html, "<button"))
	assert.Contains(t, html, "disabled")
	assert.NotContains(t, html, "href")
}

func TestButton_Submit(t *testing.T) {
	html := render(t, Button(ButtonType("submit"), Size(ButtonSizeIcon), Variant(ButtonVariantGhost)))

	assert.Contains(t, html, `type="submit"`)
	assert.Contains(t, html, "h-10 w-10")
}

func TestInput(t *testing.T) {
	html := render(t, Input(InputName("q"), InputPlaceholder("Search products..."), InputValue("ring")))

	assert.True(t, strings.HasPrefix(html, "<input"))
	assert.Contains(t, html, `type="text"`)
	assert.Contains(t, html, `name="q"`)
	assert.Contains(t, html, `placeholder="Search products..."`)
	assert.Contains(t, html, `value="ring"`)
}

func TestInput_EscapesValue(t *testing.T) {
	html := render(t, Input(InputValue(`"><script>`)))
	assert.NotContains(t, html, "<script>")
}

func TestHidden(t *testing.T) {
	html := render(t, Hidden("page", "3"))
	assert.Contains(t, html, `type="hidden"`)
	assert.Contains(t, html, `name="page"`)
	assert.Contains(t, html, `value="3"`)
}

func TestCardAndBadge(t *testing.T) {
	card := render(t, Card(Class[*CardConfig]("group"), Child[*CardConfig](g.Text("body"))))
	assert.Contains(t, card, "rounded-xl")
	assert.Contains(t, card, "group")
	assert.Contains(t, card, "body")

	badge := render(t, Badge(BadgeVariantOf(BadgeVariantFlash), Child[*BadgeConfig](g.Text("-30% OFF"))))
	assert.Contains(t, badge, "bg-gradient-flash")
	assert.Contains(t, badge, "-30% OFF")
}

func TestIcon(t *testing.T) {
	decorative := render(t, Icon("lucide:heart", "h-5 w-5", ""))
	assert.Contains(t, decorative, `data-icon="lucide:heart"`)
	assert.Contains(t, decorative, `aria-hidden="true"`)

	labelled := render(t, Icon("lucide:search", "", "Search"))
	assert.Contains(t, labelled, `aria-label="Search"`)
	assert.Contains(t, labelled, `role="img"`)
}
