package catalog

import (
	"fmt"
	"math"
)

// FlashSaleRate is the share of the list price charged during a flash sale.
const FlashSaleRate = 0.7

// flashSaleIDs are the products currently on flash sale.
var flashSaleIDs = map[int]bool{
	1:  true,
	5:  true,
	8:  true,
	12: true,
}

// Price is the display pricing of a product.
type Price struct {
	Display   float64
	Original  float64
	Discount  int // whole percent off the original price
	FlashSale bool
}

// IsFlashSale reports whether the product with id is on flash sale.
func IsFlashSale(id int) bool {
	return flashSaleIDs[id]
}

// Pricing computes the display price of p, applying the flash sale discount
// when p is on sale.
func Pricing(p Product) Price {
	price := Price{
		Display:  p.Price,
		Original: p.Price,
	}

	if !IsFlashSale(p.ID) {
		return price
	}

	flash := p.Price * FlashSaleRate
	price.FlashSale = true
	if flash <= 0 {
		return price
	}

	price.Display = flash
	price.Discount = int(math.Round((p.Price - flash) / p.Price * 100))
	return price
}

// FormatPrice renders an amount in dollars with two decimals.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
