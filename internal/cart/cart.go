// Package cart implements the shopping cart state container.
//
// A Cart is not safe for concurrent use. Callers hold it inside a session
// whose store serializes updates.
package cart

import (
	"github.com/laredoma/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Item is a product in the cart with its quantity
type Item struct {
	models.Product
	Quantity int `json:"quantity"`
}

// Subtotal is price × quantity
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an ordered collection of items, unique by product id
type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart
func New() *Cart {
	return &Cart{Items: []Item{}}
}

func (c *Cart) indexOf(productID string) int {
	for i, item := range c.Items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// Add inserts the product with quantity 1, or increments it if already present
func (c *Cart) Add(p models.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, Item{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity for a product; n <= 0 removes it.
// It reports whether the product was in the cart.
func (c *Cart) UpdateQuantity(productID string, n int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if n <= 0 {
		c.removeAt(i)
		return true
	}
	c.Items[i].Quantity = n
	return true
}

// Remove deletes the product from the cart and reports whether it was present
func (c *Cart) Remove(productID string) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *Cart) removeAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []Item{}
}

// Quantity returns how many units of the product are in the cart
func (c *Cart) Quantity(productID string) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// Total is the sum of price × quantity over all items
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count is the total number of units in the cart
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Len is the number of distinct products in the cart
func (c *Cart) Len() int {
	return len(c.Items)
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
