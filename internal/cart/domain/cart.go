package domain

import (
	"fmt"

	catalog "github.com/dwikikusuma/guitar-cart/internal/catalog/domain"
)

const (
	MinQuantity = 1
	MaxQuantity = 5
)

// LineItem is a catalog product plus the selected quantity. It encodes as a
// single flat JSON object.
type LineItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

func (li LineItem) Subtotal() int64 {
	return int64(li.Quantity) * li.Price
}

// Cart is an ordered list of line items with unique product ids.
type Cart []LineItem

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) Total() int64 {
	var total int64
	for _, li := range c {
		total += li.Subtotal()
	}
	return total
}

// Find returns the index of the line for id, or -1.
func (c Cart) Find(id int64) int {
	for i, li := range c {
		if li.ID == id {
			return i
		}
	}
	return -1
}

// Validate reports the first line that breaks the cart invariants.
func (c Cart) Validate() error {
	seen := make(map[int64]struct{}, len(c))
	for i, li := range c {
		if li.Quantity < MinQuantity || li.Quantity > MaxQuantity {
			return fmt.Errorf("line %d: quantity %d out of range [%d,%d]", i, li.Quantity, MinQuantity, MaxQuantity)
		}
		if _, ok := seen[li.ID]; ok {
			return fmt.Errorf("line %d: duplicate id %d", i, li.ID)
		}
		seen[li.ID] = struct{}{}
	}
	return nil
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
