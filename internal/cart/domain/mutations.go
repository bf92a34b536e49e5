package domain

import catalog "github.com/dwikikusuma/guitar-cart/internal/catalog/domain"

// None of these modify the cart they are given.

// Add appends p with quantity 1, or bumps the existing line up to MaxQuantity.
func Add(c Cart, p catalog.Product) Cart {
	if i := c.Find(p.ID); i >= 0 {
		return Increase(c, p.ID)
	}
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return append(out, LineItem{Product: p, Quantity: MinQuantity})
}

func Remove(c Cart, id int64) Cart {
	out := make(Cart, 0, len(c))
	for _, li := range c {
		if li.ID != id {
			out = append(out, li)
		}
	}
	return out
}

func Increase(c Cart, id int64) Cart {
	out := c.clone()
	if i := out.Find(id); i >= 0 && out[i].Quantity < MaxQuantity {
		out[i].Quantity++
	}
	return out
}

// Decrease never drops a line; only Remove does.
func Decrease(c Cart, id int64) Cart {
	out := c.clone()
	if i := out.Find(id); i >= 0 && out[i].Quantity > MinQuantity {
		out[i].Quantity--
	}
	return out
}

func Clear() Cart {
	return Cart{}
}
