package app

import (
	"context"

	"github.com/dwikikusuma/guitar-cart/internal/cart/domain"
)

// Store holds one snapshot of the cart. Load never fails; an unreadable
// snapshot is reported as an empty cart.
type Store interface {
	Load(ctx context.Context) domain.Cart
	Save(ctx context.Context, cart domain.Cart) error
}
