package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/guitar-cart/internal/cart/domain"
	catalog "github.com/dwikikusuma/guitar-cart/internal/catalog/domain"
)

// Service owns the cart for one session and writes a snapshot after every
// mutation.
type Service struct {
	mu    sync.Mutex
	cart  domain.Cart
	store Store
	log   *slog.Logger
}

func NewService(ctx context.Context, store Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	cart := store.Load(ctx)
	if cart == nil {
		cart = domain.Cart{}
	}
	log.Debug("cart loaded", slog.Int("lines", len(cart)), slog.Int64("total", cart.Total()))

	return &Service{
		cart:  cart,
		store: store,
		log:   log,
	}
}

// Cart returns a copy of the current cart.
func (s *Service) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.Cart, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Service) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

func (s *Service) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Service) AddToCart(ctx context.Context, p catalog.Product) (domain.Cart, error) {
	return s.apply(ctx, "add", p.ID, func(c domain.Cart) domain.Cart { return domain.Add(c, p) })
}

func (s *Service) RemoveFromCart(ctx context.Context, id int64) (domain.Cart, error) {
	return s.apply(ctx, "remove", id, func(c domain.Cart) domain.Cart { return domain.Remove(c, id) })
}

func (s *Service) IncreaseQuantity(ctx context.Context, id int64) (domain.Cart, error) {
	return s.apply(ctx, "increase", id, func(c domain.Cart) domain.Cart { return domain.Increase(c, id) })
}

func (s *Service) DecreaseQuantity(ctx context.Context, id int64) (domain.Cart, error) {
	return s.apply(ctx, "decrease", id, func(c domain.Cart) domain.Cart { return domain.Decrease(c, id) })
}

func (s *Service) ClearCart(ctx context.Context) (domain.Cart, error) {
	return s.apply(ctx, "clear", 0, func(domain.Cart) domain.Cart { return domain.Clear() })
}

// apply swaps in the new cart before saving, so a failed save still leaves
// the session holding the result.
func (s *Service) apply(ctx context.Context, op string, id int64, fn func(domain.Cart) domain.Cart) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = fn(s.cart)
	s.log.Debug("cart updated",
		slog.String("op", op),
		slog.Int64("product_id", id),
		slog.Int("lines", len(s.cart)),
		slog.Int64("total", s.cart.Total()),
	)

	out := make(domain.Cart, len(s.cart))
	copy(out, s.cart)

	if err := s.store.Save(ctx, s.cart); err != nil {
		s.log.Error("cart save failed", slog.String("op", op), slog.Any("err", err))
		return out, fmt.Errorf("save cart: %w", err)
	}
	return out, nil
}
