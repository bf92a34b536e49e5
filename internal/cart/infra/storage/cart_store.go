package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/guitar-cart/internal/cart/domain"
	"github.com/dwikikusuma/guitar-cart/pkg/kv"
)

const DefaultKey = "cart"

// CartStore keeps the whole cart as one JSON array under a single key.
type CartStore struct {
	kv  kv.Store
	key string
	log *slog.Logger
}

func NewCartStore(store kv.Store, key string, log *slog.Logger) *CartStore {
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}
	if log == nil {
		log = slog.Default()
	}
	return &CartStore{
		kv:  store,
		key: key,
		log: log,
	}
}

// Load returns the stored cart, or an empty cart when nothing usable is stored.
func (s *CartStore) Load(ctx context.Context) domain.Cart {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("cart read failed, starting empty", slog.String("key", s.key), slog.Any("err", err))
		return domain.Cart{}
	}
	if !ok {
		return domain.Cart{}
	}

	cart, err := decode(raw)
	if err != nil {
		s.log.Warn("stored cart discarded", slog.String("key", s.key), slog.Any("err", err))
		return domain.Cart{}
	}
	return cart
}

func (s *CartStore) Save(ctx context.Context, cart domain.Cart) error {
	if cart == nil {
		cart = domain.Cart{}
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

func decode(raw string) (domain.Cart, error) {
	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if cart == nil {
		return domain.Cart{}, nil
	}
	if err := cart.Validate(); err != nil {
		return nil, err
	}
	return cart, nil
}
