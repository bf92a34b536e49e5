package app

import (
	"context"

	"github.com/dwikikusuma/guitar-cart/internal/catalog/domain"
)

type ProductSource interface {
	List(ctx context.Context) ([]domain.Product, error)
}
