package app

import (
	"context"
	"errors"

	"github.com/dwikikusuma/guitar-cart/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	src ProductSource
}

func NewService(src ProductSource) *Service {
	return &Service{
		src: src,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.src.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}

	products, err := s.src.List(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, ErrNotFound
}
