package static

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dwikikusuma/guitar-cart/internal/catalog/domain"
	"gopkg.in/yaml.v3"
)

//go:embed guitars.yaml
var embeddedCatalog []byte

// ProductSource serves a fixed, read-only product list loaded once at startup.
type ProductSource struct {
	products []domain.Product
}

// Embedded returns the catalog compiled into the binary.
func Embedded() (*ProductSource, error) {
	return Parse(embeddedCatalog)
}

// Open loads a catalog from a YAML file. An empty path falls back to the
// embedded catalog.
func Open(path string) (*ProductSource, error) {
	if strings.TrimSpace(path) == "" {
		return Embedded()
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	src, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return src, nil
}

func Parse(data []byte) (*ProductSource, error) {
	var products []domain.Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[int64]struct{}, len(products))
	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %d: id must be positive, got %d", i, p.ID)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("product %d: duplicate id %d", i, p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d: price cannot be negative, got %d", i, p.Price)
		}
		seen[p.ID] = struct{}{}
	}

	return &ProductSource{products: products}, nil
}

func (s *ProductSource) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}
