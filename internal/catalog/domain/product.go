package domain

// Product is a purchasable catalog entry. Price is in whole currency units.
type Product struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
	Price       int64  `json:"price" yaml:"price"`
}
