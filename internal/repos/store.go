package repos

import (
	"context"
	"errors"

	"catalogproxy/internal/domain"
)

var ErrNotFound = errors.New("not found")

type ProductStore interface {
	// FindProducts returns products in insertion order, filtered and windowed by f.
	FindProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) error
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

type BrandStore interface {
	AllBrands(ctx context.Context) ([]domain.Brand, error)
	GetBrand(ctx context.Context, name string) (domain.Brand, error)
	// FindOrCreateBrand returns the stored brand named b.Name, inserting b
	// first if none exists. It is atomic with respect to concurrent callers.
	FindOrCreateBrand(ctx context.Context, b domain.Brand) (domain.Brand, bool, error)
}

// Store is the persistence boundary used by the services.
type Store interface {
	ProductStore
	BrandStore
	// Reset removes every product and brand.
	Reset(ctx context.Context) error
	Close() error
}
