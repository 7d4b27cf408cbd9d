package repos

import (
	"context"
	"fmt"

	"catalogproxy/internal/domain"
)

var SeedBrands = []domain.Brand{
	{
		Name:        "Zenith",
		YearFounded: "1995",
		Address: &domain.Address{
			Street: "123 Innovation Drive", City: "Sanjose", State: "California",
			PostalCode: "95113", Country: "USA",
		},
	},
	{
		Name:        "Aura",
		YearFounded: "2005",
		Address: &domain.Address{
			Street: "456 Tech Park", City: "Bangalore", State: "Karnataka",
			PostalCode: "560001", Country: "India",
		},
	},
}

var SeedProducts = []domain.Product{
	{
		ProductID:     "SKU-LPTP-019",
		ProductName:   "Zenith Gram SuperSlim",
		BrandName:     "Zenith",
		Category:      "Laptops",
		Description:   "The thinnest Gram ever. An unbelievably slim and light laptop with a vibrant OLED display.",
		Price:         1699.99,
		Currency:      "USD",
		Processor:     "Intel Core i7",
		Memory:        "16GB LPDDR5",
		ReleaseDate:   "2024-12-22",
		AverageRating: 4.7,
		RatingCount:   250,
	},
	{
		ProductID:     "SKU-MOBL-019",
		ProductName:   "Aura ROG Phone 8",
		BrandName:     "Aura",
		Category:      "Mobiles",
		Description:   "The ultimate gaming phone, redesigned. A sleeker, more powerful device for gamers and beyond.",
		Price:         1099.99,
		Currency:      "USD",
		Processor:     "Aura Snapdragon 8 Gen 3",
		Memory:        "16GB RAM",
		ReleaseDate:   "2024-11-12",
		AverageRating: 4.8,
		RatingCount:   600,
	},
}

// Seed wipes the store and loads the fixed demo brands and products.
func Seed(ctx context.Context, s Store) error {
	if err := s.Reset(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	for _, b := range SeedBrands {
		if _, _, err := s.FindOrCreateBrand(ctx, b); err != nil {
			return fmt.Errorf("seed brand %s: %w", b.Name, err)
		}
	}
	for _, p := range SeedProducts {
		if err := s.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ProductID, err)
		}
	}
	return nil
}
