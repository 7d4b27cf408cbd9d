package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"catalogproxy/internal/domain"
	"catalogproxy/internal/repos"
	"catalogproxy/internal/validate"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrNotFound      = repos.ErrNotFound
)

// AddressInput accepts either an address object or a flat
// "street, city, state, postal_code, country" string.
type AddressInput domain.Address

func (a *AddressInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AddressInput(ParseAddress(s))
		return nil
	}
	var obj domain.Address
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*a = AddressInput(obj)
	return nil
}

// ParseAddress splits a comma-separated address into its five parts.
// Missing trailing parts stay empty.
func ParseAddress(s string) domain.Address {
	parts := strings.Split(s, ",")
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	return domain.Address{
		Street:     get(0),
		City:       get(1),
		State:      get(2),
		PostalCode: get(3),
		Country:    get(4),
	}
}

// YearInput takes year_founded as a string or a bare number.
type YearInput string

func (y *YearInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = YearInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*y = YearInput(n.String())
	return nil
}

// NumberInput takes a JSON number in any form or a numeric string.
// An empty string reads as zero.
type NumberInput float64

func (n *NumberInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw = strings.TrimSpace(raw); raw == "" {
			*n = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("not a number: %s", data)
	}
	*n = NumberInput(f)
	return nil
}

// CountInput is a NumberInput that must hold a whole value.
type CountInput int

func (c *CountInput) UnmarshalJSON(data []byte) error {
	var n NumberInput
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	f := float64(n)
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("not a whole number: %s", data)
	}
	*c = CountInput(f)
	return nil
}

type BrandInput struct {
	Name        string        `json:"name" validate:"required"`
	YearFounded YearInput     `json:"year_founded"`
	Address     *AddressInput `json:"address"`
}

func (b BrandInput) brand() domain.Brand {
	out := domain.Brand{Name: b.Name, YearFounded: string(b.YearFounded)}
	if b.Address != nil && *b.Address != (AddressInput{}) {
		addr := domain.Address(*b.Address)
		out.Address = &addr
	}
	return out
}

// ProductInput is the create/update body. Create requires every field to be
// non-zero; update applies only the non-zero ones.
type ProductInput struct {
	ProductName     string      `json:"product_name" validate:"required"`
	Brand           *BrandInput `json:"brand" validate:"required"`
	CategoryName    string      `json:"category_name" validate:"required"`
	DescriptionText string      `json:"description_text" validate:"required"`
	Price           NumberInput `json:"price" validate:"required"`
	Currency        string      `json:"currency" validate:"required"`
	Processor       string      `json:"processor" validate:"required"`
	Memory          string      `json:"memory" validate:"required"`
	ReleaseDate     string      `json:"release_date" validate:"required"`
	AverageRating   NumberInput `json:"average_rating" validate:"required"`
	RatingCount     CountInput  `json:"rating_count" validate:"required"`
}

type ProductService struct {
	Store repos.Store
}

func NewProductService(store repos.Store) *ProductService {
	return &ProductService{Store: store}
}

// Create stores a new product under a fresh id, creating its brand on first use.
// It reports whether the brand was newly created.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (string, bool, error) {
	if err := validate.Struct(in); err != nil {
		return "", false, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(validate.Fields(err), ", "))
	}
	brand, created, err := s.Store.FindOrCreateBrand(ctx, in.Brand.brand())
	if err != nil {
		return "", false, fmt.Errorf("find or create brand: %w", err)
	}
	p := domain.Product{
		ProductID:     uuid.NewString(),
		ProductName:   in.ProductName,
		BrandName:     brand.Name,
		Category:      in.CategoryName,
		Description:   in.DescriptionText,
		Price:         float64(in.Price),
		Currency:      in.Currency,
		Processor:     in.Processor,
		Memory:        in.Memory,
		ReleaseDate:   in.ReleaseDate,
		AverageRating: float64(in.AverageRating),
		RatingCount:   int(in.RatingCount),
	}
	if err := s.Store.CreateProduct(ctx, p); err != nil {
		return "", created, err
	}
	return p.ProductID, created, nil
}

// Update overwrites the fields of productID that are non-zero in in.
// The brand is reattached only when in.Brand.Name is set.
func (s *ProductService) Update(ctx context.Context, productID string, in ProductInput) error {
	p, err := s.Store.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	setString(&p.ProductName, in.ProductName)
	setString(&p.Category, in.CategoryName)
	setString(&p.Description, in.DescriptionText)
	setString(&p.Currency, in.Currency)
	setString(&p.Processor, in.Processor)
	setString(&p.Memory, in.Memory)
	setString(&p.ReleaseDate, in.ReleaseDate)
	if in.Price != 0 {
		p.Price = float64(in.Price)
	}
	if in.AverageRating != 0 {
		p.AverageRating = float64(in.AverageRating)
	}
	if in.RatingCount != 0 {
		p.RatingCount = int(in.RatingCount)
	}
	if in.Brand != nil && in.Brand.Name != "" {
		brand, _, err := s.Store.FindOrCreateBrand(ctx, in.Brand.brand())
		if err != nil {
			return fmt.Errorf("find or create brand: %w", err)
		}
		p.BrandName = brand.Name
	}
	return s.Store.UpdateProduct(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, productID string) error {
	return s.Store.DeleteProduct(ctx, productID)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
