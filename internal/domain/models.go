package domain

// Product is a persisted catalog record. Field names follow the upstream
// catalog (camelCase in JSON/BSON) so stored and fetched items share one shape.
type Product struct {
	ProductID     string  `db:"product_id" bson:"productId" json:"productId"`
	ProductName   string  `db:"product_name" bson:"productName" json:"productName"`
	BrandName     string  `db:"brand_name" bson:"brandName" json:"brandName"`
	Category      string  `db:"category" bson:"category" json:"category"`
	Description   string  `db:"description" bson:"description" json:"description"`
	Price         float64 `db:"price" bson:"price" json:"price"`
	Currency      string  `db:"currency" bson:"currency" json:"currency"`
	Processor     string  `db:"processor" bson:"processor" json:"processor"`
	Memory        string  `db:"memory" bson:"memory" json:"memory"`
	ReleaseDate   string  `db:"release_date" bson:"releaseDate" json:"releaseDate"`
	AverageRating float64 `db:"average_rating" bson:"averageRating" json:"averageRating"`
	RatingCount   int     `db:"rating_count" bson:"ratingCount" json:"ratingCount"`
}

// Item returns the product as a loosely-typed upstream-style record.
func (p Product) Item() map[string]any {
	return map[string]any{
		"productId":     p.ProductID,
		"productName":   p.ProductName,
		"brandName":     p.BrandName,
		"category":      p.Category,
		"description":   p.Description,
		"price":         p.Price,
		"currency":      p.Currency,
		"processor":     p.Processor,
		"memory":        p.Memory,
		"releaseDate":   p.ReleaseDate,
		"averageRating": p.AverageRating,
		"ratingCount":   p.RatingCount,
	}
}

type Address struct {
	Street     string `db:"street" bson:"street,omitempty" json:"street,omitempty"`
	City       string `db:"city" bson:"city,omitempty" json:"city,omitempty"`
	State      string `db:"state" bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `db:"postal_code" bson:"postal_code,omitempty" json:"postal_code,omitempty"`
	Country    string `db:"country" bson:"country,omitempty" json:"country,omitempty"`
}

// Brand is identified by Name; Address is nil when the brand has none.
type Brand struct {
	Name        string   `bson:"name" json:"name"`
	YearFounded string   `bson:"year_founded,omitempty" json:"year_founded,omitempty"`
	Address     *Address `bson:"address,omitempty" json:"address,omitempty"`
}

// Record returns the brand in the upstream brands-API shape.
func (b Brand) Record() map[string]any {
	rec := map[string]any{"name": b.Name}
	if b.YearFounded != "" {
		rec["year_founded"] = b.YearFounded
	}
	if b.Address != nil {
		rec["address"] = map[string]any{
			"street":      b.Address.Street,
			"city":        b.Address.City,
			"state":       b.Address.State,
			"postal_code": b.Address.PostalCode,
			"country":     b.Address.Country,
		}
	}
	return rec
}

// ProductFilter holds the store-side predicates used by the persisted listing.
type ProductFilter struct {
	Brands           []string
	ReleaseDateStart string
	ReleaseDateEnd   string
	Limit            int
	Offset           int
}
