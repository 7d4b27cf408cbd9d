package catalog

// ProductView is the snake_case output record. Every field is always
// present; falsy or missing source values encode as null.
type ProductView struct {
	ProductID       any `json:"product_id"`
	ProductName     any `json:"product_name"`
	BrandName       any `json:"brand_name"`
	CategoryName    any `json:"category_name"`
	DescriptionText any `json:"description_text"`
	Price           any `json:"price"`
	Currency        any `json:"currency"`
	Processor       any `json:"processor"`
	Memory          any `json:"memory"`
	ReleaseDate     any `json:"release_date"`
	AverageRating   any `json:"average_rating"`
	RatingCount     any `json:"rating_count"`
}

// JoinedProductView replaces brand_name with the nested brand block.
type JoinedProductView struct {
	ProductID       any       `json:"product_id"`
	ProductName     any       `json:"product_name"`
	Brand           BrandView `json:"brand"`
	CategoryName    any       `json:"category_name"`
	DescriptionText any       `json:"description_text"`
	Price           any       `json:"price"`
	Currency        any       `json:"currency"`
	Processor       any       `json:"processor"`
	Memory          any       `json:"memory"`
	ReleaseDate     any       `json:"release_date"`
	AverageRating   any       `json:"average_rating"`
	RatingCount     any       `json:"rating_count"`
}

func MapProduct(it Item) ProductView {
	return ProductView{
		ProductID:       orNull(it[FieldProductID]),
		ProductName:     orNull(it[FieldProductName]),
		BrandName:       orNull(it[FieldBrandName]),
		CategoryName:    orNull(it[FieldCategory]),
		DescriptionText: orNull(it[FieldDescription]),
		Price:           orNull(it[FieldPrice]),
		Currency:        orNull(it[FieldCurrency]),
		Processor:       orNull(it[FieldProcessor]),
		Memory:          orNull(it[FieldMemory]),
		ReleaseDate:     orNull(it[FieldReleaseDate]),
		AverageRating:   orNull(it[FieldAverageRating]),
		RatingCount:     orNull(it[FieldRatingCount]),
	}
}

func MapJoined(it Item, brand BrandView) JoinedProductView {
	return JoinedProductView{
		ProductID:       orNull(it[FieldProductID]),
		ProductName:     orNull(it[FieldProductName]),
		Brand:           brand,
		CategoryName:    orNull(it[FieldCategory]),
		DescriptionText: orNull(it[FieldDescription]),
		Price:           orNull(it[FieldPrice]),
		Currency:        orNull(it[FieldCurrency]),
		Processor:       orNull(it[FieldProcessor]),
		Memory:          orNull(it[FieldMemory]),
		ReleaseDate:     orNull(it[FieldReleaseDate]),
		AverageRating:   orNull(it[FieldAverageRating]),
		RatingCount:     orNull(it[FieldRatingCount]),
	}
}

func MapProducts(items []Item) []ProductView {
	out := make([]ProductView, 0, len(items))
	for _, it := range items {
		out = append(out, MapProduct(it))
	}
	return out
}

// MapJoinedAll joins each item against idx as of year.
func MapJoinedAll(items []Item, idx BrandIndex, year int) []JoinedProductView {
	out := make([]JoinedProductView, 0, len(items))
	for _, it := range items {
		out = append(out, MapJoined(it, JoinBrand(it, idx, year)))
	}
	return out
}
