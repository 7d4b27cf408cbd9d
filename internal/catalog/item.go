// Package catalog holds the request-shaping pipeline shared by the step
// endpoints: completeness and predicate filtering, brand joining, pagination
// and mapping to the snake_case output contract.
package catalog

import (
	"fmt"
	"math"
)

// Item is one loosely-typed upstream record (decoded JSON object).
type Item = map[string]any

// Upstream field names, in output order.
const (
	FieldProductID     = "productId"
	FieldProductName   = "productName"
	FieldBrandName     = "brandName"
	FieldCategory      = "category"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldCurrency      = "currency"
	FieldProcessor     = "processor"
	FieldMemory        = "memory"
	FieldReleaseDate   = "releaseDate"
	FieldAverageRating = "averageRating"
	FieldRatingCount   = "ratingCount"
)

// RequiredFields must all be present and truthy for an item to be complete.
var RequiredFields = []string{
	FieldProductID, FieldProductName, FieldBrandName, FieldCategory,
	FieldDescription, FieldPrice, FieldCurrency, FieldProcessor,
	FieldMemory, FieldReleaseDate, FieldAverageRating, FieldRatingCount,
}

// Truthy follows JSON-value truthiness: nil, false, 0, NaN and "" are false.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

// orNull returns the first truthy value, or nil.
func orNull(vals ...any) any {
	for _, v := range vals {
		if Truthy(v) {
			return v
		}
	}
	return nil
}

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
