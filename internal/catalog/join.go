package catalog

import (
	"strings"

	"catalogproxy/internal/validate"
)

// BrandIndex maps a brand name to its record.
type BrandIndex map[string]Item

// NewBrandIndex indexes brands by name. Records without a name are skipped;
// for duplicate names the later record replaces the earlier one.
func NewBrandIndex(brands []Item) BrandIndex {
	idx := make(BrandIndex, len(brands))
	for _, b := range brands {
		if name := b["name"]; Truthy(name) {
			idx[asString(name)] = b
		}
	}
	return idx
}

// BrandView is the brand block attached to joined products. Nil pointers
// encode as JSON null.
type BrandView struct {
	Name        any     `json:"name"`
	YearFounded any     `json:"year_founded"`
	CompanyAge  *int    `json:"company_age"`
	Address     *string `json:"address"`
}

var addressParts = []string{"street", "city", "state", "postal_code", "country"}

// JoinBrand looks up item's brand and derives its age as of year.
// Unknown brands fall back to the item's own brandName with no age or address.
func JoinBrand(item Item, idx BrandIndex, year int) BrandView {
	b := idx[asString(item[FieldBrandName])]
	v := BrandView{
		Name:        orNull(b["name"], item[FieldBrandName]),
		YearFounded: orNull(b["year_founded"]),
	}
	if yf := b["year_founded"]; Truthy(yf) {
		if n, ok := validate.ParseInt(asString(yf)); ok {
			age := year - n
			v.CompanyAge = &age
		}
	}
	if addr := b["address"]; Truthy(addr) {
		joined := FlattenAddress(addr)
		v.Address = &joined
	}
	return v
}

// FlattenAddress joins the truthy address components with ", ".
// Anything that is not an object flattens to "".
func FlattenAddress(addr any) string {
	m, ok := addr.(map[string]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(addressParts))
	for _, k := range addressParts {
		if v := m[k]; Truthy(v) {
			parts = append(parts, asString(v))
		}
	}
	return strings.Join(parts, ", ")
}
