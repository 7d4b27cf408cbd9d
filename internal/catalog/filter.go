package catalog

import "slices"

type Reason string

const (
	ReasonNone        Reason = ""
	ReasonMissing     Reason = "missing"      // key absent or null
	ReasonFalsy       Reason = "falsy"        // present but 0, "" or false
	ReasonBeforeStart Reason = "before_start" // releaseDate < start
	ReasonAfterEnd    Reason = "after_end"    // releaseDate > end
	ReasonBrand       Reason = "brand"        // brandName not in the requested list
)

// Outcome says whether an item passed and, if not, which field failed and why.
type Outcome struct {
	Valid  bool
	Field  string
	Reason Reason
}

var accepted = Outcome{Valid: true}

// Check reports whether every required field is present and truthy.
// A legitimately zero price or rating count is still rejected, but with
// ReasonFalsy rather than ReasonMissing.
func Check(item Item) Outcome {
	for _, f := range RequiredFields {
		v, ok := item[f]
		if !ok || v == nil {
			return Outcome{Field: f, Reason: ReasonMissing}
		}
		if !Truthy(v) {
			return Outcome{Field: f, Reason: ReasonFalsy}
		}
	}
	return accepted
}

// Filter combines the completeness check with the optional release-date
// range and brand membership predicates. Zero values disable a predicate.
type Filter struct {
	Start  string
	End    string
	Brands []string
}

// Evaluate runs the checks in order and stops at the first failure.
// Dates compare as strings; zero-padded ISO dates sort chronologically.
func (f Filter) Evaluate(item Item) Outcome {
	if o := Check(item); !o.Valid {
		return o
	}
	date := asString(item[FieldReleaseDate])
	if f.Start != "" && date < f.Start {
		return Outcome{Field: FieldReleaseDate, Reason: ReasonBeforeStart}
	}
	if f.End != "" && date > f.End {
		return Outcome{Field: FieldReleaseDate, Reason: ReasonAfterEnd}
	}
	if len(f.Brands) > 0 {
		name, _ := item[FieldBrandName].(string)
		if !slices.Contains(f.Brands, name) {
			return Outcome{Field: FieldBrandName, Reason: ReasonBrand}
		}
	}
	return accepted
}

// Stats counts rejections per reason.
type Stats struct {
	Kept     int
	Rejected map[Reason]int
}

// Apply keeps matching items in input order.
func (f Filter) Apply(items []Item) ([]Item, Stats) {
	out := make([]Item, 0, len(items))
	st := Stats{Rejected: map[Reason]int{}}
	for _, it := range items {
		o := f.Evaluate(it)
		if !o.Valid {
			st.Rejected[o.Reason]++
			continue
		}
		out = append(out, it)
	}
	st.Kept = len(out)
	return out, st
}
