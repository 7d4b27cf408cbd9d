package services

import (
	"context"
	"fmt"
	"time"

	"catalogproxy/internal/catalog"
	"catalogproxy/internal/domain"
	"catalogproxy/internal/repos"
	"catalogproxy/internal/upstream"
)

// Query carries the validated listing parameters. A zero PageSize means
// "no pagination" (steps 1-3).
type Query struct {
	Start      string
	End        string
	Brands     []string
	PageSize   int
	PageNumber int
}

func (q Query) filter() catalog.Filter {
	return catalog.Filter{Start: q.Start, End: q.End, Brands: q.Brands}
}

func (q Query) paged() bool { return q.PageSize > 0 && q.PageNumber > 0 }

// Listing is one pipeline run: the mapped rows plus what the filter dropped.
type Listing[T any] struct {
	Items []T
	Stats catalog.Stats
}

type CatalogService struct {
	Source upstream.Source
	Store  repos.Store
	Now    func() time.Time
}

func NewCatalogService(src upstream.Source, store repos.Store) *CatalogService {
	return &CatalogService{Source: src, Store: store, Now: time.Now}
}

func (s *CatalogService) year() int {
	if s.Now == nil {
		return time.Now().Year()
	}
	return s.Now().Year()
}

// Products fetches upstream electronics, filters them by q and, when q is
// paged, cuts the requested page.
func (s *CatalogService) Products(ctx context.Context, q Query) (Listing[catalog.ProductView], error) {
	items, err := s.Source.Electronics(ctx)
	if err != nil {
		return Listing[catalog.ProductView]{}, fmt.Errorf("fetch electronics: %w", err)
	}
	kept, stats := q.filter().Apply(items)
	if q.paged() {
		kept = catalog.Page(kept, q.PageSize, q.PageNumber)
	}
	return Listing[catalog.ProductView]{Items: catalog.MapProducts(kept), Stats: stats}, nil
}

// JoinedRemote is Products plus the upstream brands join. Both lists are
// fetched concurrently.
func (s *CatalogService) JoinedRemote(ctx context.Context, q Query) (Listing[catalog.JoinedProductView], error) {
	items, brands, err := upstream.FetchBoth(ctx, s.Source)
	if err != nil {
		return Listing[catalog.JoinedProductView]{}, fmt.Errorf("fetch catalog: %w", err)
	}
	kept, stats := q.filter().Apply(items)
	if q.paged() {
		kept = catalog.Page(kept, q.PageSize, q.PageNumber)
	}
	idx := catalog.NewBrandIndex(brands)
	return Listing[catalog.JoinedProductView]{Items: catalog.MapJoinedAll(kept, idx, s.year()), Stats: stats}, nil
}

// JoinedStored reads the page straight from the store, with the brand and
// date predicates applied by the query, and joins it with stored brands.
// Stored products passed the create-time check, so completeness is not re-run.
func (s *CatalogService) JoinedStored(ctx context.Context, q Query) ([]catalog.JoinedProductView, error) {
	f := domain.ProductFilter{
		Brands:           q.Brands,
		ReleaseDateStart: q.Start,
		ReleaseDateEnd:   q.End,
	}
	if q.paged() {
		f.Limit = q.PageSize
		f.Offset = catalog.Offset(q.PageSize, q.PageNumber)
	}
	prods, err := s.Store.FindProducts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	brands, err := s.Store.AllBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	items := make([]catalog.Item, 0, len(prods))
	for _, p := range prods {
		items = append(items, p.Item())
	}
	records := make([]catalog.Item, 0, len(brands))
	for _, b := range brands {
		records = append(records, b.Record())
	}
	return catalog.MapJoinedAll(items, catalog.NewBrandIndex(records), s.year()), nil
}
