package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogproxy/internal/catalog"
	"catalogproxy/internal/repos"
	"catalogproxy/internal/services"
)

type stubSource struct {
	products []catalog.Item
	brands   []catalog.Item
	err      error
}

func (s stubSource) Electronics(context.Context) ([]catalog.Item, error) { return s.products, s.err }
func (s stubSource) Brands(context.Context) ([]catalog.Item, error)      { return s.brands, s.err }

func product(id, brand, date string) catalog.Item {
	return catalog.Item{
		"productId": id, "productName": "P " + id, "brandName": brand,
		"category": "Laptops", "description": "d", "price": 10.0,
		"currency": "USD", "processor": "cpu", "memory": "8GB",
		"releaseDate": date, "averageRating": 4.5, "ratingCount": 3.0,
	}
}

func memstore(t *testing.T) repos.Store {
	t.Helper()
	s, err := repos.OpenSQLStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func fixedYear(y int) func() time.Time {
	return func() time.Time { return time.Date(y, 6, 1, 0, 0, 0, 0, time.UTC) }
}

func TestCatalog_Products_FilterAndPage(t *testing.T) {
	incomplete := product("x", "Zenith", "2024-01-01")
	delete(incomplete, "memory")
	src := stubSource{products: []catalog.Item{
		product("a", "Zenith", "2024-01-10"),
		incomplete,
		product("b", "Aura", "2024-02-10"),
		product("c", "Zenith", "2024-03-10"),
	}}
	svc := services.NewCatalogService(src, nil)

	all, err := svc.Products(context.Background(), services.Query{})
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	assert.Equal(t, 1, all.Stats.Rejected[catalog.ReasonMissing])

	got, err := svc.Products(context.Background(), services.Query{
		Start: "2024-01-15", Brands: []string{"Zenith", "Aura"}, PageSize: 1, PageNumber: 2,
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "c", got.Items[0].ProductID)

	got, err = svc.Products(context.Background(), services.Query{PageSize: 2, PageNumber: 3})
	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestCatalog_Products_UpstreamError(t *testing.T) {
	svc := services.NewCatalogService(stubSource{err: errors.New("request failed with status code 503")}, nil)
	_, err := svc.Products(context.Background(), services.Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 503")
}

func TestCatalog_JoinedRemote(t *testing.T) {
	src := stubSource{
		products: []catalog.Item{product("a", "Zenith", "2024-01-10"), product("b", "Ghost", "2024-01-11")},
		brands: []catalog.Item{{
			"name": "Zenith", "year_founded": "1995",
			"address": map[string]any{"street": "1 Way", "city": "Town", "country": "USA"},
		}},
	}
	svc := services.NewCatalogService(src, nil)
	svc.Now = fixedYear(2025)

	got, err := svc.JoinedRemote(context.Background(), services.Query{PageSize: 5, PageNumber: 1})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	z := got.Items[0].Brand
	assert.Equal(t, "Zenith", z.Name)
	require.NotNil(t, z.CompanyAge)
	assert.Equal(t, 30, *z.CompanyAge)
	require.NotNil(t, z.Address)
	assert.Equal(t, "1 Way, Town, USA", *z.Address)

	g := got.Items[1].Brand
	assert.Equal(t, "Ghost", g.Name)
	assert.Nil(t, g.CompanyAge)
	assert.Nil(t, g.Address)
	assert.Nil(t, g.YearFounded)
}

func TestCatalog_JoinedStored_Seeded(t *testing.T) {
	ctx := context.Background()
	store := memstore(t)
	require.NoError(t, repos.Seed(ctx, store))
	svc := services.NewCatalogService(nil, store)
	svc.Now = fixedYear(2025)

	got, err := svc.JoinedStored(ctx, services.Query{PageSize: 2, PageNumber: 1})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "SKU-LPTP-019", got[0].ProductID)
	require.NotNil(t, got[0].Brand.CompanyAge)
	assert.Equal(t, 30, *got[0].Brand.CompanyAge)
	require.NotNil(t, got[0].Brand.Address)
	assert.Equal(t, "123 Innovation Drive, Sanjose, California, 95113, USA", *got[0].Brand.Address)

	assert.Equal(t, "SKU-MOBL-019", got[1].ProductID)
	require.NotNil(t, got[1].Brand.CompanyAge)
	assert.Equal(t, 20, *got[1].Brand.CompanyAge)
	assert.Equal(t, "456 Tech Park, Bangalore, Karnataka, 560001, India", *got[1].Brand.Address)

	page2, err := svc.JoinedStored(ctx, services.Query{PageSize: 1, PageNumber: 2, Brands: []string{"Zenith", "Aura"}})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "SKU-MOBL-019", page2[0].ProductID)

	none, err := svc.JoinedStored(ctx, services.Query{PageSize: 1, PageNumber: 1, End: "2020-01-01"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
