package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"catalogproxy/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `
    product_id, product_name, brand_name, category, description, price, currency,
    processor, memory, release_date, average_rating, rating_count`

func (r *ProductRepo) FindProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	where := `1 = 1`
	args := []any{}
	if len(f.Brands) > 0 {
		where += ` AND brand_name IN (?)`
		args = append(args, f.Brands)
	}
	if f.ReleaseDateStart != "" {
		where += ` AND release_date >= ?`
		args = append(args, f.ReleaseDateStart)
	}
	if f.ReleaseDateEnd != "" {
		where += ` AND release_date <= ?`
		args = append(args, f.ReleaseDateEnd)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	args = append(args, limit, f.Offset)

	query, args, err := sqlx.In(`
  SELECT`+productColumns+`
  FROM products
  WHERE `+where+`
  ORDER BY seq
  LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}

	out := []domain.Product{}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return out, nil
}

func (r *ProductRepo) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, `
  SELECT`+productColumns+`
  FROM products
  WHERE product_id = ?
`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.db.NamedExecContext(ctx, `
	  INSERT INTO products(`+productColumns+`)
	  VALUES (:product_id, :product_name, :brand_name, :category, :description, :price, :currency,
	          :processor, :memory, :release_date, :average_rating, :rating_count)
	`, p)
	if err != nil {
		return fmt.Errorf("insert product %s: %w", p.ProductID, err)
	}
	return nil
}

// UpdateProduct overwrites every column of the row with p.ProductID.
func (r *ProductRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := r.db.NamedExecContext(ctx, `
	  UPDATE products SET
	    product_name = :product_name, brand_name = :brand_name, category = :category,
	    description = :description, price = :price, currency = :currency,
	    processor = :processor, memory = :memory, release_date = :release_date,
	    average_rating = :average_rating, rating_count = :rating_count
	  WHERE product_id = :product_id
	`, p)
	if err != nil {
		return fmt.Errorf("update product %s: %w", p.ProductID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepo) DeleteProduct(ctx context.Context, productID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE product_id = ?`, productID)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
