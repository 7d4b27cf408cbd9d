package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLStore is the SQLite-backed Store.
type SQLStore struct {
	*ProductRepo
	*BrandRepo
	db *sqlx.DB
}

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLStore opens dsn and wraps it as a Store.
func OpenSQLStore(dsn string) (*SQLStore, error) {
	db, err := OpenDB(dsn)
	if err != nil {
		return nil, err
	}
	return NewSQLStore(db), nil
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{ProductRepo: NewProductRepo(db), BrandRepo: NewBrandRepo(db), db: db}
}

func (s *SQLStore) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM brands`); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) Close() error { return s.db.Close() }

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Brands (name is the join key)
CREATE TABLE IF NOT EXISTS brands(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  year_founded TEXT,
  street TEXT,
  city TEXT,
  state TEXT,
  postal_code TEXT,
  country TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_brands_name ON brands(name);

-- Products (seq keeps insertion order)
CREATE TABLE IF NOT EXISTS products(
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL DEFAULT '',
  brand_name TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  price REAL NOT NULL DEFAULT 0,
  currency TEXT NOT NULL DEFAULT '',
  processor TEXT NOT NULL DEFAULT '',
  memory TEXT NOT NULL DEFAULT '',
  release_date TEXT NOT NULL DEFAULT '',
  average_rating REAL NOT NULL DEFAULT 0,
  rating_count INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_products_product_id ON products(product_id);
CREATE INDEX IF NOT EXISTS idx_products_brand   ON products(brand_name);
CREATE INDEX IF NOT EXISTS idx_products_release ON products(release_date);
`
	_, err := db.Exec(schema)
	return err
}
