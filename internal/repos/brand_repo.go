package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"catalogproxy/internal/domain"
)

type BrandRepo struct{ db *sqlx.DB }

func NewBrandRepo(db *sqlx.DB) *BrandRepo { return &BrandRepo{db: db} }

// brandRow mirrors the brands table; a nil address column means "absent".
type brandRow struct {
	Name        string  `db:"name"`
	YearFounded *string `db:"year_founded"`
	Street      *string `db:"street"`
	City        *string `db:"city"`
	State       *string `db:"state"`
	PostalCode  *string `db:"postal_code"`
	Country     *string `db:"country"`
}

func (r brandRow) brand() domain.Brand {
	b := domain.Brand{Name: r.Name, YearFounded: deref(r.YearFounded)}
	if r.Street != nil || r.City != nil || r.State != nil || r.PostalCode != nil || r.Country != nil {
		b.Address = &domain.Address{
			Street:     deref(r.Street),
			City:       deref(r.City),
			State:      deref(r.State),
			PostalCode: deref(r.PostalCode),
			Country:    deref(r.Country),
		}
	}
	return b
}

func (r *BrandRepo) AllBrands(ctx context.Context) ([]domain.Brand, error) {
	var rows []brandRow
	if err := r.db.SelectContext(ctx, &rows, `
  SELECT name, year_founded, street, city, state, postal_code, country
  FROM brands
  ORDER BY id
`); err != nil {
		return nil, fmt.Errorf("select brands: %w", err)
	}
	out := make([]domain.Brand, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.brand())
	}
	return out, nil
}

func (r *BrandRepo) GetBrand(ctx context.Context, name string) (domain.Brand, error) {
	var row brandRow
	err := r.db.GetContext(ctx, &row, `
  SELECT name, year_founded, street, city, state, postal_code, country
  FROM brands
  WHERE name = ?
`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Brand{}, ErrNotFound
	}
	if err != nil {
		return domain.Brand{}, err
	}
	return row.brand(), nil
}

// FindOrCreateBrand relies on the unique name index: the insert is a no-op
// when the brand already exists, so concurrent callers converge on one row.
func (r *BrandRepo) FindOrCreateBrand(ctx context.Context, b domain.Brand) (domain.Brand, bool, error) {
	var street, city, state, postal, country any
	if a := b.Address; a != nil {
		street, city, state, postal, country = a.Street, a.City, a.State, a.PostalCode, a.Country
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO brands(name, year_founded, street, city, state, postal_code, country)
		VALUES(?,?,?,?,?,?,?)
		ON CONFLICT(name) DO NOTHING
	`, b.Name, nullIfEmpty(b.YearFounded), street, city, state, postal, country)
	if err != nil {
		return domain.Brand{}, false, fmt.Errorf("upsert brand %q: %w", b.Name, err)
	}
	n, _ := res.RowsAffected()

	stored, err := r.GetBrand(ctx, b.Name)
	if err != nil {
		return domain.Brand{}, false, fmt.Errorf("load brand %q: %w", b.Name, err)
	}
	return stored, n == 1, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
