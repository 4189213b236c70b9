package product

import (
	"context"
	"errors"
	"io"
	"log"

	"coffeestore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, name, description, price::text, image, stock, category, sub_category, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+productColumns+`
FROM products
ORDER BY created_at DESC
`)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+productColumns+`
FROM products
WHERE id = $1
`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO products (name, description, price, image, stock, category, sub_category)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+productColumns+`
`, p.Name, p.Description, p.Price.String(), p.Image, p.Stock, p.Category, p.SubCategory)
	created, err := scanProduct(row)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", created.ID, created.Name)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE products
SET name = $2, description = $3, price = $4, image = $5, stock = $6, category = $7, sub_category = $8
WHERE id = $1
RETURNING `+productColumns+`
`, p.ID, p.Name, p.Description, p.Price.String(), p.Image, p.Stock, p.Category, p.SubCategory)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var price string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Image, &p.Stock, &p.Category, &p.SubCategory, &p.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = parsed
	return &p, nil
}
