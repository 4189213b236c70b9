package banner

import (
	"context"
	"io"
	"log"

	"coffeestore/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
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

func (r *postgresRepo) Create(ctx context.Context, b domain.Banner) (*domain.Banner, error) {
	const q = `
INSERT INTO banners (title, banner_category, banner_sub_category, section_type, media_type, resource, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text, created_at
`
	created := b
	err := r.pool.QueryRow(ctx, q, b.Title, b.BannerCategory, b.BannerSubCat, b.SectionType, b.MediaType, b.Resource, b.IsActive).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		r.logger.Printf("banner repo: create title=%q error=%v", b.Title, err)
		return nil, err
	}
	r.logger.Printf("banner repo: created id=%s title=%q", created.ID, created.Title)
	return &created, nil
}

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.Banner, error) {
	const q = `
SELECT id::text, title, banner_category, banner_sub_category, section_type, media_type, resource, is_active, created_at
FROM banners
WHERE is_active
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("banner repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Banner
	for rows.Next() {
		var b domain.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.BannerCategory, &b.BannerSubCat, &b.SectionType, &b.MediaType, &b.Resource, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("banner repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}
