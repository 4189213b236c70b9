package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Description string
	Price       string
	Image       string
	Stock       int
	Category    string
	SubCategory string
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// insert-if-absent on product name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "House Blend Beans 250g",
			Description: "Medium roast, chocolate and hazelnut notes",
			Price:       "12.50",
			Image:       "/images/house-blend.jpg",
			Stock:       40,
			Category:    "coffee",
			SubCategory: "beans",
		},
		{
			Name:        "Ethiopia Yirgacheffe 250g",
			Description: "Light roast single origin, floral and citrus",
			Price:       "16.00",
			Image:       "/images/yirgacheffe.jpg",
			Stock:       25,
			Category:    "coffee",
			SubCategory: "beans",
		},
		{
			Name:        "V60 Dripper",
			Description: "Ceramic pour-over cone, size 02",
			Price:       "24.90",
			Image:       "/images/v60.jpg",
			Stock:       15,
			Category:    "equipment",
			SubCategory: "brewers",
		},
		{
			Name:        "Double-Wall Glass Mug",
			Description: "Borosilicate glass, 350ml",
			Price:       "14.00",
			Image:       "/images/glass-mug.jpg",
			Stock:       30,
			Category:    "accessories",
			SubCategory: "mugs",
		},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}

	if err := insertBanner(ctx, pool); err != nil {
		return fmt.Errorf("seed banner: %w", err)
	}
	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price, image, stock, category, sub_category)
SELECT $1, $2, $3::numeric, $4, $5, $6, $7
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Price, p.Image, p.Stock, p.Category, p.SubCategory)
	return err
}

func insertBanner(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO banners (title, banner_category, banner_sub_category, section_type, media_type, resource, is_active)
SELECT 'Fresh roasts, every week', 'coffee', 'beans', 'hero', 'image', '/images/hero-roast.jpg', true
WHERE NOT EXISTS (SELECT 1 FROM banners WHERE title = 'Fresh roasts, every week')
`
	_, err := pool.Exec(ctx, q)
	return err
}
