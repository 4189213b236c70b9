package cart

import (
	"context"
	"errors"

	"coffeestore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const cartColumns = `id::text, owner_id, created_at, updated_at`

func (r *postgresRepo) EnsureByOwner(ctx context.Context, owner string) (*domain.Cart, error) {
	// ON CONFLICT DO NOTHING keeps the one-cart-per-owner invariant under
	// concurrent first adds; the follow-up select reads whichever row won.
	if _, err := r.pool.Exec(ctx, `
INSERT INTO carts (owner_id)
VALUES ($1)
ON CONFLICT (owner_id) DO NOTHING
`, owner); err != nil {
		return nil, err
	}
	return r.GetByOwner(ctx, owner)
}

func (r *postgresRepo) GetByOwner(ctx context.Context, owner string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, `
SELECT `+cartColumns+`
FROM carts
WHERE owner_id = $1
`, owner).Scan(&cart.ID, &cart.Owner, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT product_id::text, quantity, added_at
FROM cart_items
WHERE cart_id = $1
ORDER BY added_at ASC, product_id ASC
`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) AddItem(ctx context.Context, cartID, productID string, quantity int) error {
	// Merge semantics in one statement: two concurrent adds both land, the
	// line ends at the sum of both quantities.
	if _, err := r.pool.Exec(ctx, `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
`, cartID, productID, quantity); err != nil {
		return err
	}
	return r.touch(ctx, cartID)
}

func (r *postgresRepo) SetItemQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_items
SET quantity = $3
WHERE cart_id = $1 AND product_id = $2
`, cartID, productID, quantity)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return r.touch(ctx, cartID)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, cartID, productID string) error {
	if _, err := r.pool.Exec(ctx, `
DELETE FROM cart_items
WHERE cart_id = $1 AND product_id = $2
`, cartID, productID); err != nil {
		return err
	}
	return r.touch(ctx, cartID)
}

func (r *postgresRepo) touch(ctx context.Context, cartID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE carts SET updated_at = now() WHERE id = $1`, cartID)
	return err
}
