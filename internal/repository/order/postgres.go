package order

import (
	"context"
	"errors"
	"fmt"
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

func (r *postgresRepo) PlaceFromCart(ctx context.Context, in PlaceInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// FOR UPDATE serializes checkouts per owner: the second caller blocks
	// here, then sees the emptied cart.
	var cartID string
	err = tx.QueryRow(ctx, `
SELECT id::text
FROM carts
WHERE owner_id = $1
FOR UPDATE
`, in.Owner).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmptyCart
		}
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT ci.product_id::text, ci.quantity, p.name, p.price::text
FROM cart_items ci
LEFT JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.added_at ASC, ci.product_id ASC
`, cartID)
	if err != nil {
		return nil, err
	}

	var items []domain.OrderItem
	total := decimal.Zero
	for rows.Next() {
		var (
			productID string
			quantity  int
			name      *string
			price     *string
		)
		if err := rows.Scan(&productID, &quantity, &name, &price); err != nil {
			rows.Close()
			return nil, err
		}
		if name == nil || price == nil {
			rows.Close()
			return nil, fmt.Errorf("product %s: %w", productID, domain.ErrUnresolvableItem)
		}
		unitPrice, err := decimal.NewFromString(*price)
		if err != nil {
			rows.Close()
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID: productID,
			Name:      *name,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	out := domain.Order{
		Owner:         in.Owner,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: in.PaymentStatus,
		Address:       in.Address,
	}
	err = tx.QueryRow(ctx, `
INSERT INTO orders (owner_id, total_amount, payment_method, payment_status, address)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`, in.Owner, total.String(), in.PaymentMethod, in.PaymentStatus, in.Address).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, name, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5)
`, out.ID, item.ProductID, item.Name, item.Quantity, item.UnitPrice.String()); err != nil {
			return nil, err
		}
	}

	// Same transaction as the order insert: the customer can never re-checkout
	// lines an order already captured.
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: placed id=%s owner=%s items=%d total=%s", out.ID, in.Owner, len(items), total.String())
	return &out, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT o.id::text, o.owner_id, o.total_amount::text, o.payment_method, o.payment_status, o.address, o.created_at,
       oi.product_id::text, oi.name, oi.quantity, oi.unit_price::text
FROM orders o
JOIN order_items oi ON oi.order_id = o.id
ORDER BY o.created_at DESC, o.id, oi.product_id
`)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var (
			o         domain.Order
			total     string
			item      domain.OrderItem
			unitPrice string
		)
		if err := rows.Scan(&o.ID, &o.Owner, &total, &o.PaymentMethod, &o.PaymentStatus, &o.Address, &o.CreatedAt,
			&item.ProductID, &item.Name, &item.Quantity, &unitPrice); err != nil {
			return nil, err
		}
		if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return nil, err
		}
		if n := len(result); n > 0 && result[n-1].ID == o.ID {
			result[n-1].Items = append(result[n-1].Items, item)
			continue
		}
		o.Items = []domain.OrderItem{item}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}
