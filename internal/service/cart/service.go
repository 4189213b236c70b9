package cart

import (
	"context"
	"errors"
	"fmt"

	"coffeestore/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// resolveLimit bounds concurrent catalog lookups during hydration.
const resolveLimit = 8

type Service struct {
	repo    cartRepo
	catalog catalogResolver
}

type cartRepo interface {
	EnsureByOwner(ctx context.Context, owner string) (*domain.Cart, error)
	GetByOwner(ctx context.Context, owner string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, productID string, quantity int) error
	SetItemQuantity(ctx context.Context, cartID, productID string, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID string) error
}

type catalogResolver interface {
	Resolve(ctx context.Context, productID string) (*domain.Product, error)
}

func New(repo cartRepo, catalog catalogResolver) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// AddItem merges quantity into the owner's cart line for productID, creating
// the cart and the line as needed. addItem(q1) then addItem(q2) leaves the
// line at q1+q2.
func (s *Service) AddItem(ctx context.Context, owner, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := validProductRef(productID); err != nil {
		return nil, err
	}
	cart, err := s.repo.EnsureByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddItem(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, owner)
}

// UpdateQuantity sets the absolute quantity of an existing line. A product not
// in the cart is domain.ErrItemNotFound; use RemoveItem to delete a line.
func (s *Service) UpdateQuantity(ctx context.Context, owner, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := validProductRef(productID); err != nil {
		return nil, err
	}
	cart, err := s.repo.GetByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	if err := s.repo.SetItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, owner)
}

// RemoveItem deletes the line if present. Removing an absent line, or removing
// from an owner with no cart yet, succeeds without effect.
func (s *Service) RemoveItem(ctx context.Context, owner, productID string) (*domain.Cart, error) {
	if err := validProductRef(productID); err != nil {
		return nil, err
	}
	cart, err := s.repo.GetByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Cart{Owner: owner}, nil
		}
		return nil, err
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, owner)
}

// GetHydrated returns the display view of the cart: each line joined against
// the catalog. Lines whose product no longer resolves are left out of the view
// and the subtotal but stay in storage.
func (s *Service) GetHydrated(ctx context.Context, owner string) (*domain.HydratedCart, error) {
	cart, err := s.repo.GetByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.HydratedCart{Items: []domain.HydratedItem{}, Subtotal: decimal.Zero}, nil
		}
		return nil, err
	}

	resolved := make([]*domain.HydratedItem, len(cart.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveLimit)
	for idx := range cart.Items {
		idx := idx
		g.Go(func() error {
			line := cart.Items[idx]
			product, err := s.catalog.Resolve(gctx, line.ProductID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil
				}
				return err
			}
			resolved[idx] = &domain.HydratedItem{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     product.Image,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &domain.HydratedCart{Items: []domain.HydratedItem{}, Subtotal: decimal.Zero}
	for _, item := range resolved {
		if item == nil {
			continue
		}
		out.Items = append(out.Items, *item)
		out.Subtotal = out.Subtotal.Add(item.LineTotal)
	}
	return out, nil
}

func validProductRef(productID string) error {
	if _, err := uuid.Parse(productID); err != nil {
		return fmt.Errorf("%w: invalid product id %q", domain.ErrValidation, productID)
	}
	return nil
}
