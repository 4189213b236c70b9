package catalog

import (
	"context"
	"fmt"
	"strings"

	"coffeestore/internal/domain"
	productrepo "coffeestore/internal/repository/product"
	"github.com/shopspring/decimal"
)

// Service owns product lifecycle and is the resolver the cart and checkout
// paths use to turn a product reference into existence plus current price.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Stock       *int            `json:"stock"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
}

// UpdateInput carries partial updates; nil fields keep the stored value.
type UpdateInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Stock       *int             `json:"stock"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Resolve looks up a product reference for hydration or a checkout price
// snapshot. A deleted product surfaces as domain.ErrNotFound.
func (s *Service) Resolve(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, productID)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if !domain.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}
	stock := 1
	if in.Stock != nil {
		stock = *in.Stock
	}
	return s.repo.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Stock:       stock,
		Category:    in.Category,
		SubCategory: in.SubCategory,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name required", domain.ErrValidation)
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		current.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
		}
		current.Price = *in.Price
	}
	if in.Image != nil {
		current.Image = *in.Image
	}
	if in.Stock != nil {
		current.Stock = *in.Stock
	}
	return s.repo.Update(ctx, *current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
