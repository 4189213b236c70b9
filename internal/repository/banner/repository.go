package banner

import (
	"context"

	"coffeestore/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, b domain.Banner) (*domain.Banner, error)
	ListActive(ctx context.Context) ([]domain.Banner, error)
}
