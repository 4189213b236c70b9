package banner

import (
	"context"
	"fmt"
	"strings"

	"coffeestore/internal/domain"
	bannerrepo "coffeestore/internal/repository/banner"
)

type Service struct {
	repo bannerrepo.Repository
}

func New(repo bannerrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Title          string `json:"title"`
	BannerCategory string `json:"bannerCategory"`
	BannerSubCat   string `json:"bannerSubCategory"`
	SectionType    string `json:"sectionType"`
	MediaType      string `json:"mediaType"`
	Resource       string `json:"resource"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Banner, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.BannerCategory) == "" || strings.TrimSpace(in.Resource) == "" {
		return nil, fmt.Errorf("%w: title, category and media are required", domain.ErrValidation)
	}
	if !domain.ValidSectionType(in.SectionType) {
		return nil, fmt.Errorf("%w: unknown section type %q", domain.ErrValidation, in.SectionType)
	}
	if !domain.ValidMediaType(in.MediaType) {
		return nil, fmt.Errorf("%w: unknown media type %q", domain.ErrValidation, in.MediaType)
	}
	return s.repo.Create(ctx, domain.Banner{
		Title:          strings.TrimSpace(in.Title),
		BannerCategory: in.BannerCategory,
		BannerSubCat:   in.BannerSubCat,
		SectionType:    in.SectionType,
		MediaType:      in.MediaType,
		Resource:       in.Resource,
		IsActive:       true,
	})
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Banner, error) {
	return s.repo.ListActive(ctx)
}
