package domain

import "time"

// Banner section and media types.
const (
	SectionHero    = "hero"
	SectionFeature = "feature"
	SectionGallery = "gallery"

	MediaImage = "image"
	MediaVideo = "video"
)

type Banner struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	BannerCategory string    `json:"bannerCategory"`
	BannerSubCat   string    `json:"bannerSubCategory,omitempty"`
	SectionType    string    `json:"sectionType"`
	MediaType      string    `json:"mediaType"`
	Resource       string    `json:"resource"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ValidSectionType(s string) bool {
	switch s {
	case SectionHero, SectionFeature, SectionGallery:
		return true
	}
	return false
}

func ValidMediaType(m string) bool {
	return m == MediaImage || m == MediaVideo
}
