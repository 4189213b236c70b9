package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product categories accepted by the catalog.
const (
	CategoryCoffee      = "coffee"
	CategoryEquipment   = "equipment"
	CategoryAccessories = "accessories"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ValidCategory reports whether c is one of the known main categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCoffee, CategoryEquipment, CategoryAccessories:
		return true
	}
	return false
}
