package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at checkout.
const (
	PaymentCOD        = "COD"
	PaymentElectronic = "ELECTRONIC"
)

// Payment statuses. PENDING may later move to PAID via an external payment
// confirmation; no other transition exists.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

// Order is an immutable record of a completed checkout. Items, total and
// address never change after creation; only PaymentStatus may.
type Order struct {
	ID            string          `json:"id"`
	Owner         string          `json:"owner"`
	Items         []OrderItem     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	Address       string          `json:"address"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// OrderItem carries the price snapshot taken at checkout time. Later catalog
// price changes never touch it.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCOD || m == PaymentElectronic
}
