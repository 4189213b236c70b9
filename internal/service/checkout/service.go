package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"coffeestore/internal/domain"
	orderrepo "coffeestore/internal/repository/order"
)

// Service converts carts into orders. Price snapshotting, cart clearing and
// checkout exclusivity live in the order repository transaction; this layer
// owns input validation and the payment-status policy.
type Service struct {
	orders orderRepo
	events eventPublisher
	logger *log.Logger
}

type orderRepo interface {
	PlaceFromCart(ctx context.Context, in orderrepo.PlaceInput) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type eventPublisher interface {
	OrderCreated(ctx context.Context, o *domain.Order) error
}

// New builds a Service. events may be nil when no broker is configured.
func New(orders orderRepo, events eventPublisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, events: events, logger: logger}
}

type PlaceOrderInput struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

// PlaceOrder snapshots the owner's cart into an immutable order and clears the
// cart. COD orders start PENDING; electronic orders are marked PAID at
// creation. That is a stand-in for a real payment capture, not a confirmation.
func (s *Service) PlaceOrder(ctx context.Context, owner string, in PlaceOrderInput) (*domain.Order, error) {
	if strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: address required", domain.ErrValidation)
	}
	if !domain.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: unsupported payment method %q", domain.ErrValidation, in.PaymentMethod)
	}

	status := domain.PaymentStatusPending
	if in.PaymentMethod == domain.PaymentElectronic {
		status = domain.PaymentStatusPaid
	}

	order, err := s.orders.PlaceFromCart(ctx, orderrepo.PlaceInput{
		Owner:         owner,
		Address:       strings.TrimSpace(in.Address),
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: status,
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		// Best effort: the order is already durable, a publish failure is
		// logged and not surfaced to the customer.
		if err := s.events.OrderCreated(ctx, order); err != nil {
			s.logger.Printf("checkout: publish order=%s error=%v", order.ID, err)
		}
	}
	return order, nil
}

// ListOrders returns every order in the ledger, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}
