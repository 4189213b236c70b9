package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"coffeestore/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderCreated is the payload published after a successful checkout.
type OrderCreated struct {
	EventID       string    `json:"eventId"`
	OrderID       string    `json:"orderId"`
	Owner         string    `json:"owner"`
	TotalAmount   string    `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Publisher writes order events to a kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns nil when brokersCSV is empty, which callers treat as
// events disabled.
func NewPublisher(brokersCSV, topic string) *Publisher {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// OrderCreated publishes one event keyed by owner so a consumer sees a single
// owner's orders in publish order.
func (p *Publisher) OrderCreated(ctx context.Context, o *domain.Order) error {
	payload := OrderCreated{
		EventID:       uuid.NewString(),
		OrderID:       o.ID,
		Owner:         o.Owner,
		TotalAmount:   o.TotalAmount.String(),
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.Owner),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
