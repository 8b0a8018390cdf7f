package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"shipment-dashboard/internal/logger"
)

// Alert event kinds.
const (
	KindCreated   = "alert.created"
	KindRecovered = "alert.recovered"
)

// AlertEvent is the payload published when the alert engine opens or
// closes an alert. Partitioned by partner shipment ID so consumers see
// one shipment's events in order.
type AlertEvent struct {
	Kind              string    `json:"kind"`
	AlertID           uuid.UUID `json:"alert_id"`
	PartnerShipmentID string    `json:"partner_shipment_id"`
	ParameterType     string    `json:"parameter_type"`
	AlertType         string    `json:"alert_type"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// Writer is the subset of kafka.Writer the publisher needs. Tests
// substitute a recording fake.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher sends alert events to the configured topic.
type Publisher struct {
	writer Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// NewPublisherWithWriter injects a writer, used by tests.
func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w}
}

// PublishAlert sends one alert event. Delivery is best effort from the
// caller's perspective; ingestion logs and continues on failure.
func (p *Publisher) PublishAlert(ctx context.Context, event *AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.PartnerShipmentID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	logger.Debug("Alert event published",
		zap.String("kind", event.Kind),
		zap.String("partner_shipment_id", event.PartnerShipmentID),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
