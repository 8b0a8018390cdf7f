package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// fakeWriter records written messages.
type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublishAlert(t *testing.T) {
	fw := &fakeWriter{}
	p := NewPublisherWithWriter(fw)

	event := &AlertEvent{
		Kind:              KindCreated,
		AlertID:           uuid.New(),
		PartnerShipmentID: "P-42",
		ParameterType:     "temperature",
		AlertType:         "max_excursion",
		OccurredAt:        time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
	}

	if err := p.PublishAlert(context.Background(), event); err != nil {
		t.Fatalf("PublishAlert() error = %v", err)
	}

	if len(fw.msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(fw.msgs))
	}
	if string(fw.msgs[0].Key) != "P-42" {
		t.Errorf("message key = %q, want partner shipment id", fw.msgs[0].Key)
	}

	var decoded AlertEvent
	if err := json.Unmarshal(fw.msgs[0].Value, &decoded); err != nil {
		t.Fatalf("payload not valid JSON: %v", err)
	}
	if decoded.Kind != KindCreated || decoded.AlertType != "max_excursion" {
		t.Errorf("decoded event = %+v", decoded)
	}
}

func TestPublishAlertWriteError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker down")}
	p := NewPublisherWithWriter(fw)

	err := p.PublishAlert(context.Background(), &AlertEvent{Kind: KindRecovered})
	if err == nil {
		t.Fatal("expected write error to propagate")
	}
}
