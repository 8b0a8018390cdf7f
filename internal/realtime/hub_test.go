package realtime

import (
	"testing"
	"time"

	"shipment-dashboard/internal/domain/telemetry"
)

func liveEntry(partnerID string) *telemetry.ReportEntry {
	temp := 4.5
	return &telemetry.ReportEntry{
		PartnerShipmentID: partnerID,
		GatewayIMEI:       "356938035643809",
		Timestamp:         time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		TemperatureC:      &temp,
	}
}

func TestHubBroadcastRouting(t *testing.T) {
	hub := NewHub()
	subA := hub.subscribe("P-1")
	subB := hub.subscribe("P-2")
	defer hub.unsubscribe(subA)
	defer hub.unsubscribe(subB)

	hub.BroadcastEntry(liveEntry("P-1"))

	select {
	case msg := <-subA.send:
		if msg.PartnerShipmentID != "P-1" {
			t.Errorf("routed message for %q", msg.PartnerShipmentID)
		}
		if msg.TemperatureC == nil || *msg.TemperatureC != 4.5 {
			t.Errorf("temperature not carried: %+v", msg.TemperatureC)
		}
	default:
		t.Fatal("subscriber for P-1 received nothing")
	}

	select {
	case <-subB.send:
		t.Fatal("subscriber for P-2 received a P-1 entry")
	default:
	}
}

func TestHubSlowSubscriberDropped(t *testing.T) {
	hub := NewHub()
	sub := hub.subscribe("P-1")
	defer hub.unsubscribe(sub)

	// Fill the buffer and then some; the overflow must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(sub.send)+5; i++ {
			hub.BroadcastEntry(liveEntry("P-1"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a slow subscriber")
	}
	if len(sub.send) != cap(sub.send) {
		t.Errorf("buffered %d messages, want full buffer %d", len(sub.send), cap(sub.send))
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	sub := hub.subscribe("P-1")
	if got := hub.SubscriberCount("P-1"); got != 1 {
		t.Fatalf("subscriber count = %d, want 1", got)
	}

	hub.unsubscribe(sub)
	if got := hub.SubscriberCount("P-1"); got != 0 {
		t.Errorf("subscriber count after unsubscribe = %d", got)
	}

	// Idempotent; a second unsubscribe must not panic on the closed
	// channel.
	hub.unsubscribe(sub)

	// Broadcasting to a shipment with no subscribers is a no-op.
	hub.BroadcastEntry(liveEntry("P-1"))
}

func TestHubIgnoresUnattributedEntries(t *testing.T) {
	hub := NewHub()
	sub := hub.subscribe("")
	defer hub.unsubscribe(sub)

	hub.BroadcastEntry(liveEntry(""))
	if len(sub.send) != 0 {
		t.Error("entry without a shipment was broadcast")
	}
}
