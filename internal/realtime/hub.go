package realtime

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/logger"
)

// EntryMessage is the payload pushed to live subscribers when a new
// report entry lands for their shipment.
type EntryMessage struct {
	PartnerShipmentID string    `json:"partner_shipment_id"`
	GatewayIMEI       string    `json:"gateway_imei"`
	Timestamp         time.Time `json:"timestamp"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	TemperatureC      *float64 `json:"temperature_c,omitempty"`
	TemperatureF      *float64 `json:"temperature_f,omitempty"`
	Humidity          *float64 `json:"humidity,omitempty"`
	Light             *float64 `json:"light,omitempty"`
	Shock             *float64 `json:"shock,omitempty"`
	Tilt              *float64 `json:"tilt,omitempty"`
	Battery           *float64 `json:"battery,omitempty"`
	Pressure          *float64 `json:"pressure,omitempty"`
	ProbeTemperatureC *float64 `json:"probe_temperature_c,omitempty"`
	ProbeTemperatureF *float64 `json:"probe_temperature_f,omitempty"`
}

// Hub fans freshly ingested entries out to websocket subscribers. Each
// subscriber watches a single shipment by partner shipment ID.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{}
}

type subscriber struct {
	partnerID string
	send      chan *EntryMessage
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*subscriber]struct{})}
}

func (h *Hub) subscribe(partnerID string) *subscriber {
	sub := &subscriber{
		partnerID: partnerID,
		send:      make(chan *EntryMessage, 16),
	}
	h.mu.Lock()
	if h.subs[partnerID] == nil {
		h.subs[partnerID] = make(map[*subscriber]struct{})
	}
	h.subs[partnerID][sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	if set, ok := h.subs[sub.partnerID]; ok {
		if _, ok := set[sub]; ok {
			delete(set, sub)
			close(sub.send)
			if len(set) == 0 {
				delete(h.subs, sub.partnerID)
			}
		}
	}
	h.mu.Unlock()
}

// SubscriberCount returns the number of live subscribers for a
// shipment.
func (h *Hub) SubscriberCount(partnerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[partnerID])
}

// BroadcastEntry delivers an entry to every subscriber watching its
// shipment. Slow subscribers whose buffers are full are skipped rather
// than blocking the ingestion worker.
func (h *Hub) BroadcastEntry(entry *telemetry.ReportEntry) {
	if entry == nil || entry.PartnerShipmentID == "" {
		return
	}

	h.mu.RLock()
	set := h.subs[entry.PartnerShipmentID]
	if len(set) == 0 {
		h.mu.RUnlock()
		return
	}
	msg := toEntryMessage(entry)
	dropped := 0
	for sub := range set {
		select {
		case sub.send <- msg:
		default:
			dropped++
		}
	}
	h.mu.RUnlock()

	if dropped > 0 {
		logger.Warn("Dropped live entry for slow subscribers",
			zap.String("partner_shipment_id", entry.PartnerShipmentID),
			zap.Int("dropped", dropped),
		)
	}
}

func toEntryMessage(entry *telemetry.ReportEntry) *EntryMessage {
	return &EntryMessage{
		PartnerShipmentID: entry.PartnerShipmentID,
		GatewayIMEI:       entry.GatewayIMEI,
		Timestamp:         entry.Timestamp,
		Latitude:          entry.Latitude,
		Longitude:         entry.Longitude,
		TemperatureC:      entry.TemperatureC,
		TemperatureF:      entry.TemperatureF,
		Humidity:          entry.Humidity,
		Light:             entry.Light,
		Shock:             entry.Shock,
		Tilt:              entry.Tilt,
		Battery:           entry.Battery,
		Pressure:          entry.Pressure,
		ProbeTemperatureC: entry.ProbeTemperatureC,
		ProbeTemperatureF: entry.ProbeTemperatureF,
	}
}
