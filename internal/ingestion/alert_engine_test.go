package ingestion

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"shipment-dashboard/internal/domain/shipment"
	"shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/events"
)

// fakeShipmentRepo serves one active shipment per gateway IMEI.
type fakeShipmentRepo struct {
	active   map[string]*shipment.Shipment
	hadAlert map[uuid.UUID]bool
}

func newFakeShipmentRepo() *fakeShipmentRepo {
	return &fakeShipmentRepo{
		active:   make(map[string]*shipment.Shipment),
		hadAlert: make(map[uuid.UUID]bool),
	}
}

func (f *fakeShipmentRepo) Create(_ context.Context, s *shipment.Shipment) error { return nil }
func (f *fakeShipmentRepo) GetByID(_ context.Context, _ uuid.UUID) (*shipment.Shipment, error) {
	return nil, shipment.ErrShipmentNotFound
}
func (f *fakeShipmentRepo) GetByPartnerID(_ context.Context, _ string) (*shipment.Shipment, error) {
	return nil, shipment.ErrShipmentNotFound
}
func (f *fakeShipmentRepo) Update(_ context.Context, _ *shipment.Shipment) error { return nil }
func (f *fakeShipmentRepo) Delete(_ context.Context, _ uuid.UUID) error          { return nil }
func (f *fakeShipmentRepo) List(_ context.Context, _ *shipment.Filter) ([]*shipment.Shipment, int64, error) {
	return nil, 0, nil
}

func (f *fakeShipmentRepo) GetActiveByGatewayIMEI(_ context.Context, imei string) (*shipment.Shipment, error) {
	sh, ok := f.active[imei]
	if !ok {
		return nil, shipment.ErrShipmentNotFound
	}
	return sh, nil
}

func (f *fakeShipmentRepo) SetHadAlert(_ context.Context, id uuid.UUID, hadAlert bool) error {
	f.hadAlert[id] = hadAlert
	return nil
}

// fakeTelemetryRepo keeps alerts in memory with real open-alert
// semantics.
type fakeTelemetryRepo struct {
	entries []*telemetry.ReportEntry
	alerts  []*telemetry.Alert
}

func (f *fakeTelemetryRepo) InsertEntries(_ context.Context, entries []*telemetry.ReportEntry) error {
	if len(entries) == 0 {
		return telemetry.ErrEmptyBatch
	}
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeTelemetryRepo) ListEntries(_ context.Context, _ string) ([]*telemetry.ReportEntry, error) {
	return f.entries, nil
}

func (f *fakeTelemetryRepo) ListReports(_ context.Context, _ string) ([]*telemetry.SensorReport, error) {
	return nil, nil
}

func (f *fakeTelemetryRepo) CreateAlert(_ context.Context, alert *telemetry.Alert) error {
	alert.ID = uuid.New()
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakeTelemetryRepo) ListAlerts(_ context.Context, _ string) ([]*telemetry.Alert, error) {
	return f.alerts, nil
}

func (f *fakeTelemetryRepo) ListAlertsByPartnerIDs(_ context.Context, _ []string) ([]*telemetry.Alert, error) {
	return f.alerts, nil
}

func (f *fakeTelemetryRepo) GetAlert(_ context.Context, id uuid.UUID) (*telemetry.Alert, error) {
	for _, a := range f.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, telemetry.ErrAlertNotFound
}

func (f *fakeTelemetryRepo) GetOpenAlert(_ context.Context, partnerID string, param telemetry.AlertParameter) (*telemetry.Alert, error) {
	recovered := make(map[uuid.UUID]struct{})
	for _, a := range f.alerts {
		if a.RecoveredAlertID != nil {
			recovered[*a.RecoveredAlertID] = struct{}{}
		}
	}
	for i := len(f.alerts) - 1; i >= 0; i-- {
		a := f.alerts[i]
		if a.PartnerShipmentID != partnerID || a.ParameterType != param || a.IsRecovery() {
			continue
		}
		if _, ok := recovered[a.ID]; ok {
			continue
		}
		return a, nil
	}
	return nil, telemetry.ErrNoOpenAlert
}

type recordingPublisher struct {
	events []*events.AlertEvent
}

func (r *recordingPublisher) PublishAlert(_ context.Context, event *events.AlertEvent) error {
	r.events = append(r.events, event)
	return nil
}

func testShipment(imei string) *shipment.Shipment {
	min := 2.0
	max := 8.0
	maxX := 12.0
	return &shipment.Shipment{
		ID:                uuid.New(),
		PartnerShipmentID: "P-7",
		Status:            shipment.StatusEnroute,
		GatewayIMEIs:      []string{imei},
		Temperature: shipment.MetricBounds{
			MinWarning:   &min,
			MaxWarning:   &max,
			MaxExcursion: &maxX,
		},
	}
}

func entryWithTemp(imei string, tempC float64, at time.Time) *telemetry.ReportEntry {
	return &telemetry.ReportEntry{
		GatewayIMEI:  imei,
		Timestamp:    at,
		TemperatureC: &tempC,
	}
}

func TestAlertEngineRaisesAndRecovers(t *testing.T) {
	const imei = "356938035643809"
	shipRepo := newFakeShipmentRepo()
	sh := testShipment(imei)
	shipRepo.active[imei] = sh
	teleRepo := &fakeTelemetryRepo{}
	pub := &recordingPublisher{}
	engine := NewAlertEngine(shipRepo, teleRepo, pub)

	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// In range: nothing happens.
	created, err := engine.Evaluate(ctx, entryWithTemp(imei, 5.0, base))
	if err != nil || len(created) != 0 {
		t.Fatalf("in-range evaluate = %v alerts, err %v", len(created), err)
	}

	// Above warning: one alert.
	created, err = engine.Evaluate(ctx, entryWithTemp(imei, 9.5, base.Add(time.Minute)))
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 1 {
		t.Fatalf("got %d alerts, want 1", len(created))
	}
	if created[0].AlertType != "max_warning" {
		t.Errorf("alert type = %q", created[0].AlertType)
	}
	if !shipRepo.hadAlert[sh.ID] {
		t.Error("shipment had_alert not set")
	}

	// Still above warning: not re-raised.
	created, _ = engine.Evaluate(ctx, entryWithTemp(imei, 10.0, base.Add(2*time.Minute)))
	if len(created) != 0 {
		t.Errorf("duplicate alert raised: %d", len(created))
	}

	// Back in range: recovery pointing at the open alert.
	created, err = engine.Evaluate(ctx, entryWithTemp(imei, 6.0, base.Add(3*time.Minute)))
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 1 {
		t.Fatalf("got %d alerts on recovery, want 1", len(created))
	}
	recovery := created[0]
	if !recovery.IsRecovery() {
		t.Fatal("recovery alert missing recovered_alert_id")
	}
	if *recovery.RecoveredAlertID != teleRepo.alerts[0].ID {
		t.Error("recovery does not reference the open alert")
	}
	if recovery.AlertType != "max_warning" {
		t.Errorf("recovery reuses alert type, got %q", recovery.AlertType)
	}

	// Published created + recovered events.
	if len(pub.events) != 2 {
		t.Fatalf("published %d events, want 2", len(pub.events))
	}
	if pub.events[0].Kind != events.KindCreated || pub.events[1].Kind != events.KindRecovered {
		t.Errorf("event kinds = %q, %q", pub.events[0].Kind, pub.events[1].Kind)
	}
}

func TestAlertEngineExcursionPrecedence(t *testing.T) {
	const imei = "356938035643809"
	shipRepo := newFakeShipmentRepo()
	shipRepo.active[imei] = testShipment(imei)
	teleRepo := &fakeTelemetryRepo{}
	engine := NewAlertEngine(shipRepo, teleRepo, nil)

	created, err := engine.Evaluate(context.Background(),
		entryWithTemp(imei, 15.0, time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 1 || created[0].AlertType != "max_excursion" {
		t.Fatalf("excursion not preferred over warning: %+v", created)
	}
}

func TestAlertEngineNoActiveShipment(t *testing.T) {
	engine := NewAlertEngine(newFakeShipmentRepo(), &fakeTelemetryRepo{}, nil)

	created, err := engine.Evaluate(context.Background(),
		entryWithTemp("990000862471854", 50.0, time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 0 {
		t.Errorf("alerts raised without active shipment: %d", len(created))
	}
}

func TestAlertEngineResolvesPartnerID(t *testing.T) {
	const imei = "356938035643809"
	shipRepo := newFakeShipmentRepo()
	shipRepo.active[imei] = testShipment(imei)
	engine := NewAlertEngine(shipRepo, &fakeTelemetryRepo{}, nil)

	entry := entryWithTemp(imei, 5.0, time.Now())
	if _, err := engine.Evaluate(context.Background(), entry); err != nil {
		t.Fatal(err)
	}
	if entry.PartnerShipmentID != "P-7" {
		t.Errorf("partner id = %q, want resolved from active shipment", entry.PartnerShipmentID)
	}
}
