package shipment

import (
	"testing"
	"time"

	"github.com/google/uuid"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
	domainInventory "shipment-dashboard/internal/domain/inventory"
	domainShipment "shipment-dashboard/internal/domain/shipment"
	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestStatusGrouping(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Enroute", "Active"},
		{"enroute", "Active"},
		{"PLANNED", "Active"},
		{"Completed", "Completed"},
		{"cancelled", "Cancelled"},
		{"Archived", ""},
	}

	for _, tt := range tests {
		if got := domainShipment.ShipmentStatus(tt.status).Group(); got != tt.want {
			t.Errorf("Group(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestFormatRowsEndpoints(t *testing.T) {
	originID := uuid.New()
	destID := uuid.New()
	laterOriginID := uuid.New()
	shipID := uuid.New()

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	custodians := []*domainCustodian.Custodian{
		{ID: originID, Name: "Acme Warehouse"},
		{ID: destID, Name: "Harbor Depot"},
		{ID: laterOriginID, Name: "Second Warehouse"},
	}
	custodies := []*domainCustodian.Custody{
		// Two first-custody events; the earliest-created one wins.
		{ShipmentID: shipID, CustodianID: laterOriginID, FirstCustody: true, CreatedAt: base.Add(time.Hour)},
		{ShipmentID: shipID, CustodianID: originID, FirstCustody: true, CreatedAt: base},
		{ShipmentID: shipID, CustodianID: destID, LastCustody: true, CreatedAt: base.Add(2 * time.Hour)},
	}
	shipments := []*domainShipment.Shipment{
		{ID: shipID, Name: "Reefer 12", Status: domainShipment.StatusEnroute, CreatedAt: base},
		{ID: uuid.New(), Name: "No chain", Status: domainShipment.StatusPlanned, CreatedAt: base.Add(-time.Hour)},
	}

	rows := FormatRows(shipments, custodies, custodians, nil, nil, nil)

	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Origin != "Acme Warehouse" {
		t.Errorf("origin = %q, want earliest first custody", rows[0].Origin)
	}
	if rows[0].Destination != "Harbor Depot" {
		t.Errorf("destination = %q", rows[0].Destination)
	}
	if rows[1].Origin != "N/A" || rows[1].Destination != "N/A" {
		t.Errorf("chainless row endpoints = %q / %q, want N/A", rows[1].Origin, rows[1].Destination)
	}
	if rows[0].Type != "Active" {
		t.Errorf("type = %q", rows[0].Type)
	}
}

func TestFormatRowsReferenceJoins(t *testing.T) {
	itemA, itemB := uuid.New(), uuid.New()
	shipments := []*domainShipment.Shipment{{
		ID:           uuid.New(),
		Status:       domainShipment.StatusPlanned,
		ItemIDs:      []uuid.UUID{itemA, uuid.New(), itemB},
		GatewayIMEIs: []string{"356938035643809", "990000862471854"},
	}}
	items := []*domainInventory.Item{
		{ID: itemA, Name: "Vaccine pallet"},
		{ID: itemB, Name: "Dry ice"},
	}
	gateways := []*domainInventory.Gateway{
		{IMEI: "356938035643809", Name: "Tracker 7"},
	}

	rows := FormatRows(shipments, nil, nil, items, gateways, nil)

	if rows[0].ItemNames != "Vaccine pallet, Dry ice" {
		t.Errorf("item names = %q", rows[0].ItemNames)
	}
	// Unnamed gateways fall back to the IMEI.
	if rows[0].Tracker != "Tracker 7, 990000862471854" {
		t.Errorf("tracker = %q", rows[0].Tracker)
	}
}

func TestActiveAlerts(t *testing.T) {
	openID := uuid.New()
	closedID := uuid.New()
	recoveryID := uuid.New()

	alerts := []*domainTelemetry.Alert{
		{ID: openID, AlertType: "max_excursion"},
		{ID: closedID, AlertType: "min_warning"},
		{ID: recoveryID, AlertType: "min_warning", RecoveredAlertID: &closedID},
	}

	active := ActiveAlerts(alerts)

	if len(active) != 1 {
		t.Fatalf("got %d active alerts, want 1", len(active))
	}
	if active[0].ID != openID {
		t.Errorf("active alert = %s, want the unrecovered one", active[0].ID)
	}
}

func TestFormatRowsAlertsOnlyWhenFlagged(t *testing.T) {
	alert := &domainTelemetry.Alert{ID: uuid.New(), PartnerShipmentID: "P-1", AlertType: "max_excursion"}

	shipments := []*domainShipment.Shipment{
		{ID: uuid.New(), PartnerShipmentID: "P-1", Status: domainShipment.StatusEnroute, HadAlert: true},
		{ID: uuid.New(), PartnerShipmentID: "P-1", Status: domainShipment.StatusEnroute, HadAlert: false, CreatedAt: time.Unix(1, 0)},
	}

	rows := FormatRows(shipments, nil, nil, nil, nil, []*domainTelemetry.Alert{alert})

	var flagged, unflagged *ShipmentRow
	for _, r := range rows {
		if r.HadAlert {
			flagged = r
		} else {
			unflagged = r
		}
	}
	if len(flagged.Alerts) != 1 {
		t.Errorf("flagged row has %d alerts, want 1", len(flagged.Alerts))
	}
	if flagged.Alerts[0].Severity != "high" {
		t.Errorf("severity = %q", flagged.Alerts[0].Severity)
	}
	if len(unflagged.Alerts) != 0 {
		t.Errorf("unflagged row has %d alerts, want 0", len(unflagged.Alerts))
	}
}

func TestFormatRowsSort(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	shipments := []*domainShipment.Shipment{
		{ID: uuid.New(), Name: "old departure", Status: domainShipment.StatusPlanned,
			EstimatedDeparture: timePtr(base.Add(24 * time.Hour)), CreatedAt: base},
		{ID: uuid.New(), Name: "no departure recent create", Status: domainShipment.StatusPlanned,
			CreatedAt: base.Add(48 * time.Hour)},
		{ID: uuid.New(), Name: "new departure", Status: domainShipment.StatusPlanned,
			EstimatedDeparture: timePtr(base.Add(72 * time.Hour)), CreatedAt: base},
	}

	rows := FormatRows(shipments, nil, nil, nil, nil, nil)

	wantOrder := []string{"new departure", "no departure recent create", "old departure"}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Errorf("rows[%d] = %q, want %q", i, rows[i].Name, want)
		}
	}
}
