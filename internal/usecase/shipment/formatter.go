package shipment

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
	domainInventory "shipment-dashboard/internal/domain/inventory"
	domainShipment "shipment-dashboard/internal/domain/shipment"
	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
)

// FormatRows joins shipments with their custody chains, reference records
// and alerts into the denormalized rows the shipment table renders. Rows
// come back sorted descending by estimated departure, falling back to the
// create date when no departure is set.
func FormatRows(
	shipments []*domainShipment.Shipment,
	custodies []*domainCustodian.Custody,
	custodians []*domainCustodian.Custodian,
	items []*domainInventory.Item,
	gateways []*domainInventory.Gateway,
	alerts []*domainTelemetry.Alert,
) []*ShipmentRow {
	custodianNames := make(map[uuid.UUID]string, len(custodians))
	for _, c := range custodians {
		custodianNames[c.ID] = c.Name
	}

	custodiesByShipment := make(map[uuid.UUID][]*domainCustodian.Custody)
	for _, c := range custodies {
		custodiesByShipment[c.ShipmentID] = append(custodiesByShipment[c.ShipmentID], c)
	}

	itemNames := make(map[uuid.UUID]string, len(items))
	for _, it := range items {
		itemNames[it.ID] = it.Name
	}

	gatewayNames := make(map[string]string, len(gateways))
	for _, g := range gateways {
		gatewayNames[g.IMEI] = g.Name
	}

	alertsByPartner := make(map[string][]*domainTelemetry.Alert)
	for _, a := range alerts {
		alertsByPartner[a.PartnerShipmentID] = append(alertsByPartner[a.PartnerShipmentID], a)
	}

	rows := make([]*ShipmentRow, len(shipments))
	for i, sh := range shipments {
		chain := custodiesByShipment[sh.ID]
		row := &ShipmentRow{
			ID:                 sh.ID,
			Name:               sh.Name,
			Status:             string(sh.Status),
			Type:               sh.Status.Group(),
			PartnerShipmentID:  sh.PartnerShipmentID,
			Origin:             resolveEndpoint(chain, custodianNames, func(c *domainCustodian.Custody) bool { return c.FirstCustody }),
			Destination:        resolveEndpoint(chain, custodianNames, func(c *domainCustodian.Custody) bool { return c.LastCustody }),
			EstimatedDeparture: sh.EstimatedDeparture,
			EstimatedArrival:   sh.EstimatedArrival,
			ActualDeparture:    sh.ActualDeparture,
			ActualArrival:      sh.ActualArrival,
			ItemNames:          joinItemNames(sh.ItemIDs, itemNames),
			Tracker:            joinTrackerNames(sh.GatewayIMEIs, gatewayNames),
			HadAlert:           sh.HadAlert,
			Alerts:             []ActiveAlert{},
			CreatedAt:          sh.CreatedAt,
		}

		if sh.HadAlert {
			for _, a := range ActiveAlerts(alertsByPartner[sh.PartnerShipmentID]) {
				row.Alerts = append(row.Alerts, toActiveAlert(a))
			}
		}

		rows[i] = row
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return sortKey(rows[i]).After(sortKey(rows[j]))
	})

	return rows
}

// sortKey is the estimated departure when present, the create date
// otherwise.
func sortKey(r *ShipmentRow) time.Time {
	if r.EstimatedDeparture != nil {
		return *r.EstimatedDeparture
	}
	return r.CreatedAt
}

// resolveEndpoint picks the earliest-created custody event matching the
// flag and returns its custodian's name, or "N/A" when the chain has no
// matching event.
func resolveEndpoint(chain []*domainCustodian.Custody, names map[uuid.UUID]string, match func(*domainCustodian.Custody) bool) string {
	var best *domainCustodian.Custody
	for _, c := range chain {
		if !match(c) {
			continue
		}
		if best == nil || c.CreatedAt.Before(best.CreatedAt) {
			best = c
		}
	}
	if best == nil {
		return "N/A"
	}
	if name, ok := names[best.CustodianID]; ok {
		return name
	}
	return "N/A"
}

// ActiveAlerts filters an alert list down to the ones still open: an
// alert is active when no other alert names it as recovered and it is not
// itself a recovery event.
func ActiveAlerts(alerts []*domainTelemetry.Alert) []*domainTelemetry.Alert {
	recovered := make(map[uuid.UUID]struct{})
	for _, a := range alerts {
		if a.RecoveredAlertID != nil {
			recovered[*a.RecoveredAlertID] = struct{}{}
		}
	}

	active := make([]*domainTelemetry.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.IsRecovery() {
			continue
		}
		if _, ok := recovered[a.ID]; ok {
			continue
		}
		active = append(active, a)
	}
	return active
}

func joinItemNames(ids []uuid.UUID, names map[uuid.UUID]string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

func joinTrackerNames(imeis []string, names map[string]string) string {
	parts := make([]string, 0, len(imeis))
	for _, imei := range imeis {
		if name, ok := names[imei]; ok && name != "" {
			parts = append(parts, name)
		} else {
			parts = append(parts, imei)
		}
	}
	return strings.Join(parts, ", ")
}
