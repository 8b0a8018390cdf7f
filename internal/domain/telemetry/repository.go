package telemetry

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines storage access for report entries and alerts.
type Repository interface {
	InsertEntries(ctx context.Context, entries []*ReportEntry) error
	ListEntries(ctx context.Context, partnerID string) ([]*ReportEntry, error)

	// ListReports returns entries grouped per gateway, ordered by entry
	// timestamp within each report.
	ListReports(ctx context.Context, partnerID string) ([]*SensorReport, error)

	CreateAlert(ctx context.Context, alert *Alert) error
	ListAlerts(ctx context.Context, partnerID string) ([]*Alert, error)
	ListAlertsByPartnerIDs(ctx context.Context, partnerIDs []string) ([]*Alert, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*Alert, error)

	// GetOpenAlert returns the newest alert for the parameter that has not
	// been closed by a recovery event yet.
	GetOpenAlert(ctx context.Context, partnerID string, param AlertParameter) (*Alert, error)
}
