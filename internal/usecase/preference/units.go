package preference

import (
	"strings"

	domainPreference "shipment-dashboard/internal/domain/preference"
)

// ResolveUnit returns the display value configured for a category, or the
// caller's fallback when no record matches. Category matching is
// case-insensitive and a miss is never an error.
func ResolveUnit(units []*domainPreference.UnitOfMeasure, category, fallback string) string {
	for _, u := range units {
		if u == nil {
			continue
		}
		if strings.EqualFold(u.UnitOfMeasureFor, category) {
			return u.UnitOfMeasure
		}
	}
	return fallback
}
