package custodian

import (
	domainCustodian "shipment-dashboard/internal/domain/custodian"
)

// AssignLoadOrder fills in the chain position for each custody event:
// 1 for the event flagged first, the chain length for the one flagged
// last, and a running counter starting at 2 for everything else in
// encounter order. A non-zero LoadOrder is never overwritten. The input
// slice is mutated in place and returned for chaining.
func AssignLoadOrder(custodies []*domainCustodian.Custody) []*domainCustodian.Custody {
	next := 2
	for _, c := range custodies {
		if c.LoadOrder != 0 {
			continue
		}
		switch {
		case c.FirstCustody:
			c.LoadOrder = 1
		case c.LastCustody:
			c.LoadOrder = len(custodies)
		default:
			c.LoadOrder = next
			next++
		}
	}
	return custodies
}

// ResolveChain assigns load order and classifies each event for display.
func ResolveChain(custodies []*domainCustodian.Custody) []*CustodyRow {
	AssignLoadOrder(custodies)

	rows := make([]*CustodyRow, len(custodies))
	for i, c := range custodies {
		rows[i] = toCustodyRow(c)
	}
	return rows
}
