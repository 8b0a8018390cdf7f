package custodian

import (
	"fmt"
	"sort"
	"strings"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
)

// FormatLocation synthesizes the single-line address the custodian table
// shows. Empty segments keep their commas, so a missing address2 yields a
// doubled space ("1 Main St,  Springfield, IL, US, 62704"). The dashboard
// has always rendered it that way and exports compare against it.
func FormatLocation(c *domainCustodian.Contact) string {
	if c == nil {
		c = &domainCustodian.Contact{}
	}
	return fmt.Sprintf("%s, %s %s, %s, %s, %s",
		c.Address1, c.Address2, c.City, c.State, c.Country, c.PostalCode)
}

// JoinContacts produces one display row per custodian with the contact
// record resolved and the location string synthesized. The contact lookup
// is multi-valued with first-match; a custodian whose contact is missing
// degrades to blank address segments instead of erroring. Output is sorted
// alphabetically by custodian name.
func JoinContacts(custodians []*domainCustodian.Custodian, contacts []*domainCustodian.Contact) []*CustodianRow {
	rows := make([]*CustodianRow, 0, len(custodians))
	for _, cu := range custodians {
		var contact *domainCustodian.Contact
		if cu.ContactID != nil {
			for _, ct := range contacts {
				if ct.ID == *cu.ContactID {
					contact = ct
					break
				}
			}
		}
		rows = append(rows, toCustodianRow(cu, contact))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})

	return rows
}
