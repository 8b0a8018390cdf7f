package custodian

import (
	"testing"

	"github.com/google/uuid"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
)

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		name    string
		contact *domainCustodian.Contact
		want    string
	}{
		{
			name: "empty address2 keeps its comma",
			contact: &domainCustodian.Contact{
				Address1:   "1 Main St",
				Address2:   "",
				City:       "Springfield",
				State:      "IL",
				Country:    "US",
				PostalCode: "62704",
			},
			want: "1 Main St,  Springfield, IL, US, 62704",
		},
		{
			name: "full address",
			contact: &domainCustodian.Contact{
				Address1:   "1 Main St",
				Address2:   "Suite 4",
				City:       "Springfield",
				State:      "IL",
				Country:    "US",
				PostalCode: "62704",
			},
			want: "1 Main St, Suite 4 Springfield, IL, US, 62704",
		},
		{
			name:    "missing contact degrades to blank segments",
			contact: nil,
			want:    ",  , , , ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLocation(tt.contact); got != tt.want {
				t.Errorf("FormatLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinContacts(t *testing.T) {
	contactID := uuid.New()
	otherID := uuid.New()

	contacts := []*domainCustodian.Contact{
		{ID: otherID, City: "Chicago", Phone: "555-0100"},
		{ID: contactID, Address1: "1 Main St", City: "Springfield", State: "IL", Country: "US", PostalCode: "62704", Email: "ops@acme.test"},
	}
	custodians := []*domainCustodian.Custodian{
		{ID: uuid.New(), Name: "Zenith Freight", ContactID: &otherID},
		{ID: uuid.New(), Name: "Acme Co", ContactID: &contactID},
		{ID: uuid.New(), Name: "midland depot"},
	}

	rows := JoinContacts(custodians, contacts)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Sorted by name, case-insensitively.
	wantOrder := []string{"Acme Co", "midland depot", "Zenith Freight"}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Errorf("rows[%d].Name = %q, want %q", i, rows[i].Name, want)
		}
	}

	if rows[0].Location != "1 Main St,  Springfield, IL, US, 62704" {
		t.Errorf("joined location = %q", rows[0].Location)
	}
	if rows[0].Email != "ops@acme.test" {
		t.Errorf("joined email = %q", rows[0].Email)
	}

	// Custodian without a contact reference still gets a row.
	if rows[1].Location != ",  , , , " {
		t.Errorf("contactless location = %q", rows[1].Location)
	}
}
