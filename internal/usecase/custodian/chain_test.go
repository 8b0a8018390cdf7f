package custodian

import (
	"testing"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
)

func TestAssignLoadOrder(t *testing.T) {
	t.Run("first and last bracket the chain", func(t *testing.T) {
		chain := []*domainCustodian.Custody{
			{FirstCustody: true},
			{},
			{},
			{LastCustody: true},
		}

		AssignLoadOrder(chain)

		want := []int{1, 2, 3, 4}
		for i, c := range chain {
			if c.LoadOrder != want[i] {
				t.Errorf("chain[%d].LoadOrder = %d, want %d", i, c.LoadOrder, want[i])
			}
		}
	})

	t.Run("encounter order not timestamp order", func(t *testing.T) {
		chain := []*domainCustodian.Custody{
			{LastCustody: true},
			{},
			{FirstCustody: true},
			{},
		}

		AssignLoadOrder(chain)

		want := []int{4, 2, 1, 3}
		for i, c := range chain {
			if c.LoadOrder != want[i] {
				t.Errorf("chain[%d].LoadOrder = %d, want %d", i, c.LoadOrder, want[i])
			}
		}
	})

	t.Run("pre-assigned order untouched", func(t *testing.T) {
		chain := []*domainCustodian.Custody{
			{FirstCustody: true, LoadOrder: 7},
			{},
			{LastCustody: true},
		}

		AssignLoadOrder(chain)

		if chain[0].LoadOrder != 7 {
			t.Errorf("pre-assigned LoadOrder overwritten: %d", chain[0].LoadOrder)
		}
		if chain[1].LoadOrder != 2 {
			t.Errorf("chain[1].LoadOrder = %d, want 2", chain[1].LoadOrder)
		}
		if chain[2].LoadOrder != 3 {
			t.Errorf("chain[2].LoadOrder = %d, want 3", chain[2].LoadOrder)
		}
	})

	t.Run("single event", func(t *testing.T) {
		chain := []*domainCustodian.Custody{{FirstCustody: true, LastCustody: true}}
		AssignLoadOrder(chain)
		if chain[0].LoadOrder != 1 {
			t.Errorf("LoadOrder = %d, want 1", chain[0].LoadOrder)
		}
	})
}

func TestResolveChainClassification(t *testing.T) {
	chain := []*domainCustodian.Custody{
		{FirstCustody: true},
		{FirstCustody: true, HasCurrentCustody: true},
		{},
		{LastCustody: true},
	}

	rows := ResolveChain(chain)

	want := []string{"First", "Current", "NA", "Last"}
	for i, w := range want {
		if rows[i].CustodyType != w {
			t.Errorf("rows[%d].CustodyType = %q, want %q", i, rows[i].CustodyType, w)
		}
	}
}
