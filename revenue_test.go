package tcg

import "testing"

func TestAllocateSaleCosts_ProportionalToGross(t *testing.T) {
	// Grosses 30 and 70 with shipping 10: allocated 3.00 and 7.00 exactly.
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(10), GBP(5), GBP(2),
		SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(30)},
		SaleLineItem{Product: eliteBox, Quantity: 1, UnitPrice: GBP(70)},
	)

	costs := AllocateSaleCosts(sale)

	if want := GBP(3); !costs[0].Shipping.Equal(want) {
		t.Errorf("costs[0].Shipping = %s, want %s", costs[0].Shipping, want)
	}
	if want := GBP(7); !costs[1].Shipping.Equal(want) {
		t.Errorf("costs[1].Shipping = %s, want %s", costs[1].Shipping, want)
	}
	if want := GBP(1.50); !costs[0].Fees.Equal(want) {
		t.Errorf("costs[0].Fees = %s, want %s", costs[0].Fees, want)
	}
	if want := GBP(3.50); !costs[1].Fees.Equal(want) {
		t.Errorf("costs[1].Fees = %s, want %s", costs[1].Fees, want)
	}
	if want := GBP(0.60); !costs[0].Tax.Equal(want) {
		t.Errorf("costs[0].Tax = %s, want %s", costs[0].Tax, want)
	}
	if want := GBP(1.40); !costs[1].Tax.Equal(want) {
		t.Errorf("costs[1].Tax = %s, want %s", costs[1].Tax, want)
	}
}

func TestAllocateSaleCosts_SumsExactly(t *testing.T) {
	// Three items with awkward grosses: each cost still sums back exactly.
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(10), GBP(3.33), GBP(1.99),
		SaleLineItem{Product: boosterBox, Quantity: 3, UnitPrice: GBP(19.99)},
		SaleLineItem{Product: eliteBox, Quantity: 1, UnitPrice: GBP(44.45)},
		SaleLineItem{Product: oneBox, Quantity: 2, UnitPrice: GBP(7.77)},
	)

	costs := AllocateSaleCosts(sale)

	shipping, fees, tax := NO(0), NO(0), NO(0)
	for _, c := range costs {
		shipping = shipping.Add(c.Shipping)
		fees = fees.Add(c.Fees)
		tax = tax.Add(c.Tax)
	}
	if !shipping.Equal(sale.ShippingCost) {
		t.Errorf("sum of allocated shipping = %s, want %s", shipping, sale.ShippingCost)
	}
	if !fees.Equal(sale.PlatformFees) {
		t.Errorf("sum of allocated fees = %s, want %s", fees, sale.PlatformFees)
	}
	if !tax.Equal(sale.Tax) {
		t.Errorf("sum of allocated tax = %s, want %s", tax, sale.Tax)
	}
}

func TestAllocateSaleCosts_ZeroGross(t *testing.T) {
	// A giveaway: gross is zero, so nothing can be apportioned.
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "local", GBP(4), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(0)},
	)

	costs := AllocateSaleCosts(sale)
	if !costs[0].Shipping.IsZero() || !costs[0].Fees.IsZero() || !costs[0].Tax.IsZero() {
		t.Errorf("allocated costs on a zero-gross sale = %+v, want all zero", costs[0])
	}
}

func TestItemNetRevenues(t *testing.T) {
	// Gross 20, deductions 2 + 1 + 0.50: net 16.50 on a single-item sale.
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(2), GBP(1), GBP(0.50),
		SaleLineItem{Product: boosterBox, Quantity: 4, UnitPrice: GBP(5)},
	)

	nets := itemNetRevenues(sale)
	if want := GBP(16.50); !nets[0].Equal(want) {
		t.Errorf("itemNetRevenues()[0] = %s, want %s", nets[0], want)
	}
	if !nets[0].Equal(sale.NetRevenue()) {
		t.Errorf("item net %s disagrees with sale net %s", nets[0], sale.NetRevenue())
	}
}
