package tcg

import "testing"

// purchaseFixture stocks 10 booster boxes at an effective 2.50 unit cost.
func purchaseFixture() Purchase {
	return NewPurchase(MustParse("2025-02-01"), "alice", "", "GameNerdz", GBP(5), StatusReceived,
		PurchaseLineItem{Product: boosterBox, Quantity: 10, UnitCost: GBP(2)},
	)
}

func TestSaleProfit(t *testing.T) {
	// Gross 20, net 16.50, COGS 4 x 2.50 = 10: profit 6.50.
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(2), GBP(1), GBP(0.50),
		SaleLineItem{Product: boosterBox, Quantity: 4, UnitPrice: GBP(5)},
	)
	ledger := newTestLedger(purchaseFixture(), sale)

	got := ledger.SaleProfit("alice", sale)
	if want := GBP(6.50); !got.Equal(want) {
		t.Errorf("SaleProfit() = %s, want %s", got, want)
	}
}

func TestSaleProfit_UnknownCostCountsAsZero(t *testing.T) {
	// The elite box was never purchased: its line contributes zero COGS
	// rather than failing the sale.
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 2, UnitPrice: GBP(5)},
		SaleLineItem{Product: eliteBox, Quantity: 1, UnitPrice: GBP(40)},
	)
	ledger := newTestLedger(purchaseFixture(), sale)

	got := ledger.SaleProfit("alice", sale)
	if want := GBP(45); !got.Equal(want) { // 50 gross - 2x2.50 COGS
		t.Errorf("SaleProfit() = %s, want %s", got, want)
	}
}

func TestTotalRealizedProfit_RangeInclusive(t *testing.T) {
	saleIn := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(5)},
	)
	saleEdge := NewSale(MustParse("2025-03-31"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(6)},
	)
	saleOut := NewSale(MustParse("2025-04-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(100)},
	)
	ledger := newTestLedger(purchaseFixture(), saleIn, saleEdge, saleOut)

	r := NewRange(MustParse("2025-03-01"), MustParse("2025-03-31"))
	got := ledger.TotalRealizedProfit("alice", r)
	// (5 - 2.50) + (6 - 2.50); the April sale is outside the range.
	if want := GBP(6); !got.Equal(want) {
		t.Errorf("TotalRealizedProfit() = %s, want %s", got, want)
	}
}

func TestTotalInvested(t *testing.T) {
	ledger := newTestLedger(
		purchaseFixture(), // 25.00 total
		NewPurchase(MustParse("2025-02-10"), "alice", "", "TCGPlayer", GBP(0), StatusPreorder,
			PurchaseLineItem{Product: eliteBox, Quantity: 1, UnitCost: GBP(40)},
		),
	)

	got := ledger.TotalInvested("alice", AllTime())
	if want := GBP(25); !got.Equal(want) {
		t.Errorf("TotalInvested() = %s, want %s (preorders excluded)", got, want)
	}
}

func TestBreakEvenRevenue(t *testing.T) {
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 4, UnitPrice: GBP(5)},
	)
	ledger := newTestLedger(purchaseFixture(), sale)

	got := ledger.BreakEvenRevenue("alice")
	// Invested 25, realized profit 20 - 10 = 10: 15 still to recover.
	if want := GBP(15); !got.Equal(want) {
		t.Errorf("BreakEvenRevenue() = %s, want %s", got, want)
	}
}

func TestAverageProfitPerSale(t *testing.T) {
	sale1 := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(5)}, // profit 2.50
	)
	sale2 := NewSale(MustParse("2025-03-02"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(10)}, // profit 7.50
	)
	ledger := newTestLedger(purchaseFixture(), sale1, sale2)

	got := ledger.AverageProfitPerSale("alice", AllTime())
	if want := GBP(5); !got.Equal(want) {
		t.Errorf("AverageProfitPerSale() = %s, want %s", got, want)
	}

	empty := newTestLedger()
	if got := empty.AverageProfitPerSale("alice", AllTime()); !got.IsZero() {
		t.Errorf("AverageProfitPerSale() on empty ledger = %s, want zero", got)
	}
}

func TestCostBreakdown(t *testing.T) {
	ledger := newTestLedger(
		purchaseFixture(),
		NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(2), GBP(1), GBP(0.50),
			SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(5)},
		),
		NewSale(MustParse("2025-03-05"), "alice", "", "Cardmarket", GBP(3), GBP(0.75), GBP(0),
			SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(5)},
		),
	)

	got := ledger.CostBreakdown("alice", AllTime())
	if want := GBP(5); !got.Shipping.Equal(want) {
		t.Errorf("Shipping = %s, want %s", got.Shipping, want)
	}
	if want := GBP(1.75); !got.PlatformFees.Equal(want) {
		t.Errorf("PlatformFees = %s, want %s", got.PlatformFees, want)
	}
	if want := GBP(0.50); !got.Tax.Equal(want) {
		t.Errorf("Tax = %s, want %s", got.Tax, want)
	}
	if want := GBP(7.25); !got.Total().Equal(want) {
		t.Errorf("Total() = %s, want %s", got.Total(), want)
	}
}

func TestAverageROI(t *testing.T) {
	// Bought at 2.50 effective, sold 4 at 5.00 with no deductions:
	// profit 10 over COGS 10 is 100%.
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: boosterBox, Quantity: 4, UnitPrice: GBP(5)},
	)
	ledger := newTestLedger(purchaseFixture(), sale)

	got, ok := ledger.AverageROI("alice", boosterBox)
	if !ok {
		t.Fatal("AverageROI() reported no data, want a value")
	}
	if want := Percent(100); !got.Equal(want) {
		t.Errorf("AverageROI() = %s, want %s", got, want)
	}
}

func TestAverageROI_NoData(t *testing.T) {
	ledger := newTestLedger(purchaseFixture())

	// Purchased but never sold.
	if got, ok := ledger.AverageROI("alice", boosterBox); ok {
		t.Errorf("AverageROI() = %s, want no data without sales", got)
	}

	// Sold but never purchased: no cost basis.
	sale := NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
		SaleLineItem{Product: eliteBox, Quantity: 1, UnitPrice: GBP(40)},
	)
	ledger.Append(sale)
	if got, ok := ledger.AverageROI("alice", eliteBox); ok {
		t.Errorf("AverageROI() = %s, want no data without a cost basis", got)
	}
}

func TestProfitBreakdowns(t *testing.T) {
	// Two games: Pokemon profit 10, One Piece profit 4.
	ledger := newTestLedger(
		purchaseFixture(),
		NewPurchase(MustParse("2025-02-02"), "alice", "", "GameNerdz", GBP(0), StatusReceived,
			PurchaseLineItem{Product: oneBox, Quantity: 2, UnitCost: GBP(3)},
		),
		NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
			SaleLineItem{Product: boosterBox, Quantity: 4, UnitPrice: GBP(5)},
		),
		NewSale(MustParse("2025-03-02"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
			SaleLineItem{Product: oneBox, Quantity: 2, UnitPrice: GBP(5)},
		),
	)

	byTCG := ledger.ProfitByTCG("alice", AllTime())
	if len(byTCG) != 2 {
		t.Fatalf("ProfitByTCG() returned %d entries, want 2", len(byTCG))
	}
	if byTCG[0].Label != "Pokemon" || !byTCG[0].Profit.Equal(GBP(10)) {
		t.Errorf("byTCG[0] = %s %s, want Pokemon %s", byTCG[0].Label, byTCG[0].Profit, GBP(10))
	}
	if byTCG[1].Label != "One Piece" || !byTCG[1].Profit.Equal(GBP(4)) {
		t.Errorf("byTCG[1] = %s %s, want One Piece %s", byTCG[1].Label, byTCG[1].Profit, GBP(4))
	}

	bySet := ledger.ProfitBySet("alice", AllTime())
	if bySet[0].Label != "Pokemon - Surging Sparks" {
		t.Errorf("bySet[0].Label = %q, want %q", bySet[0].Label, "Pokemon - Surging Sparks")
	}

	byProduct := ledger.ProfitByProduct("alice", AllTime())
	if byProduct[0].Label != "Surging Sparks Booster Box" {
		t.Errorf("byProduct[0].Label = %q, want %q", byProduct[0].Label, "Surging Sparks Booster Box")
	}
}

func TestProfitBreakdown_TiesKeepFirstSeenOrder(t *testing.T) {
	// Both games earn exactly 5: the one sold first stays first.
	ledger := newTestLedger(
		NewSale(MustParse("2025-03-01"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
			SaleLineItem{Product: oneBox, Quantity: 1, UnitPrice: GBP(5)},
		),
		NewSale(MustParse("2025-03-02"), "alice", "", "eBay", GBP(0), GBP(0), GBP(0),
			SaleLineItem{Product: boosterBox, Quantity: 1, UnitPrice: GBP(5)},
		),
	)

	byTCG := ledger.ProfitByTCG("alice", AllTime())
	if len(byTCG) != 2 {
		t.Fatalf("ProfitByTCG() returned %d entries, want 2", len(byTCG))
	}
	if byTCG[0].Label != "One Piece" || byTCG[1].Label != "Pokemon" {
		t.Errorf("tie order = [%s, %s], want [One Piece, Pokemon]", byTCG[0].Label, byTCG[1].Label)
	}
}
