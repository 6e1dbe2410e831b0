package tcg

// SummaryMetrics is the dashboard payload: the headline figures of the
// owner's collection over all time.
type SummaryMetrics struct {
	TotalInvested        Money
	TotalRealizedProfit  Money
	BreakEvenRevenue     Money
	AverageProfitPerSale Money
	UnrealizedValue      Money
	Costs                CostBreakdown

	// OverallROI is realized profit over invested capital, as a percentage.
	// It is zero, not undefined, when nothing has been invested yet.
	OverallROI Percent

	PurchaseCount int
	SaleCount     int
	OpeningCount  int
}

// NewSummary derives the owner's summary metrics from the ledger. An empty
// ledger yields all-zero metrics rather than an error.
func NewSummary(l *Ledger, owner string) SummaryMetrics {
	s := SummaryMetrics{
		TotalInvested:        l.TotalInvested(owner, AllTime()),
		TotalRealizedProfit:  l.TotalRealizedProfit(owner, AllTime()),
		BreakEvenRevenue:     l.BreakEvenRevenue(owner),
		AverageProfitPerSale: l.AverageProfitPerSale(owner, AllTime()),
		UnrealizedValue:      l.UnrealizedInventoryValue(owner),
		Costs:                l.CostBreakdown(owner, AllTime()),
	}
	if roi, ok := ratioPercent(s.TotalRealizedProfit, s.TotalInvested); ok {
		s.OverallROI = roi
	}
	for range l.ReceivedPurchases(owner, AllTime()) {
		s.PurchaseCount++
	}
	for range l.Sales(owner, AllTime()) {
		s.SaleCount++
	}
	for range l.Openings(owner, AllTime()) {
		s.OpeningCount++
	}
	return s
}
