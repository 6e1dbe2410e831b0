package tcg

// SaleItemCosts is one sale line item's allocated share of the sale-level
// shipping cost, platform fees and tax.
type SaleItemCosts struct {
	Shipping Money
	Fees     Money
	Tax      Money
}

// Total returns the sum of the three allocated costs.
func (c SaleItemCosts) Total() Money { return c.Shipping.Add(c.Fees).Add(c.Tax) }

// AllocateSaleCosts apportions a sale's shipping cost, platform fees and tax
// across its line items, each in proportion to the item's share of the sale's
// gross revenue. The returned slice is index-aligned with sale.Items.
//
// For each of the three costs, the allocated amounts sum exactly to the
// sale-level total. When the sale's gross is zero every allocation is zero.
func AllocateSaleCosts(sale Sale) []SaleItemCosts {
	weights := make([]Money, len(sale.Items))
	for i, li := range sale.Items {
		weights[i] = li.Gross()
	}

	shipping := distribute(sale.ShippingCost, weights)
	fees := distribute(sale.PlatformFees, weights)
	tax := distribute(sale.Tax, weights)

	costs := make([]SaleItemCosts, len(sale.Items))
	for i := range sale.Items {
		costs[i] = SaleItemCosts{Shipping: shipping[i], Fees: fees[i], Tax: tax[i]}
	}
	return costs
}

// itemNetRevenues returns each line item's net revenue: its gross minus its
// allocated share of the sale-level costs. Index-aligned with sale.Items.
func itemNetRevenues(sale Sale) []Money {
	costs := AllocateSaleCosts(sale)
	nets := make([]Money, len(sale.Items))
	for i, li := range sale.Items {
		nets[i] = li.Gross().Sub(costs[i].Total())
	}
	return nets
}
