package tcg

import "github.com/google/uuid"

// AverageUnitCost computes a product's weighted-average unit cost across every
// RECEIVED purchase of the owner, with each purchase's delivery fee first
// allocated to its line items in proportion to their cost share.
//
// The second return value is false when the product has no received purchase
// history: an undefined cost is distinct from a true zero cost and must stay
// so throughout the pipeline.
//
// The average is re-derived from the full ledger on each call; there is no
// incremental state.
func (l *Ledger) AverageUnitCost(owner string, product uuid.UUID) (Money, bool) {
	totalCost := M(0, "")
	var totalQty int64

	for p := range l.ReceivedPurchases(owner, AllTime()) {
		var holds bool
		for _, li := range p.Items {
			if li.Product == product {
				holds = true
				break
			}
		}
		if !holds {
			continue
		}

		// Allocate the delivery fee across all of the purchase's line items,
		// not just this product's, so that every product of a multi-product
		// purchase gets its proportional slice and the slices sum to the fee.
		weights := make([]Money, len(p.Items))
		for i, li := range p.Items {
			weights[i] = li.Cost()
		}
		fees := distribute(p.DeliveryFee, weights)

		for i, li := range p.Items {
			if li.Product != product {
				continue
			}
			totalCost = totalCost.Add(li.Cost()).Add(fees[i])
			totalQty += li.Quantity
		}
	}

	if totalQty == 0 {
		return Money{}, false
	}
	return totalCost.DivInt(totalQty), true
}
