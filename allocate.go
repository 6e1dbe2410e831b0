package tcg

// distribute splits a transaction-level total (delivery fee, shipping,
// platform fees, tax) across line items in proportion to each item's weight
// (its cost or gross share of the transaction).
//
// The shares sum exactly to the total: the last item with a nonzero weight
// absorbs the division residual instead of rounding it away. When every
// weight is zero the total cannot be apportioned and every share is zero,
// the divide-by-zero guard shared by both allocation engines.
func distribute(total Money, weights []Money) []Money {
	shares := make([]Money, len(weights))
	zero := M(0, total.Currency())
	for i := range shares {
		shares[i] = zero
	}

	subtotal := zero
	last := -1 // index of the last nonzero weight
	for i, w := range weights {
		subtotal = subtotal.Add(w)
		if !w.IsZero() {
			last = i
		}
	}
	if subtotal.IsZero() || last < 0 {
		return shares
	}

	allocated := zero
	for i, w := range weights {
		if w.IsZero() {
			continue
		}
		if i == last {
			shares[i] = total.Sub(allocated)
			break
		}
		share := M(total.amount().Mul(w.amount()).Div(subtotal.amount()), total.Currency())
		shares[i] = share
		allocated = allocated.Add(share)
	}
	return shares
}
