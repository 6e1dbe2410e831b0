package tcg

import (
	"sort"

	"github.com/google/uuid"
)

// SaleProfit computes the realized profit of one sale: net revenue minus cost
// of goods sold. A line item whose product has no average unit cost
// contributes zero to COGS; the rest of the sale still settles normally.
func (l *Ledger) SaleProfit(owner string, sale Sale) Money {
	cogs := M(0, "")
	for _, li := range sale.Items {
		if avg, ok := l.AverageUnitCost(owner, li.Product); ok {
			cogs = cogs.Add(avg.MulInt(li.Quantity))
		}
	}
	return sale.NetRevenue().Sub(cogs)
}

// TotalInvested sums the full cash outflow (line items plus delivery fee) of
// the owner's RECEIVED purchases within the range.
func (l *Ledger) TotalInvested(owner string, r Range) Money {
	total := M(0, "")
	for p := range l.ReceivedPurchases(owner, r) {
		total = total.Add(p.TotalCost())
	}
	return total
}

// TotalRealizedProfit sums the realized profit of the owner's sales within
// the range, both bounds inclusive.
func (l *Ledger) TotalRealizedProfit(owner string, r Range) Money {
	total := M(0, "")
	for sale := range l.Sales(owner, r) {
		total = total.Add(l.SaleProfit(owner, sale))
	}
	return total
}

// AverageProfitPerSale returns the mean realized profit per sale transaction
// within the range, or zero when there are no sales.
func (l *Ledger) AverageProfitPerSale(owner string, r Range) Money {
	total := M(0, "")
	var count int64
	for sale := range l.Sales(owner, r) {
		total = total.Add(l.SaleProfit(owner, sale))
		count++
	}
	if count == 0 {
		return total
	}
	return total.DivInt(count)
}

// BreakEvenRevenue returns total invested minus total realized profit over
// all time. At or below zero the collection is break-even or profitable.
func (l *Ledger) BreakEvenRevenue(owner string) Money {
	return l.TotalInvested(owner, AllTime()).Sub(l.TotalRealizedProfit(owner, AllTime()))
}

// CostBreakdown totals the sale-level costs over a set of sales. These are
// transaction-level amounts, so no allocation is involved.
type CostBreakdown struct {
	Shipping     Money
	PlatformFees Money
	Tax          Money
}

// Total returns shipping plus platform fees plus tax.
func (c CostBreakdown) Total() Money { return c.Shipping.Add(c.PlatformFees).Add(c.Tax) }

// CostBreakdown sums shipping, platform fees and tax over the owner's sales
// within the range.
func (l *Ledger) CostBreakdown(owner string, r Range) CostBreakdown {
	b := CostBreakdown{Shipping: M(0, ""), PlatformFees: M(0, ""), Tax: M(0, "")}
	for sale := range l.Sales(owner, r) {
		b.Shipping = b.Shipping.Add(sale.ShippingCost)
		b.PlatformFees = b.PlatformFees.Add(sale.PlatformFees)
		b.Tax = b.Tax.Add(sale.Tax)
	}
	return b
}

// AverageROI computes a product's return on investment over all of its sale
// line items: total per-item profit over total per-item COGS, as a
// percentage. It is undefined (false) when the product has no sales, no
// average unit cost, or a zero total COGS.
func (l *Ledger) AverageROI(owner string, product uuid.UUID) (Percent, bool) {
	avg, ok := l.AverageUnitCost(owner, product)
	if !ok {
		return 0, false
	}

	totalProfit := M(0, "")
	totalCOGS := M(0, "")
	var sold bool

	for sale := range l.Sales(owner, AllTime()) {
		nets := itemNetRevenues(sale)
		for i, li := range sale.Items {
			if li.Product != product {
				continue
			}
			sold = true
			cogs := avg.MulInt(li.Quantity)
			totalProfit = totalProfit.Add(nets[i].Sub(cogs))
			totalCOGS = totalCOGS.Add(cogs)
		}
	}

	if !sold {
		return 0, false
	}
	return ratioPercent(totalProfit, totalCOGS)
}

// ProfitBreakdownEntry is one group's realized profit in a grouped breakdown.
type ProfitBreakdownEntry struct {
	Label  string
	Profit Money
}

// profitBreakdown walks every sale line item in the range, computes its
// individually allocated profit, and accumulates it per group. Entries come
// back sorted by profit descending; equal-profit groups keep their first-seen
// order.
func (l *Ledger) profitBreakdown(owner string, r Range, group func(Product) (key, label string)) []ProfitBreakdownEntry {
	type bucket struct {
		label  string
		profit Money
	}
	var order []string
	buckets := make(map[string]*bucket)

	for sale := range l.Sales(owner, r) {
		nets := itemNetRevenues(sale)
		for i, li := range sale.Items {
			p := l.Product(li.Product)
			if p == nil {
				continue
			}
			cogs := M(0, "")
			if avg, ok := l.AverageUnitCost(owner, li.Product); ok {
				cogs = avg.MulInt(li.Quantity)
			}
			profit := nets[i].Sub(cogs)

			key, label := group(*p)
			b, ok := buckets[key]
			if !ok {
				b = &bucket{label: label, profit: M(0, "")}
				buckets[key] = b
				order = append(order, key)
			}
			b.profit = b.profit.Add(profit)
		}
	}

	entries := make([]ProfitBreakdownEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, ProfitBreakdownEntry{Label: buckets[key].label, Profit: buckets[key].profit})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Profit.GreaterThan(entries[j].Profit)
	})
	return entries
}

// ProfitByTCG breaks realized profit down by trading card game.
func (l *Ledger) ProfitByTCG(owner string, r Range) []ProfitBreakdownEntry {
	return l.profitBreakdown(owner, r, func(p Product) (string, string) {
		return p.TCG, p.TCG
	})
}

// ProfitBySet breaks realized profit down by (TCG, set) pair, so identically
// named sets from different games stay separate.
func (l *Ledger) ProfitBySet(owner string, r Range) []ProfitBreakdownEntry {
	return l.profitBreakdown(owner, r, func(p Product) (string, string) {
		k := p.SetKey()
		return k.TCG + "\x00" + k.Set, k.String()
	})
}

// ProfitByProduct breaks realized profit down by product. Products are keyed
// by id, so two products sharing a display name stay separate.
func (l *Ledger) ProfitByProduct(owner string, r Range) []ProfitBreakdownEntry {
	return l.profitBreakdown(owner, r, func(p Product) (string, string) {
		return p.ID.String(), p.Name
	})
}
