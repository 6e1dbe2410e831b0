package tcg

import "sort"

// CashflowType tags a cashflow event with its direction.
type CashflowType string

const (
	CashflowPurchase CashflowType = "purchase" // outflow, negative amount
	CashflowSale     CashflowType = "sale"     // inflow, positive amount
)

// CashflowEvent is one signed movement of cash on a date. Purchases carry
// their total cost negated; sales carry their net revenue.
type CashflowEvent struct {
	Date   Date
	Type   CashflowType
	Amount Money
}

// Cashflow returns the owner's cash movements within the range, oldest
// first. With PeriodDaily every transaction yields its own event, in ledger
// order. Coarser periods merge each period's purchases into one event and
// its sales into another, both dated at the period start, purchases first.
func (l *Ledger) Cashflow(owner string, r Range, p Period) []CashflowEvent {
	var events []CashflowEvent
	for pur := range l.ReceivedPurchases(owner, r) {
		events = append(events, CashflowEvent{Date: pur.Date, Type: CashflowPurchase, Amount: pur.TotalCost().Neg()})
	}
	for s := range l.Sales(owner, r) {
		events = append(events, CashflowEvent{Date: s.Date, Type: CashflowSale, Amount: s.NetRevenue()})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Type == CashflowPurchase && events[j].Type == CashflowSale
	})
	if p == Daily {
		return events
	}
	return bucketCashflow(events, p)
}

// bucketCashflow merges events into one per (period, type). Events are
// assumed sorted, so first-seen order of the buckets is already the output
// order.
func bucketCashflow(events []CashflowEvent, p Period) []CashflowEvent {
	type key struct {
		start Date
		typ   CashflowType
	}
	var order []key
	sums := make(map[key]Money)
	for _, e := range events {
		k := key{start: p.Range(e.Date).From, typ: e.Type}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(e.Amount)
	}
	sort.SliceStable(order, func(i, j int) bool {
		if !order[i].start.Equal(order[j].start) {
			return order[i].start.Before(order[j].start)
		}
		return order[i].typ == CashflowPurchase && order[j].typ == CashflowSale
	})
	out := make([]CashflowEvent, 0, len(order))
	for _, k := range order {
		out = append(out, CashflowEvent{Date: k.start, Type: k.typ, Amount: sums[k]})
	}
	return out
}

// NetCashflow sums the signed amounts of the owner's cash movements within
// the range.
func (l *Ledger) NetCashflow(owner string, r Range) Money {
	total := M(0, "")
	for _, e := range l.Cashflow(owner, r, Daily) {
		total = total.Add(e.Amount)
	}
	return total
}
