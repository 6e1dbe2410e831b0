package tcg

import (
	"fmt"
	"iter"
	"sort"

	"github.com/google/uuid"
)

// Ledger represents the full transaction history of a collection: product
// declarations, purchases, sales and openings.
//
// In a Ledger transactions are always in chronological order. The ledger is
// the immutable input of every derivation in this package; nothing here
// mutates it, so concurrent reads need no coordination.
type Ledger struct {
	transactions []Transaction
	products     map[uuid.UUID]Product // index products by id
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		products:     make(map[uuid.UUID]Product),
	}
}

// Product returns the product declared with this id, or nil if unknown.
func (l *Ledger) Product(id uuid.UUID) *Product {
	p, ok := l.products[id]
	if !ok {
		return nil
	}
	return &p
}

// AllProducts iterates over products declared in this ledger, ordered by
// TCG, set, type then name.
func (l *Ledger) AllProducts() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		products := make([]Product, 0, len(l.products))
		for _, p := range l.products {
			products = append(products, p)
		}
		sort.Slice(products, func(i, j int) bool {
			a, b := products[i], products[j]
			if a.TCG != b.TCG {
				return a.TCG < b.TCG
			}
			if a.Set != b.Set {
				return a.Set < b.Set
			}
			if a.Type != b.Type {
				return a.Type < b.Type
			}
			return a.Name < b.Name
		})
		for _, p := range products {
			if !yield(p) {
				return
			}
		}
	}
}

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (e.g., defaulting an empty purchase status to RECEIVED). It
// returns the validated (and potentially modified) transaction or an error
// detailing any validation failures.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	validated, err := tx.Validate(l)
	if err != nil {
		return validated, fmt.Errorf("invalid %s transaction on %v: %w", tx.What(), tx.When(), err)
	}
	return validated, nil
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	// process product declarations.
	l.processTx(txs...)
	l.stableSort() // Ensure the ledger remains sorted after appending
}

func (l *Ledger) processTx(txs ...Transaction) {
	for _, tx := range txs {
		if v, ok := tx.(DefineProduct); ok {
			l.products[v.ID] = v.Product
		}
	}
}

// Transactions returns an iterator over transactions, in chronological order,
// that match every given filter. With no filter, every transaction is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Purchases iterates over the owner's purchases within the range.
func (l *Ledger) Purchases(owner string, r Range) iter.Seq[Purchase] {
	return func(yield func(Purchase) bool) {
		for _, tx := range l.Transactions(ByOwner(owner), InRange(r)) {
			if p, ok := tx.(Purchase); ok {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// ReceivedPurchases iterates over the owner's RECEIVED purchases within the
// range. Only these purchases contribute to cost and inventory.
func (l *Ledger) ReceivedPurchases(owner string, r Range) iter.Seq[Purchase] {
	return func(yield func(Purchase) bool) {
		for p := range l.Purchases(owner, r) {
			if p.Received() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Sales iterates over the owner's sales within the range. Sales have no
// status: all of them contribute to revenue and profit.
func (l *Ledger) Sales(owner string, r Range) iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, tx := range l.Transactions(ByOwner(owner), InRange(r)) {
			if s, ok := tx.(Sale); ok {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// Openings iterates over the owner's openings within the range.
func (l *Ledger) Openings(owner string, r Range) iter.Seq[Opening] {
	return func(yield func(Opening) bool) {
		for _, tx := range l.Transactions(ByOwner(owner), InRange(r)) {
			if o, ok := tx.(Opening); ok {
				if !yield(o) {
					return
				}
			}
		}
	}
}

// Owners iterates over all distinct owners that appear in the ledger.
func (l *Ledger) Owners() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			owner := tx.By()
			if owner == "" {
				// Product declarations are not owned by anyone.
				continue
			}
			if _, ok := visited[owner]; ok {
				continue
			}
			visited[owner] = struct{}{}
			if !yield(owner) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}
