package tcg

import (
	"strings"

	"github.com/google/uuid"
)

// StockStatus filters inventory rows on their quantity on hand.
type StockStatus string

const (
	StockAny        StockStatus = ""
	StockInStock    StockStatus = "in_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// InventoryFilter narrows the rows returned by Inventory. The zero value
// matches everything.
type InventoryFilter struct {
	Search string // case-insensitive substring over product, TCG and set name
	TCG    string // exact match
	Stock  StockStatus
	Listed *bool
}

func (f InventoryFilter) matches(row InventoryRow) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		hay := strings.ToLower(row.Product.Name + " " + row.Product.TCG + " " + row.Product.Set)
		if !strings.Contains(hay, needle) {
			return false
		}
	}
	if f.TCG != "" && row.Product.TCG != f.TCG {
		return false
	}
	switch f.Stock {
	case StockInStock:
		if row.Quantity <= 0 {
			return false
		}
	case StockOutOfStock:
		if row.Quantity > 0 {
			return false
		}
	}
	if f.Listed != nil && row.Product.Listed != *f.Listed {
		return false
	}
	return true
}

// InventoryRow is one product's reconciled position: quantity on hand plus
// the derived unit figures. Quantity is received minus sold minus opened and
// may go negative when the ledger records more outflow than intake.
type InventoryRow struct {
	Product  Product
	Quantity int64
	Received int64
	Sold     int64
	Opened   int64

	AverageCost    Money
	HasAverageCost bool

	AverageROI    Percent
	HasAverageROI bool

	LastSalePrice    Money
	HasLastSalePrice bool
}

// PricePerPack divides the average unit cost by the product's pack count.
// It is undefined when the average cost is unknown or the product has no
// pack count.
func (row InventoryRow) PricePerPack() (Money, bool) {
	if !row.HasAverageCost || row.Product.PackCount <= 0 {
		return Money{}, false
	}
	return row.AverageCost.DivInt(row.Product.PackCount), true
}

// Inventory reconciles the owner's ledger into per-product rows. A product
// appears when it still has stock or has ever been sold or opened; products
// that were only declared stay out. Rows come back in AllProducts order.
func (l *Ledger) Inventory(owner string, f InventoryFilter) []InventoryRow {
	received := make(map[uuid.UUID]int64)
	sold := make(map[uuid.UUID]int64)
	opened := make(map[uuid.UUID]int64)

	for p := range l.ReceivedPurchases(owner, AllTime()) {
		for _, li := range p.Items {
			received[li.Product] += li.Quantity
		}
	}
	for s := range l.Sales(owner, AllTime()) {
		for _, li := range s.Items {
			sold[li.Product] += li.Quantity
		}
	}
	for o := range l.Openings(owner, AllTime()) {
		for _, li := range o.Items {
			opened[li.Product] += li.Quantity
		}
	}

	var rows []InventoryRow
	for p := range l.AllProducts() {
		qty := received[p.ID] - sold[p.ID] - opened[p.ID]
		if qty <= 0 && sold[p.ID] == 0 && opened[p.ID] == 0 {
			continue
		}
		row := InventoryRow{
			Product:  p,
			Quantity: qty,
			Received: received[p.ID],
			Sold:     sold[p.ID],
			Opened:   opened[p.ID],
		}
		row.AverageCost, row.HasAverageCost = l.AverageUnitCost(owner, p.ID)
		row.AverageROI, row.HasAverageROI = l.AverageROI(owner, p.ID)
		row.LastSalePrice, row.HasLastSalePrice = l.LastSalePrice(owner, p.ID)
		if f.matches(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// LastSalePrice returns the unit price of the product's most recent sale
// line item. Sales sharing the latest date resolve to the one recorded last.
func (l *Ledger) LastSalePrice(owner string, product uuid.UUID) (Money, bool) {
	var price Money
	var found bool
	// Sales iterates in chronological stable order, so the last match wins.
	for s := range l.Sales(owner, AllTime()) {
		for _, li := range s.Items {
			if li.Product == product {
				price = li.UnitPrice
				found = true
			}
		}
	}
	return price, found
}

// UnrealizedInventoryValue estimates the resale value of stock on hand:
// quantity times last sale price for every in-stock product. Products with
// no sale history contribute zero.
func (l *Ledger) UnrealizedInventoryValue(owner string) Money {
	total := M(0, "")
	for _, row := range l.Inventory(owner, InventoryFilter{Stock: StockInStock}) {
		if row.HasLastSalePrice {
			total = total.Add(row.LastSalePrice.MulInt(row.Quantity))
		}
	}
	return total
}
