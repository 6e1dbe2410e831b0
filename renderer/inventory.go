package renderer

import (
	"fmt"
	"strings"

	tcg "github.com/movags95/trackmytcg"
)

// InventoryMarkdown renders reconciled inventory rows as a table. Metrics
// with no history show a dash rather than a zero.
func InventoryMarkdown(owner string, rows []tcg.InventoryRow, unrealized tcg.Money) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Inventory for %s\n\n", owner)
	if len(rows) == 0 {
		fmt.Fprintln(&b, "No inventory recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Product | TCG | Set | Qty | Avg Cost | Per Pack | Last Sale | ROI |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|")
	for _, row := range rows {
		perPack, hasPerPack := row.PricePerPack()
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s | %s | %s |\n",
			row.Product.Name,
			row.Product.TCG,
			row.Product.Set,
			row.Quantity,
			orDash(row.AverageCost.String(), row.HasAverageCost),
			orDash(perPack.String(), hasPerPack),
			orDash(row.LastSalePrice.String(), row.HasLastSalePrice),
			orDash(row.AverageROI.SignedString(), row.HasAverageROI),
		)
	}
	fmt.Fprintf(&b, "\nUnrealized value (stock at last sale price): %s\n", unrealized)

	return b.String()
}

func orDash(s string, ok bool) string {
	if !ok {
		return "-"
	}
	return s
}
