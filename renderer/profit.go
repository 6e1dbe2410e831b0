package renderer

import (
	"fmt"
	"strings"

	tcg "github.com/movags95/trackmytcg"
)

// ProfitMarkdown renders a grouped profit breakdown, best performer first.
func ProfitMarkdown(owner, dimension string, r tcg.Range, entries []tcg.ProfitBreakdownEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Profit by %s for %s (%s)\n\n", dimension, owner, r)
	if len(entries) == 0 {
		fmt.Fprintln(&b, "No sales recorded in this range.")
		return b.String()
	}

	fmt.Fprintf(&b, "| %s | Realized Profit |\n", dimension)
	fmt.Fprintln(&b, "|:---|---:|")
	total := tcg.M(0, "")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s |\n", e.Label, e.Profit.SignedString())
		total = total.Add(e.Profit)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", total.SignedString())

	return b.String()
}

// CostsMarkdown renders the transaction-level selling costs over a range.
func CostsMarkdown(owner string, r tcg.Range, c tcg.CostBreakdown) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Selling Costs for %s (%s)\n\n", owner, r)
	fmt.Fprintln(&b, "| Cost | Total |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Shipping | %s |\n", c.Shipping)
	fmt.Fprintf(&b, "| Platform Fees | %s |\n", c.PlatformFees)
	fmt.Fprintf(&b, "| Tax | %s |\n", c.Tax)
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", c.Total())

	return b.String()
}
