package renderer

import (
	"fmt"
	"strings"

	tcg "github.com/movags95/trackmytcg"
)

// CashflowMarkdown renders the cash movement timeline with a running balance.
func CashflowMarkdown(owner string, r tcg.Range, p tcg.Period, events []tcg.CashflowEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Cashflow for %s (%s, %s)\n\n", owner, r, p)
	if len(events) == 0 {
		fmt.Fprintln(&b, "No cash movements in this range.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Type | Amount | Balance |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	balance := tcg.M(0, "")
	for _, e := range events {
		balance = balance.Add(e.Amount)
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", e.Date, e.Type, e.Amount.SignedString(), balance.SignedString())
	}

	return b.String()
}
