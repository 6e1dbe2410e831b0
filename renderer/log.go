package renderer

import (
	"fmt"
	"strings"

	tcg "github.com/movags95/trackmytcg"
)

// LogMarkdown renders the transaction history, oldest first, one line per
// transaction.
func LogMarkdown(l *tcg.Ledger, txs []tcg.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transaction Log\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Type | Owner | Details |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", tx.When(), tx.What(), tx.By(), describe(l, tx))
	}

	return b.String()
}

func describe(l *tcg.Ledger, tx tcg.Transaction) string {
	switch v := tx.(type) {
	case tcg.DefineProduct:
		return fmt.Sprintf("%s (%s, %s)", v.Product.Name, v.Product.TCG, v.Product.Set)
	case tcg.Purchase:
		return fmt.Sprintf("%s, %d item(s), %s [%s]", v.Vendor, len(v.Items), v.TotalCost(), v.Status)
	case tcg.Sale:
		return fmt.Sprintf("%s, %d item(s), net %s", v.Platform, len(v.Items), v.NetRevenue())
	case tcg.Opening:
		return fmt.Sprintf("%d item(s) opened", len(v.Items))
	default:
		return ""
	}
}
