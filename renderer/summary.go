// Package renderer formats derived reports as markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	tcg "github.com/movags95/trackmytcg"
)

// SummaryMarkdown renders the owner's headline metrics.
func SummaryMarkdown(owner string, s tcg.SummaryMetrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Collection Summary for %s", owner))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Invested", s.TotalInvested.String()},
			{"Total Realized Profit", s.TotalRealizedProfit.SignedString()},
			{"Overall ROI", s.OverallROI.SignedString()},
			{"Break-even Revenue", s.BreakEvenRevenue.String()},
			{"Average Profit per Sale", s.AverageProfitPerSale.SignedString()},
			{"Unrealized Inventory Value", s.UnrealizedValue.String()},
		},
	})

	doc.H2("Selling Costs")
	doc.Table(md.TableSet{
		Header: []string{"Cost", "Total"},
		Rows: [][]string{
			{"Shipping", s.Costs.Shipping.String()},
			{"Platform Fees", s.Costs.PlatformFees.String()},
			{"Tax", s.Costs.Tax.String()},
			{"Total", s.Costs.Total().String()},
		},
	})

	doc.H2("Activity")
	doc.Table(md.TableSet{
		Header: []string{"Transactions", "Count"},
		Rows: [][]string{
			{"Purchases received", fmt.Sprintf("%d", s.PurchaseCount)},
			{"Sales", fmt.Sprintf("%d", s.SaleCount)},
			{"Openings", fmt.Sprintf("%d", s.OpeningCount)},
		},
	})

	return doc.String()
}
