package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	tcg "github.com/movags95/trackmytcg"
	"github.com/movags95/trackmytcg/renderer"
)

// --- Summary Command ---

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the collection's headline metrics" }
func (*summaryCmd) Usage() string {
	return `summary

  Displays total invested, realized profit, ROI, break-even revenue and
  unrealized inventory value for the app owner.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(*owner, tcg.NewSummary(ledger, *owner)))
	return subcommands.ExitSuccess
}

// --- Inventory Command ---

type inventoryCmd struct {
	search string
	tcg    string
	stock  string
	listed string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "display reconciled inventory quantities and costs" }
func (*inventoryCmd) Usage() string {
	return `inventory [-search <text>] [-tcg <game>] [-stock in_stock|out_of_stock] [-listed true|false]

  Displays per-product quantity on hand (received minus sold minus opened)
  with average unit cost, estimated resale price and ROI.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Case-insensitive substring over product, TCG and set name")
	f.StringVar(&c.tcg, "tcg", "", "Exact TCG name to filter on")
	f.StringVar(&c.stock, "stock", "", "Stock status filter: in_stock or out_of_stock")
	f.StringVar(&c.listed, "listed", "", "Listed-state filter: true or false")
}

func (c *inventoryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := tcg.InventoryFilter{Search: c.search, TCG: c.tcg}
	switch c.stock {
	case "", string(tcg.StockInStock), string(tcg.StockOutOfStock):
		filter.Stock = tcg.StockStatus(c.stock)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown stock status %q\n", c.stock)
		return subcommands.ExitUsageError
	}
	switch c.listed {
	case "":
	case "true", "false":
		listed := c.listed == "true"
		filter.Listed = &listed
	default:
		fmt.Fprintf(os.Stderr, "Error: -listed wants true or false, got %q\n", c.listed)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	rows := ledger.Inventory(*owner, filter)
	printMarkdown(renderer.InventoryMarkdown(*owner, rows, ledger.UnrealizedInventoryValue(*owner)))
	return subcommands.ExitSuccess
}

// --- Profit Command ---

type profitCmd struct {
	by   string
	from string
	to   string
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display realized profit grouped by tcg, set or product" }
func (*profitCmd) Usage() string {
	return `profit [-by tcg|set|product] [-from <date>] [-to <date>]

  Displays realized profit per group, best performer first. Each sale line
  item carries its individually allocated share of the sale's costs.
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "tcg", "Grouping dimension: tcg, set or product")
	f.StringVar(&c.from, "from", "", "Start date of the range, inclusive")
	f.StringVar(&c.to, "to", "", "End date of the range, inclusive")
}

func (c *profitCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	var dimension string
	var entries []tcg.ProfitBreakdownEntry
	switch c.by {
	case "tcg":
		dimension, entries = "TCG", ledger.ProfitByTCG(*owner, r)
	case "set":
		dimension, entries = "Set", ledger.ProfitBySet(*owner, r)
	case "product":
		dimension, entries = "Product", ledger.ProfitByProduct(*owner, r)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown grouping %q, want tcg, set or product\n", c.by)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ProfitMarkdown(*owner, dimension, r, entries))
	return subcommands.ExitSuccess
}

// --- Cashflow Command ---

type cashflowCmd struct {
	from   string
	to     string
	period string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the timeline of cash in and out" }
func (*cashflowCmd) Usage() string {
	return `cashflow [-from <date>] [-to <date>] [-p <period>]

  Displays received-purchase outflows and sale inflows, oldest first, with a
  running balance. Periods coarser than daily bucket events per period.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date of the range, inclusive")
	f.StringVar(&c.to, "to", "", "End date of the range, inclusive")
	f.StringVar(&c.period, "p", "daily", "Bucketing period (daily, weekly, monthly, quarterly, yearly)")
}

func (c *cashflowCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	period, err := tcg.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	events := ledger.Cashflow(*owner, r, period)
	printMarkdown(renderer.CashflowMarkdown(*owner, r, period, events))
	return subcommands.ExitSuccess
}

// --- Costs Command ---

type costsCmd struct {
	from string
	to   string
}

func (*costsCmd) Name() string     { return "costs" }
func (*costsCmd) Synopsis() string { return "display total shipping, platform fees and tax on sales" }
func (*costsCmd) Usage() string {
	return `costs [-from <date>] [-to <date>]

  Displays the selling cost breakdown over the range.
`
}

func (c *costsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date of the range, inclusive")
	f.StringVar(&c.to, "to", "", "End date of the range, inclusive")
}

func (c *costsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CostsMarkdown(*owner, r, ledger.CostBreakdown(*owner, r)))
	return subcommands.ExitSuccess
}
