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

// --- Fmt Command ---

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt

  Validates and formats the ledger file. This command reads all transactions,
  validates them, applies available quick-fixes, sorts them by date, and
  writes them back in a canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	formatted := tcg.NewLedger()
	for _, tx := range ledger.Transactions() {
		fixed, err := formatted.Validate(tx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error validating transaction on %s: %v\n", tx.When(), err)
			return subcommands.ExitFailure
		}
		formatted.Append(fixed)
	}

	f, err := os.Create(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tcg.EncodeLedger(f, formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully formatted %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// --- Log Command ---

type logCmd struct {
	from string
	to   string
	all  bool
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list transactions in the ledger" }
func (*logCmd) Usage() string {
	return `log [-from <date>] [-to <date>] [-all]

  Lists transactions, oldest first. By default only the app owner's
  transactions are shown; -all lists every owner.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date of the range, inclusive")
	f.StringVar(&c.to, "to", "", "End date of the range, inclusive")
	f.BoolVar(&c.all, "all", false, "List transactions of every owner")
}

func (c *logCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Product declarations carry no owner and are always listed.
	mine := func(tx tcg.Transaction) bool { return c.all || tx.By() == "" || tx.By() == *owner }
	var txs []tcg.Transaction
	for _, tx := range ledger.Transactions(tcg.InRange(r), mine) {
		txs = append(txs, tx)
	}

	printMarkdown(renderer.LogMarkdown(ledger, txs))
	return subcommands.ExitSuccess
}
