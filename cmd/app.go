// Package cmd implements the CLI application to manage a trading-card ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	tcg "github.com/movags95/trackmytcg"
)

// Register the subcommands.
// A main package calls Register() to declare them, then Execute() runs the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&productCmd{}, "recording")
	c.Register(&purchaseCmd{}, "recording")
	c.Register(&saleCmd{}, "recording")
	c.Register(&openingCmd{}, "recording")
	c.Register(&fmtCmd{}, "recording")
	c.Register(&logCmd{}, "recording")

	c.Register(&summaryCmd{}, "reporting")
	c.Register(&inventoryCmd{}, "reporting")
	c.Register(&profitCmd{}, "reporting")
	c.Register(&cashflowCmd{}, "reporting")
	c.Register(&costsCmd{}, "reporting")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "tcg.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var owner = flag.String("owner", "me", "Owner scope for recording and reporting")
var currency = flag.String("currency", "GBP", "Currency for monetary flag values")

// DecodeLedger reads the app ledger file. A missing file yields an empty
// ledger, not an error.
func DecodeLedger() (*tcg.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, using an empty ledger instead")
		return tcg.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tcg.DecodeLedger(f)
}

// appendTransaction validates a transaction against the current ledger and
// appends it to the app ledger file.
func appendTransaction(tx tcg.Transaction) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	tx, err = ledger.Validate(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error validating transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tcg.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown report for the terminal, falling back to
// the raw text when rendering fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// parseMoney parses a decimal amount flag into a Money in the app currency.
func parseMoney(s string) (tcg.Money, error) {
	if s == "" {
		return tcg.M(0, *currency), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return tcg.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return tcg.M(d, *currency), nil
}

// parseRange builds an inclusive date range from optional -from/-to flags.
func parseRange(from, to string) (tcg.Range, error) {
	var r tcg.Range
	var err error
	if from != "" {
		if r.From, err = tcg.ParseDate(from); err != nil {
			return tcg.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if to != "" {
		if r.To, err = tcg.ParseDate(to); err != nil {
			return tcg.Range{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return tcg.NewRange(r.From, r.To), nil
}

// lineItem is the parsed form of a repeatable "-i product:qty:amount" flag.
type lineItem struct {
	Product  uuid.UUID
	Quantity int64
	Amount   tcg.Money
}

// lineItemsFlag collects repeatable "-i" flags of the form
// "<product-id>:<quantity>:<unit-amount>".
type lineItemsFlag []lineItem

func (l *lineItemsFlag) String() string { return fmt.Sprintf("%d item(s)", len(*l)) }

func (l *lineItemsFlag) Set(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return fmt.Errorf("invalid line item %q, want <product-id>:<quantity>:<unit-amount>", value)
	}
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", parts[0], err)
	}
	qty, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", parts[1], err)
	}
	amount, err := parseMoney(parts[2])
	if err != nil {
		return err
	}
	*l = append(*l, lineItem{Product: id, Quantity: qty, Amount: amount})
	return nil
}
