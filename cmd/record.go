package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	tcg "github.com/movags95/trackmytcg"
)

// --- Product Command ---

type productCmd struct {
	tcgName   string
	set       string
	setCode   string
	prodType  string
	typeCode  string
	name      string
	packCount int64
	listed    bool
}

func (*productCmd) Name() string     { return "product" }
func (*productCmd) Synopsis() string { return "declare a product in the ledger" }
func (*productCmd) Usage() string {
	return `product -tcg <game> -set <set> -type <type> -name <name> [-packs <n>] [-listed]

  Declares a product. Purchases, sales and openings reference it by the id
  printed on success.
`
}

func (c *productCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tcgName, "tcg", "", "Trading card game name (e.g. Pokemon)")
	f.StringVar(&c.set, "set", "", "Set name")
	f.StringVar(&c.setCode, "set-code", "", "Optional set code (e.g. SV04)")
	f.StringVar(&c.prodType, "type", "", "Product type (e.g. Booster Box)")
	f.StringVar(&c.typeCode, "type-code", "", "Optional product type code")
	f.StringVar(&c.name, "name", "", "Product display name")
	f.Int64Var(&c.packCount, "packs", 0, "Number of packs in one unit, when applicable")
	f.BoolVar(&c.listed, "listed", false, "Mark the product as currently listed for sale")
}

func (c *productCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tcgName == "" || c.set == "" || c.prodType == "" || c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	tx := tcg.NewDefineProduct(tcg.Today(), tcg.Product{
		ID:        uuid.New(),
		TCG:       c.tcgName,
		Set:       c.set,
		SetCode:   c.setCode,
		Type:      c.prodType,
		TypeCode:  c.typeCode,
		Name:      c.name,
		PackCount: c.packCount,
		Listed:    c.listed,
	})
	status := appendTransaction(tx)
	if status == subcommands.ExitSuccess {
		fmt.Printf("Product id: %s\n", tx.ID)
	}
	return status
}

// --- Purchase Command ---

type purchaseCmd struct {
	date   string
	vendor string
	online bool
	fee    string
	status string
	memo   string
	items  lineItemsFlag
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record a purchase of sealed product" }
func (*purchaseCmd) Usage() string {
	return `purchase -d <date> -vendor <vendor> -i <product>:<qty>:<unit-cost> [-i ...] [-fee <delivery-fee>] [-status <status>]

  Records a purchase. The delivery fee is spread across line items
  proportionally to cost when computing average unit costs.
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tcg.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.vendor, "vendor", "", "Vendor the purchase was made from")
	f.BoolVar(&c.online, "online", false, "Purchase was made online")
	f.StringVar(&c.fee, "fee", "", "Delivery fee for the whole purchase")
	f.StringVar(&c.status, "status", "RECEIVED", "Purchase status (PREORDER, AWAITING, RECEIVED)")
	f.StringVar(&c.memo, "m", "", "An optional note for the transaction")
	f.Var(&c.items, "i", "Line item as <product-id>:<quantity>:<unit-cost>, repeatable")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.vendor == "" || len(c.items) == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tcg.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	fee, err := parseMoney(c.fee)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	status, err := tcg.ParsePurchaseStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	items := make([]tcg.PurchaseLineItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, tcg.PurchaseLineItem{Product: it.Product, Quantity: it.Quantity, UnitCost: it.Amount})
	}
	tx := tcg.NewPurchase(day, *owner, c.memo, c.vendor, fee, status, items...)
	tx.Online = c.online
	return appendTransaction(tx)
}

// --- Sale Command ---

type saleCmd struct {
	date     string
	platform string
	shipping string
	fees     string
	tax      string
	paidBy   string
	saleURL  string
	buyer    string
	memo     string
	items    lineItemsFlag
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a sale" }
func (*saleCmd) Usage() string {
	return `sale -d <date> -platform <platform> -i <product>:<qty>:<unit-price> [-i ...] [-shipping <n>] [-fees <n>] [-tax <n>]

  Records a sale. Shipping, platform fees and tax are allocated to line items
  proportionally to gross revenue when computing profit.
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tcg.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.platform, "platform", "", "Platform the sale was made on (e.g. eBay)")
	f.StringVar(&c.shipping, "shipping", "", "Shipping cost for the whole sale")
	f.StringVar(&c.fees, "fees", "", "Platform fees for the whole sale")
	f.StringVar(&c.tax, "tax", "", "Tax for the whole sale")
	f.StringVar(&c.paidBy, "shipping-paid-by", "SELLER", "Who paid the shipping (BUYER or SELLER)")
	f.StringVar(&c.saleURL, "url", "", "Optional listing URL")
	f.StringVar(&c.buyer, "buyer", "", "Optional buyer name")
	f.StringVar(&c.memo, "m", "", "An optional note for the transaction")
	f.Var(&c.items, "i", "Line item as <product-id>:<quantity>:<unit-price>, repeatable")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.platform == "" || len(c.items) == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tcg.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	var shipping, fees, tax tcg.Money
	for _, m := range []struct {
		dst *tcg.Money
		src string
	}{{&shipping, c.shipping}, {&fees, c.fees}, {&tax, c.tax}} {
		if *m.dst, err = parseMoney(m.src); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	items := make([]tcg.SaleLineItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, tcg.SaleLineItem{Product: it.Product, Quantity: it.Quantity, UnitPrice: it.Amount})
	}
	tx := tcg.NewSale(day, *owner, c.memo, c.platform, shipping, fees, tax, items...)
	tx.ShippingPaidBy = tcg.ShippingPayer(strings.ToUpper(c.paidBy))
	tx.SaleURL = c.saleURL
	tx.Buyer = c.buyer
	return appendTransaction(tx)
}

// --- Opening Command ---

type openingCmd struct {
	date  string
	memo  string
	items openingItemsFlag
}

func (*openingCmd) Name() string     { return "opening" }
func (*openingCmd) Synopsis() string { return "record sealed product opened for personal use" }
func (*openingCmd) Usage() string {
	return `opening -d <date> -i <product>:<qty> [-i ...]

  Records product opened rather than sold. Inventory goes down; no revenue
  is recognized.
`
}

func (c *openingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tcg.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.memo, "m", "", "An optional note for the transaction")
	f.Var(&c.items, "i", "Line item as <product-id>:<quantity>, repeatable")
}

func (c *openingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.items) == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tcg.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tcg.NewOpening(day, *owner, c.memo, c.items...))
}

// openingItemsFlag collects repeatable "-i" flags of the form
// "<product-id>:<quantity>".
type openingItemsFlag []tcg.OpeningLineItem

func (l *openingItemsFlag) String() string { return fmt.Sprintf("%d item(s)", len(*l)) }

func (l *openingItemsFlag) Set(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid line item %q, want <product-id>:<quantity>", value)
	}
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", parts[0], err)
	}
	qty, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", parts[1], err)
	}
	*l = append(*l, tcg.OpeningLineItem{Product: id, Quantity: qty})
	return nil
}
