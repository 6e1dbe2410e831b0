package tcg

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// CommandType is a typed string for identifying ledger commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdProduct  CommandType = "product"
	CmdPurchase CommandType = "purchase"
	CmdSale     CommandType = "sale"
	CmdOpening  CommandType = "opening"
)

// PurchaseStatus tracks the delivery state of a purchase. Only received
// purchases count towards cost and inventory.
type PurchaseStatus string

const (
	StatusPreorder PurchaseStatus = "PREORDER"
	StatusAwaiting PurchaseStatus = "AWAITING"
	StatusReceived PurchaseStatus = "RECEIVED"
)

// ParsePurchaseStatus parses a string into a PurchaseStatus.
func ParsePurchaseStatus(s string) (PurchaseStatus, error) {
	switch PurchaseStatus(s) {
	case StatusPreorder, StatusAwaiting, StatusReceived:
		return PurchaseStatus(s), nil
	default:
		return "", fmt.Errorf("unknown purchase status: %q", s)
	}
}

// Transaction defines the common interface for all types of ledger commands:
// product declarations, purchases, sales and openings.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction.
	When() Date        // When returns the date on which the transaction occurred.
	By() string        // By returns the owner the transaction belongs to.
	Equal(Transaction) bool
	Validate(ledger *Ledger) (Transaction, error)
}

type baseCmd struct {
	Command  CommandType `json:"command"`            // Command specifies the type of transaction.
	Date     Date        `json:"date"`               // Date is the date when the transaction took place.
	Owner    string      `json:"owner,omitempty"`    // Owner scopes the transaction to one collection owner.
	Currency string      `json:"currency,omitempty"` // Currency applies to every monetary field of the command.
	Memo     string      `json:"memo,omitempty"`     // Memo provides an optional note for the transaction.
}

func (t baseCmd) What() CommandType { return t.Command }
func (t baseCmd) When() Date        { return t.Date }
func (t baseCmd) By() string        { return t.Owner }

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("owner", t.Owner)
	w.Optional("currency", t.Currency)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate checks the base command fields. It sets the date to today if it's
// zero. It's meant to be embedded in other transaction validation methods.
func (t *baseCmd) Validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

// money builds a Money in the command's currency.
func (t baseCmd) money(m Money) Money { return m.withCurrency(t.Currency) }

// PurchaseLineItem is one product position inside a purchase.
type PurchaseLineItem struct {
	Product  uuid.UUID
	Quantity int64
	UnitCost Money
}

// Cost returns quantity times unit cost for this line item.
func (li PurchaseLineItem) Cost() Money { return li.UnitCost.MulInt(li.Quantity) }

// Purchase records sealed product bought from a vendor, with its line items
// and a delivery fee allocated across them by the costing engine.
type Purchase struct {
	baseCmd
	Vendor      string
	Online      bool
	DeliveryFee Money
	Status      PurchaseStatus
	Items       []PurchaseLineItem
}

// NewPurchase creates a new Purchase transaction.
func NewPurchase(day Date, owner, memo, vendor string, fee Money, status PurchaseStatus, items ...PurchaseLineItem) Purchase {
	return Purchase{
		baseCmd:     baseCmd{Command: CmdPurchase, Date: day, Owner: owner, Currency: fee.Currency(), Memo: memo},
		Vendor:      vendor,
		DeliveryFee: fee,
		Status:      status,
		Items:       items,
	}
}

// Subtotal returns the sum of all line item costs, excluding the delivery fee.
func (t Purchase) Subtotal() Money {
	total := t.money(M(0, ""))
	for _, li := range t.Items {
		total = total.Add(li.Cost())
	}
	return total
}

// TotalCost returns the full cash outflow of the purchase: line items plus
// delivery fee.
func (t Purchase) TotalCost() Money { return t.Subtotal().Add(t.DeliveryFee) }

// Received reports whether the purchase counts towards cost and inventory.
func (t Purchase) Received() bool { return t.Status == StatusReceived }

// MarshalJSON implements the json.Marshaler interface for Purchase.
func (t Purchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("vendor", t.Vendor)
	w.Optional("online", t.Online)
	w.Append("deliveryFee", t.DeliveryFee.amount())
	w.Append("status", t.Status)
	w.Append("items", marshalPurchaseItems(t.Items))
	return w.MarshalJSON()
}

func (t Purchase) Equal(other Transaction) bool {
	o, ok := other.(Purchase)
	return ok && t.baseCmd == o.baseCmd &&
		t.Vendor == o.Vendor && t.Online == o.Online &&
		t.DeliveryFee.Equal(o.DeliveryFee) && t.Status == o.Status &&
		slices.EqualFunc(t.Items, o.Items, func(a, b PurchaseLineItem) bool {
			return a.Product == b.Product && a.Quantity == b.Quantity && a.UnitCost.Equal(b.UnitCost)
		})
}

// Validate checks the Purchase transaction's fields. An empty status is
// quick-fixed to RECEIVED, matching the common case of logging a purchase
// after it arrived.
func (t Purchase) Validate(ledger *Ledger) (Transaction, error) {
	t.baseCmd.Validate()

	if t.Vendor == "" {
		return t, errors.New("purchase vendor is missing")
	}
	if t.Status == "" {
		t.Status = StatusReceived
	}
	if _, err := ParsePurchaseStatus(string(t.Status)); err != nil {
		return t, err
	}
	if t.DeliveryFee.IsNegative() {
		return t, fmt.Errorf("purchase delivery fee must not be negative, got %s", t.DeliveryFee)
	}
	if len(t.Items) == 0 {
		return t, errors.New("purchase has no line items")
	}
	for i, li := range t.Items {
		if li.Quantity <= 0 {
			return t, fmt.Errorf("purchase line item %d quantity must be positive, got %d", i, li.Quantity)
		}
		if li.UnitCost.IsNegative() {
			return t, fmt.Errorf("purchase line item %d unit cost must not be negative, got %s", i, li.UnitCost)
		}
		if ledger.Product(li.Product) == nil {
			return t, fmt.Errorf("purchase line item %d references unknown product %s", i, li.Product)
		}
	}
	return t, nil
}

// SaleLineItem is one product position inside a sale.
type SaleLineItem struct {
	Product   uuid.UUID
	Quantity  int64
	UnitPrice Money
}

// Gross returns quantity times unit sale price for this line item.
func (li SaleLineItem) Gross() Money { return li.UnitPrice.MulInt(li.Quantity) }

// ShippingPayer identifies who paid the shipping on a sale.
type ShippingPayer string

const (
	ShippingPaidByBuyer  ShippingPayer = "BUYER"
	ShippingPaidBySeller ShippingPayer = "SELLER"
)

// Sale records sealed product sold on a platform. Sale-level shipping,
// platform fees and tax are allocated across line items by the revenue engine.
type Sale struct {
	baseCmd
	Platform       string
	ShippingPaidBy ShippingPayer
	ShippingCost   Money
	PlatformFees   Money
	Tax            Money
	SaleURL        string
	Buyer          string
	Items          []SaleLineItem
}

// NewSale creates a new Sale transaction.
func NewSale(day Date, owner, memo, platform string, shipping, fees, tax Money, items ...SaleLineItem) Sale {
	return Sale{
		baseCmd:      baseCmd{Command: CmdSale, Date: day, Owner: owner, Currency: shipping.Currency(), Memo: memo},
		Platform:     platform,
		ShippingCost: shipping,
		PlatformFees: fees,
		Tax:          tax,
		Items:        items,
	}
}

// Gross returns the sale's gross revenue: the sum of line item grosses, before
// any deduction.
func (t Sale) Gross() Money {
	total := t.money(M(0, ""))
	for _, li := range t.Items {
		total = total.Add(li.Gross())
	}
	return total
}

// Deductions returns the sale-level costs: shipping plus platform fees plus tax.
func (t Sale) Deductions() Money {
	return t.ShippingCost.Add(t.PlatformFees).Add(t.Tax)
}

// NetRevenue returns gross revenue minus all sale-level deductions.
func (t Sale) NetRevenue() Money { return t.Gross().Sub(t.Deductions()) }

// MarshalJSON implements the json.Marshaler interface for Sale.
func (t Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("platform", t.Platform)
	w.Optional("shippingPaidBy", string(t.ShippingPaidBy))
	w.Append("shippingCost", t.ShippingCost.amount())
	w.Append("platformFees", t.PlatformFees.amount())
	w.Append("tax", t.Tax.amount())
	w.Optional("saleUrl", t.SaleURL)
	w.Optional("buyer", t.Buyer)
	w.Append("items", marshalSaleItems(t.Items))
	return w.MarshalJSON()
}

func (t Sale) Equal(other Transaction) bool {
	o, ok := other.(Sale)
	return ok && t.baseCmd == o.baseCmd &&
		t.Platform == o.Platform && t.ShippingPaidBy == o.ShippingPaidBy &&
		t.ShippingCost.Equal(o.ShippingCost) && t.PlatformFees.Equal(o.PlatformFees) &&
		t.Tax.Equal(o.Tax) && t.SaleURL == o.SaleURL && t.Buyer == o.Buyer &&
		slices.EqualFunc(t.Items, o.Items, func(a, b SaleLineItem) bool {
			return a.Product == b.Product && a.Quantity == b.Quantity && a.UnitPrice.Equal(b.UnitPrice)
		})
}

// Validate checks the Sale transaction's fields.
func (t Sale) Validate(ledger *Ledger) (Transaction, error) {
	t.baseCmd.Validate()

	if t.Platform == "" {
		return t, errors.New("sale platform is missing")
	}
	switch t.ShippingPaidBy {
	case "", ShippingPaidByBuyer, ShippingPaidBySeller:
	default:
		return t, fmt.Errorf("unknown shipping payer: %q", t.ShippingPaidBy)
	}
	if t.ShippingCost.IsNegative() {
		return t, fmt.Errorf("sale shipping cost must not be negative, got %s", t.ShippingCost)
	}
	if t.PlatformFees.IsNegative() {
		return t, fmt.Errorf("sale platform fees must not be negative, got %s", t.PlatformFees)
	}
	if t.Tax.IsNegative() {
		return t, fmt.Errorf("sale tax must not be negative, got %s", t.Tax)
	}
	if len(t.Items) == 0 {
		return t, errors.New("sale has no line items")
	}
	for i, li := range t.Items {
		if li.Quantity <= 0 {
			return t, fmt.Errorf("sale line item %d quantity must be positive, got %d", i, li.Quantity)
		}
		if li.UnitPrice.IsNegative() {
			return t, fmt.Errorf("sale line item %d unit price must not be negative, got %s", i, li.UnitPrice)
		}
		if ledger.Product(li.Product) == nil {
			return t, fmt.Errorf("sale line item %d references unknown product %s", i, li.Product)
		}
	}
	return t, nil
}

// OpeningLineItem is one product position inside an opening.
type OpeningLineItem struct {
	Product  uuid.UUID `json:"product"`
	Quantity int64     `json:"quantity"`
}

// Opening records sealed product opened for personal use. It removes
// inventory without generating revenue; its cost stays with the original
// purchase.
type Opening struct {
	baseCmd
	Items []OpeningLineItem
}

// NewOpening creates a new Opening transaction.
func NewOpening(day Date, owner, memo string, items ...OpeningLineItem) Opening {
	return Opening{
		baseCmd: baseCmd{Command: CmdOpening, Date: day, Owner: owner, Memo: memo},
		Items:   items,
	}
}

// MarshalJSON implements the json.Marshaler interface for Opening.
func (t Opening) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("items", t.Items)
	return w.MarshalJSON()
}

func (t Opening) Equal(other Transaction) bool {
	o, ok := other.(Opening)
	return ok && t.baseCmd == o.baseCmd && slices.Equal(t.Items, o.Items)
}

// Validate checks the Opening transaction's fields.
func (t Opening) Validate(ledger *Ledger) (Transaction, error) {
	t.baseCmd.Validate()

	if len(t.Items) == 0 {
		return t, errors.New("opening has no line items")
	}
	for i, li := range t.Items {
		if li.Quantity <= 0 {
			return t, fmt.Errorf("opening line item %d quantity must be positive, got %d", i, li.Quantity)
		}
		if ledger.Product(li.Product) == nil {
			return t, fmt.Errorf("opening line item %d references unknown product %s", i, li.Product)
		}
	}
	return t, nil
}

// DefineProduct declares a product in the ledger stream, the way master data
// enters the system. Later purchases, sales and openings reference it by id.
type DefineProduct struct {
	baseCmd
	Product
}

// NewDefineProduct creates a new product declaration. A zero id is assigned a
// fresh one at validation time.
func NewDefineProduct(day Date, p Product) DefineProduct {
	return DefineProduct{
		baseCmd: baseCmd{Command: CmdProduct, Date: day},
		Product: p,
	}
}

// MarshalJSON implements the json.Marshaler interface for DefineProduct.
func (t DefineProduct) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("id", t.ID)
	w.Append("tcg", t.TCG)
	w.Append("set", t.Set)
	w.Optional("setCode", t.SetCode)
	w.Append("type", t.Type)
	w.Optional("typeCode", t.TypeCode)
	w.Append("name", t.Name)
	w.Append("packCount", t.PackCount)
	w.Optional("listed", t.Listed)
	return w.MarshalJSON()
}

func (t DefineProduct) Equal(other Transaction) bool {
	o, ok := other.(DefineProduct)
	return ok && t.baseCmd == o.baseCmd && t.Product == o.Product
}

// Validate checks the product declaration's fields.
func (t DefineProduct) Validate(_ *Ledger) (Transaction, error) {
	t.baseCmd.Validate()

	if t.ID == uuid.Nil {
		t.Product.ID = uuid.New()
	}
	if t.Name == "" {
		return t, errors.New("product name is missing")
	}
	if t.TCG == "" {
		return t, errors.New("product tcg is missing")
	}
	if t.Set == "" {
		return t, errors.New("product set is missing")
	}
	if t.Type == "" {
		return t, errors.New("product type is missing")
	}
	if t.PackCount < 0 {
		return t, fmt.Errorf("product pack count must not be negative, got %d", t.PackCount)
	}
	return t, nil
}

// ByOwner returns a predicate that filters transactions by owner.
func ByOwner(owner string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.By() == owner }
}

// InRange returns a predicate that filters transactions by date range.
func InRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.When()) }
}
