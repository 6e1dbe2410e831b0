package tcg

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// purchaseItemCmd is a specialized struct for decoding purchase line items,
// where the unit cost is a bare decimal in the transaction's currency.
type purchaseItemCmd struct {
	Product  uuid.UUID       `json:"product"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// saleItemCmd is a specialized struct for decoding sale line items.
type saleItemCmd struct {
	Product   uuid.UUID       `json:"product"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

func marshalPurchaseItems(items []PurchaseLineItem) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, li := range items {
		var w jsonObjectWriter
		w.Append("product", li.Product)
		w.Append("quantity", li.Quantity)
		w.Append("unitCost", li.UnitCost.amount())
		raw, err := w.MarshalJSON()
		if err != nil {
			// Line items only hold marshalable scalar types.
			panic(err)
		}
		out = append(out, raw)
	}
	return out
}

func marshalSaleItems(items []SaleLineItem) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, li := range items {
		var w jsonObjectWriter
		w.Append("product", li.Product)
		w.Append("quantity", li.Quantity)
		w.Append("unitPrice", li.UnitPrice.amount())
		raw, err := w.MarshalJSON()
		if err != nil {
			panic(err)
		}
		out = append(out, raw)
	}
	return out
}

// DecodeLedger decodes transactions from a stream of JSONL data from an
// io.Reader, decodes each line into the appropriate transaction struct, and
// returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		var decodedTx Transaction
		var err error

		switch identifier.Command {
		case CmdProduct:
			var tx DefineProduct
			err = json.Unmarshal(lineBytes, &tx)
			decodedTx = tx
		case CmdPurchase:
			var temp struct {
				baseCmd
				Vendor      string            `json:"vendor"`
				Online      bool              `json:"online"`
				DeliveryFee decimal.Decimal   `json:"deliveryFee"`
				Status      PurchaseStatus    `json:"status"`
				Items       []purchaseItemCmd `json:"items"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			items := make([]PurchaseLineItem, 0, len(temp.Items))
			for _, it := range temp.Items {
				items = append(items, PurchaseLineItem{
					Product:  it.Product,
					Quantity: it.Quantity,
					UnitCost: M(it.UnitCost, temp.Currency),
				})
			}
			decodedTx = Purchase{
				baseCmd:     temp.baseCmd,
				Vendor:      temp.Vendor,
				Online:      temp.Online,
				DeliveryFee: M(temp.DeliveryFee, temp.Currency),
				Status:      temp.Status,
				Items:       items,
			}
		case CmdSale:
			var temp struct {
				baseCmd
				Platform       string          `json:"platform"`
				ShippingPaidBy ShippingPayer   `json:"shippingPaidBy"`
				ShippingCost   decimal.Decimal `json:"shippingCost"`
				PlatformFees   decimal.Decimal `json:"platformFees"`
				Tax            decimal.Decimal `json:"tax"`
				SaleURL        string          `json:"saleUrl"`
				Buyer          string          `json:"buyer"`
				Items          []saleItemCmd   `json:"items"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			items := make([]SaleLineItem, 0, len(temp.Items))
			for _, it := range temp.Items {
				items = append(items, SaleLineItem{
					Product:   it.Product,
					Quantity:  it.Quantity,
					UnitPrice: M(it.UnitPrice, temp.Currency),
				})
			}
			decodedTx = Sale{
				baseCmd:        temp.baseCmd,
				Platform:       temp.Platform,
				ShippingPaidBy: temp.ShippingPaidBy,
				ShippingCost:   M(temp.ShippingCost, temp.Currency),
				PlatformFees:   M(temp.PlatformFees, temp.Currency),
				Tax:            M(temp.Tax, temp.Currency),
				SaleURL:        temp.SaleURL,
				Buyer:          temp.Buyer,
				Items:          items,
			}
		case CmdOpening:
			var tx Opening
			err = json.Unmarshal(lineBytes, &tx)
			decodedTx = tx
		default:
			err = fmt.Errorf("unknown transaction command: %q", identifier.Command)
		}

		if err != nil {
			return nil, err
		}
		ledger.Append(decodedTx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return ledger, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger reorders transactions by date and persists them to an
// io.Writer in JSONL format. The sort is stable, meaning transactions on the
// same day maintain their original relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	ledger.stableSort()

	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
