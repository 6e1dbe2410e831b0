package tcg

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	// A JSONL stream with all command types. Monetary fields are bare
	// decimals in the transaction's currency.
	jsonlStream := `
{"command":"product","date":"2025-01-01","id":"0b1f8a52-8f44-4f26-9d53-2f3a4f1c9e01","tcg":"Pokemon","set":"Surging Sparks","setCode":"SSP","type":"Booster Box","name":"Surging Sparks Booster Box","packCount":36}
{"command":"purchase","date":"2025-02-01","owner":"alice","currency":"GBP","vendor":"GameNerdz","deliveryFee":5,"status":"RECEIVED","items":[{"product":"0b1f8a52-8f44-4f26-9d53-2f3a4f1c9e01","quantity":10,"unitCost":2}]}
{"command":"sale","date":"2025-03-01","owner":"alice","currency":"GBP","platform":"eBay","shippingCost":2,"platformFees":1,"tax":0.5,"items":[{"product":"0b1f8a52-8f44-4f26-9d53-2f3a4f1c9e01","quantity":4,"unitPrice":5}]}
{"command":"opening","date":"2025-03-05","owner":"alice","items":[{"product":"0b1f8a52-8f44-4f26-9d53-2f3a4f1c9e01","quantity":1}]}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if len(ledger.transactions) != 4 {
		t.Fatalf("DecodeLedger() decoded %d transactions, want 4", len(ledger.transactions))
	}

	expectedTypes := []reflect.Type{
		reflect.TypeOf(DefineProduct{}),
		reflect.TypeOf(Purchase{}),
		reflect.TypeOf(Sale{}),
		reflect.TypeOf(Opening{}),
	}
	for i, tx := range ledger.Transactions() {
		if reflect.TypeOf(tx) != expectedTypes[i] {
			t.Errorf("Transaction %d has wrong type. Got: %T, want: %v", i+1, tx, expectedTypes[i])
		}
	}

	// Monetary fields must come back carrying the transaction currency.
	purchase := ledger.transactions[1].(Purchase)
	if !purchase.Items[0].UnitCost.Equal(GBP(2)) {
		t.Errorf("decoded unit cost = %s, want %s", purchase.Items[0].UnitCost, GBP(2))
	}
	if !purchase.DeliveryFee.Equal(GBP(5)) {
		t.Errorf("decoded delivery fee = %s, want %s", purchase.DeliveryFee, GBP(5))
	}
	sale := ledger.transactions[2].(Sale)
	if !sale.Tax.Equal(GBP(0.5)) {
		t.Errorf("decoded tax = %s, want %s", sale.Tax, GBP(0.5))
	}

	// The product declaration must be indexed.
	if p := ledger.Product(boosterBox); p == nil || p.PackCount != 36 {
		t.Errorf("Product() = %+v, want the declared booster box", p)
	}
}

func TestEncodeLedger_SortsAndRoundTrips(t *testing.T) {
	// Deliberately unsorted; the two March transactions share a date and
	// must keep their relative order.
	ledger := newTestLedger(
		NewSale(MustParse("2025-03-01"), "alice", "memo", "eBay", GBP(2), GBP(1), GBP(0.50),
			SaleLineItem{Product: boosterBox, Quantity: 4, UnitPrice: GBP(5)},
		),
		NewOpening(MustParse("2025-03-01"), "alice", "",
			OpeningLineItem{Product: boosterBox, Quantity: 1},
		),
		NewPurchase(MustParse("2025-02-01"), "alice", "", "GameNerdz", GBP(5), StatusReceived,
			PurchaseLineItem{Product: boosterBox, Quantity: 10, UnitCost: GBP(2)},
		),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if len(decoded.transactions) != len(ledger.transactions) {
		t.Fatalf("round trip lost transactions: got %d, want %d", len(decoded.transactions), len(ledger.transactions))
	}
	for i, tx := range ledger.transactions {
		if !tx.Equal(decoded.transactions[i]) {
			t.Errorf("transaction %d did not survive the round trip:\n  original: %#v\n  decoded:  %#v", i, tx, decoded.transactions[i])
		}
	}
}

func TestDecodeLedger_UnknownCommand(t *testing.T) {
	_, err := DecodeLedger(strings.NewReader(`{"command":"teleport","date":"2025-01-01"}`))
	if err == nil {
		t.Fatal("DecodeLedger() accepted an unknown command, want an error")
	}
}
