package tcg

import "github.com/google/uuid"

// Fixed product ids so test ledgers are reproducible.
var (
	boosterBox = uuid.MustParse("0b1f8a52-8f44-4f26-9d53-2f3a4f1c9e01")
	eliteBox   = uuid.MustParse("1c2e9b63-9a55-4a37-8e64-3a4b5c2d0f12")
	oneBox     = uuid.MustParse("2d3f0c74-ab66-4b48-9f75-4b5c6d3e1a23")
)

// GBP is a helper for tests to create pound money from const.
func GBP(v float64) Money { return M(v, "GBP") }

// NO is a helper for tests to create money from const with no currency set.
func NO(v float64) Money { return M(v, "") }

// testProducts declares the products used by most test ledgers.
func testProducts() []Transaction {
	return []Transaction{
		NewDefineProduct(MustParse("2025-01-01"), Product{
			ID: boosterBox, TCG: "Pokemon", Set: "Surging Sparks", SetCode: "SSP",
			Type: "Booster Box", Name: "Surging Sparks Booster Box", PackCount: 36,
		}),
		NewDefineProduct(MustParse("2025-01-01"), Product{
			ID: eliteBox, TCG: "Pokemon", Set: "Prismatic Evolutions", SetCode: "PRE",
			Type: "Elite Trainer Box", Name: "Prismatic Evolutions ETB", PackCount: 9, Listed: true,
		}),
		NewDefineProduct(MustParse("2025-01-01"), Product{
			ID: oneBox, TCG: "One Piece", Set: "OP-09", Type: "Booster Box",
			Name: "OP-09 Booster Box", PackCount: 24,
		}),
	}
}

// newTestLedger builds a ledger with the standard products plus the given
// transactions.
func newTestLedger(txs ...Transaction) *Ledger {
	l := NewLedger()
	l.Append(testProducts()...)
	l.Append(txs...)
	return l
}
