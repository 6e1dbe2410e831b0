package tcg

import (
	"github.com/google/uuid"
)

// Product is the sealed-product master data a ledger operates on: one entry
// per purchasable item (a booster box, an elite trainer box...), attached to a
// trading card game and one of its sets.
//
// Products are immutable reference data from the engine's perspective: they
// are declared in the ledger stream and never derived.
type Product struct {
	ID        uuid.UUID `json:"id"`
	TCG       string    `json:"tcg"`
	Set       string    `json:"set"`
	SetCode   string    `json:"setCode,omitempty"`
	Type      string    `json:"type"`               // e.g. "Booster Box"
	TypeCode  string    `json:"typeCode,omitempty"` // e.g. "BB"
	Name      string    `json:"name"`
	PackCount int64     `json:"packCount"`
	Listed    bool      `json:"listed"`
}

// SetKey identifies a set by the (TCG, Set) name pair, so that identically
// named sets from different games do not collapse into one group.
type SetKey struct {
	TCG string
	Set string
}

func (k SetKey) String() string { return k.TCG + " - " + k.Set }

// SetKey returns the product's set grouping key.
func (p Product) SetKey() SetKey { return SetKey{TCG: p.TCG, Set: p.Set} }
