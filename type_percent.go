package tcg

import "fmt"

// Percent is a display-boundary percentage value (e.g. 25.0 for 25%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// ratioPercent computes num/den as a Percent, with a zero-guard on den.
// The division stays in decimal and is converted to float only here, at the
// output boundary.
func ratioPercent(num, den Money) (Percent, bool) {
	if den.IsZero() {
		return 0, false
	}
	ratio := num.amount().Div(den.amount()).Mul(newDecimal(100))
	return Percent(ratio.InexactFloat64()), true
}
