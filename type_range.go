package tcg

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of dates.
//
// The zero Range is the "all time" range: it contains every date.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// AllTime is the unbounded range.
func AllTime() Range { return Range{} }

// IsAllTime reports whether the range has no bounds at all.
func (r Range) IsAllTime() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains returns true if date is included in the range, boundaries included.
// A zero boundary is treated as unbounded on that side.
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// Days returns an iterator that yields each date within the range, inclusive.
// It panics on an unbounded range.
func (r Range) Days() iter.Seq[Date] {
	if r.From.IsZero() || r.To.IsZero() {
		panic("cannot iterate days of an unbounded range")
	}
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Periods returns an iterator that yields each sequential range of a given
// period 'p' that contains at least one day within the original range 'r'.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for current := r.From; !current.After(r.To); {
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			current = periodRange.To.Add(1)
		}
	}
}

func (r Range) String() string {
	if r.IsAllTime() {
		return "all time"
	}
	return fmt.Sprintf("%s to %s", r.From, r.To)
}
