package primitives

import (
	"fmt"

	"github.com/pkg/errors"
)

var errOverflow = errors.New("arithmetic overflow")

// Slot represents a single slot.
type Slot uint64

// Add increases slot by x. Panics on overflow.
func (s Slot) Add(x uint64) Slot {
	res, err := s.SafeAdd(x)
	if err != nil {
		panic(err)
	}
	return res
}

// SafeAdd increases slot by x, returning an error on overflow.
func (s Slot) SafeAdd(x uint64) (Slot, error) {
	if uint64(s) > ^uint64(0)-x {
		return 0, errors.Wrapf(errOverflow, "slot %d + %d", s, x)
	}
	return s + Slot(x), nil
}

// Sub subtracts x from the slot. Panics on underflow.
func (s Slot) Sub(x uint64) Slot {
	res, err := s.SafeSub(x)
	if err != nil {
		panic(err)
	}
	return res
}

// SafeSub subtracts x from the slot, returning an error on underflow.
func (s Slot) SafeSub(x uint64) (Slot, error) {
	if uint64(s) < x {
		return 0, errors.Wrapf(errOverflow, "slot %d - %d", s, x)
	}
	return s - Slot(x), nil
}

// Mod returns the remainder of the slot divided by x.
func (s Slot) Mod(x uint64) Slot {
	if x == 0 {
		panic("modulo by zero")
	}
	return Slot(uint64(s) % x)
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	return fmt.Sprintf("%d", uint64(s))
}
