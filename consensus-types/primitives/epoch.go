package primitives

import (
	"github.com/pkg/errors"
)

// Epoch represents a single epoch.
type Epoch uint64

// Add increases epoch by x. Panics on overflow.
func (e Epoch) Add(x uint64) Epoch {
	res, err := e.SafeAdd(x)
	if err != nil {
		panic(err)
	}
	return res
}

// SafeAdd increases epoch by x, returning an error on overflow.
func (e Epoch) SafeAdd(x uint64) (Epoch, error) {
	if uint64(e) > ^uint64(0)-x {
		return 0, errors.Wrapf(errOverflow, "epoch %d + %d", e, x)
	}
	return e + Epoch(x), nil
}

// Sub subtracts x from the epoch, saturating at zero.
func (e Epoch) Sub(x uint64) Epoch {
	if uint64(e) < x {
		return 0
	}
	return e - Epoch(x)
}
