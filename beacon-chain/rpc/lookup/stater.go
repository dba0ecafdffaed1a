// Package lookup resolves block identifiers and block pre-states from the beacon database.
package lookup

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/db"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	state_native "github.com/prysmaticlabs/blockrewards/beacon-chain/state/state-native"
	"go.opencensus.io/trace"
)

// StateNotFoundError represents an error scenario where a state could not be found.
type StateNotFoundError struct {
	message string
}

// NewStateNotFoundError creates a new error instance.
func NewStateNotFoundError(blockRoot [32]byte) StateNotFoundError {
	return StateNotFoundError{
		message: fmt.Sprintf("pre-state of block %#x not found", blockRoot),
	}
}

// Error returns the underlying error message.
func (e *StateNotFoundError) Error() string {
	return e.message
}

// Stater is responsible for retrieving the state a block was applied to.
type Stater interface {
	PreState(ctx context.Context, blockRoot [32]byte) (state.ReadOnlyBeaconState, error)
}

// StateProvider is a real implementation of Stater.
type StateProvider struct {
	BeaconDB db.ReadOnlyDatabase
}

// PreState returns the pre-state stored for the block with the given root.
func (p *StateProvider) PreState(ctx context.Context, blockRoot [32]byte) (state.ReadOnlyBeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "lookup.PreState")
	defer span.End()

	data, err := p.BeaconDB.PreState(ctx, blockRoot)
	if err != nil {
		return nil, errors.Wrap(err, "could not retrieve pre-state")
	}
	if data == nil {
		e := NewStateNotFoundError(blockRoot)
		return nil, &e
	}
	st, err := state_native.InitializeFromData(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize pre-state")
	}
	return st, nil
}
