// Package iface defines the actual database interface used
// by a block rewards node, also containing useful, scoped interfaces such as
// a ReadOnlyDatabase.
package iface

import (
	"context"
	"io"

	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

// ReadOnlyDatabase defines a struct which only has read access to database methods.
type ReadOnlyDatabase interface {
	// Block related methods.
	Block(ctx context.Context, blockRoot [32]byte) (*containers.SignedBeaconBlock, error)
	BlockRootsBySlot(ctx context.Context, slot primitives.Slot) ([][32]byte, error)
	BlockRootsInSlotRange(ctx context.Context, start, end primitives.Slot) ([]primitives.Slot, [][32]byte, error)
	HasBlock(ctx context.Context, blockRoot [32]byte) bool
	HeadRoot(ctx context.Context) ([32]byte, error)
	// State related methods.
	PreState(ctx context.Context, blockRoot [32]byte) (*containers.BeaconStateData, error)
	HasPreState(ctx context.Context, blockRoot [32]byte) bool
	// Finality.
	FinalizedSlot(ctx context.Context) (primitives.Slot, error)
	IsFinalizedSlot(ctx context.Context, slot primitives.Slot) bool
}

// NoHeadAccessDatabase defines a struct without access to chain head data.
type NoHeadAccessDatabase interface {
	ReadOnlyDatabase

	SaveBlock(ctx context.Context, blockRoot [32]byte, blk *containers.SignedBeaconBlock) error
	SavePreState(ctx context.Context, blockRoot [32]byte, st *containers.BeaconStateData) error
	SaveFinalizedSlot(ctx context.Context, slot primitives.Slot) error
}

// Database interface with full access.
type Database interface {
	io.Closer
	NoHeadAccessDatabase

	DatabasePath() string
	ClearDB() error
	Backup(ctx context.Context, outputDir string, permissionOverride bool) error
}
