package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/encoding/bytesutil"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// PreState returns the state a block was applied to, keyed by the block's root.
// A missing state returns nil without an error.
func (s *Store) PreState(ctx context.Context, blockRoot [32]byte) (*containers.BeaconStateData, error) {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.PreState")
	defer span.End()

	var enc []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		enc = bytesutil.SafeCopyBytes(tx.Bucket(preStatesBucket).Get(blockRoot[:]))
		return nil
	}); err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, nil
	}
	st := &structs.BeaconState{}
	if err := decode(ctx, enc, st); err != nil {
		return nil, errors.Wrapf(err, "could not decode pre-state of block %#x", blockRoot)
	}
	return st.ToConsensus()
}

// HasPreState checks if a pre-state for the block root exists in the db.
func (s *Store) HasPreState(ctx context.Context, blockRoot [32]byte) bool {
	_, span := trace.StartSpan(ctx, "BeaconDB.HasPreState")
	defer span.End()

	exists := false
	if err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(preStatesBucket).Get(blockRoot[:]) != nil
		return nil
	}); err != nil {
		panic(err)
	}
	return exists
}

// SavePreState stores the state advanced to the slot of the block with the given root.
func (s *Store) SavePreState(ctx context.Context, blockRoot [32]byte, st *containers.BeaconStateData) error {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.SavePreState")
	defer span.End()

	if blockRoot == [32]byte{} {
		return errEmptyBlockRoot
	}
	if st == nil {
		return errors.New("cannot save nil state")
	}
	enc, err := encode(ctx, structs.BeaconStateFromConsensus(st))
	if err != nil {
		return errors.Wrap(err, "could not encode state")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(preStatesBucket).Put(blockRoot[:], enc)
	})
}
