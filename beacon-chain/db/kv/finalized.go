package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/encoding/bytesutil"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// SaveFinalizedSlot records the latest finalized slot reported by the source node.
// The finalized slot never moves backwards.
func (s *Store) SaveFinalizedSlot(ctx context.Context, slot primitives.Slot) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveFinalizedSlot")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(chainMetadataBucket)
		if enc := bkt.Get(finalizedSlotKey); enc != nil && bytesutil.BytesToSlotBigEndian(enc) > slot {
			return errors.Errorf("finalized slot %d is lower than stored finalized slot %d", slot, bytesutil.BytesToSlotBigEndian(enc))
		}
		return bkt.Put(finalizedSlotKey, bytesutil.SlotToBytesBigEndian(slot))
	})
}

// FinalizedSlot returns the latest finalized slot, or ErrNotFound if none was saved.
func (s *Store) FinalizedSlot(ctx context.Context) (primitives.Slot, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.FinalizedSlot")
	defer span.End()

	var slot primitives.Slot
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(chainMetadataBucket).Get(finalizedSlotKey)
		if enc == nil {
			return nil
		}
		slot = bytesutil.BytesToSlotBigEndian(enc)
		found = true
		return nil
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNotFound
	}
	return slot, nil
}

// IsFinalizedSlot reports whether slot is at or before the finalized slot.
func (s *Store) IsFinalizedSlot(ctx context.Context, slot primitives.Slot) bool {
	finalized, err := s.FinalizedSlot(ctx)
	if err != nil {
		return false
	}
	return slot <= finalized
}
