package kv

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/encoding/bytesutil"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// Block retrieval by root. A missing block returns nil without an error.
func (s *Store) Block(ctx context.Context, blockRoot [32]byte) (*containers.SignedBeaconBlock, error) {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.Block")
	defer span.End()

	var enc []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		enc = bytesutil.SafeCopyBytes(tx.Bucket(blocksBucket).Get(blockRoot[:]))
		return nil
	}); err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, nil
	}
	blk := &structs.SignedBeaconBlock{}
	if err := decode(ctx, enc, blk); err != nil {
		return nil, errors.Wrapf(err, "could not decode block %#x", blockRoot)
	}
	return blk.ToConsensus()
}

// HasBlock checks if a block by root exists in the db.
func (s *Store) HasBlock(ctx context.Context, blockRoot [32]byte) bool {
	_, span := trace.StartSpan(ctx, "BeaconDB.HasBlock")
	defer span.End()

	exists := false
	if err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(blocksBucket).Get(blockRoot[:]) != nil
		return nil
	}); err != nil { // This view never returns an error, but we'll handle anyway for sanity.
		panic(err)
	}
	return exists
}

// SaveBlock stores a signed block under the root it was published with and indexes it by slot.
// The root is supplied by the caller since blocks arrive from the beacon API already identified.
func (s *Store) SaveBlock(ctx context.Context, blockRoot [32]byte, blk *containers.SignedBeaconBlock) error {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.SaveBlock")
	defer span.End()

	if blockRoot == [32]byte{} {
		return errEmptyBlockRoot
	}
	if blk == nil || blk.Block == nil {
		return errors.New("cannot save nil block")
	}
	enc, err := encode(ctx, structs.SignedBeaconBlockFromConsensus(blk))
	if err != nil {
		return errors.Wrap(err, "could not encode block")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := updateSlotIndex(tx, blk.Block.Slot, blockRoot); err != nil {
			return errors.Wrap(err, "could not update block slot index")
		}
		return tx.Bucket(blocksBucket).Put(blockRoot[:], enc)
	})
}

// BlockRootsBySlot retrieves the roots of every stored block at the given slot.
func (s *Store) BlockRootsBySlot(ctx context.Context, slot primitives.Slot) ([][32]byte, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.BlockRootsBySlot")
	defer span.End()

	var roots [][32]byte
	err := s.db.View(func(tx *bolt.Tx) error {
		roots = splitRoots(tx.Bucket(blockSlotIndicesBucket).Get(bytesutil.SlotToBytesBigEndian(slot)))
		return nil
	})
	return roots, err
}

// BlockRootsInSlotRange retrieves the roots of blocks with start <= slot <= end, ordered by slot.
func (s *Store) BlockRootsInSlotRange(ctx context.Context, start, end primitives.Slot) ([]primitives.Slot, [][32]byte, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.BlockRootsInSlotRange")
	defer span.End()

	if end < start {
		return nil, nil, errors.Errorf("end slot %d < start slot %d", end, start)
	}
	slots := make([]primitives.Slot, 0)
	roots := make([][32]byte, 0)
	endKey := bytesutil.SlotToBytesBigEndian(end)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(blockSlotIndicesBucket).Cursor()
		for k, v := c.Seek(bytesutil.SlotToBytesBigEndian(start)); k != nil && bytes.Compare(k, endKey) <= 0; k, v = c.Next() {
			slot := bytesutil.BytesToSlotBigEndian(k)
			for _, r := range splitRoots(v) {
				slots = append(slots, slot)
				roots = append(roots, r)
			}
		}
		return nil
	})
	return slots, roots, err
}

// HeadRoot returns the root of the stored block with the highest slot. When several blocks share
// that slot, the most recently saved one wins.
func (s *Store) HeadRoot(ctx context.Context) ([32]byte, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.HeadRoot")
	defer span.End()

	var root [32]byte
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		_, v := tx.Bucket(blockSlotIndicesBucket).Cursor().Last()
		roots := splitRoots(v)
		if len(roots) == 0 {
			return nil
		}
		root = roots[len(roots)-1]
		found = true
		return nil
	})
	if err != nil {
		return [32]byte{}, err
	}
	if !found {
		return [32]byte{}, errors.Wrap(ErrNotFound, "no blocks in db")
	}
	return root, nil
}

// updateSlotIndex appends root to the slot's index entry unless it is already there.
func updateSlotIndex(tx *bolt.Tx, slot primitives.Slot, root [32]byte) error {
	bkt := tx.Bucket(blockSlotIndicesBucket)
	key := bytesutil.SlotToBytesBigEndian(slot)
	existing := bkt.Get(key)
	for i := 0; i+hashLength <= len(existing); i += hashLength {
		if bytes.Equal(existing[i:i+hashLength], root[:]) {
			return nil
		}
	}
	val := make([]byte, 0, len(existing)+hashLength)
	val = append(val, existing...)
	val = append(val, root[:]...)
	return bkt.Put(key, val)
}

func splitRoots(b []byte) [][32]byte {
	roots := make([][32]byte, 0, len(b)/hashLength)
	for i := 0; i+hashLength <= len(b); i += hashLength {
		roots = append(roots, bytesutil.ToBytes32(b[i:i+hashLength]))
	}
	return roots
}
