package lookup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/db"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/db/kv"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/encoding/bytesutil"
	"go.opencensus.io/trace"
)

// BlockIdParseError represents an error scenario where a block ID could not be parsed.
type BlockIdParseError struct {
	message string
}

// NewBlockIdParseError creates a new error instance.
func NewBlockIdParseError(reason error) BlockIdParseError {
	return BlockIdParseError{
		message: errors.Wrapf(reason, "could not parse block ID").Error(),
	}
}

// Error returns the underlying error message.
func (e *BlockIdParseError) Error() string {
	return e.message
}

// BlockNotFoundError represents an error scenario where a block could not be found.
type BlockNotFoundError struct {
	message string
}

// NewBlockNotFoundError creates a new error instance.
func NewBlockNotFoundError(msg string) BlockNotFoundError {
	return BlockNotFoundError{
		message: msg,
	}
}

// Error returns the underlying error message.
func (e *BlockNotFoundError) Error() string {
	return e.message
}

// Blocker is responsible for retrieving blocks.
type Blocker interface {
	Block(ctx context.Context, id []byte) ([32]byte, *containers.SignedBeaconBlock, error)
}

// BeaconDbBlocker is an implementation of Blocker. It retrieves blocks from the beacon chain database.
type BeaconDbBlocker struct {
	BeaconDB db.ReadOnlyDatabase
}

// Block returns the block and its root for a given identifier. The identifier can be one of:
//   - "head" (highest stored slot)
//   - "genesis"
//   - "finalized"
//   - <slot>
//   - <hex encoded block root with '0x' prefix>
//
// When several stored blocks share a slot, the first one saved is returned.
func (p *BeaconDbBlocker) Block(ctx context.Context, id []byte) ([32]byte, *containers.SignedBeaconBlock, error) {
	ctx, span := trace.StartSpan(ctx, "lookup.Block")
	defer span.End()

	var (
		root [32]byte
		err  error
	)
	blockId := strings.ToLower(string(id))
	switch blockId {
	case "head":
		root, err = p.BeaconDB.HeadRoot(ctx)
		if err != nil {
			if errors.Is(err, kv.ErrNotFound) {
				e := NewBlockNotFoundError("no head block")
				return [32]byte{}, nil, &e
			}
			return [32]byte{}, nil, errors.Wrap(err, "could not retrieve head root")
		}
	case "genesis":
		root, err = p.rootAtSlot(ctx, 0)
	case "finalized":
		root, err = p.finalizedRoot(ctx)
	default:
		if strings.HasPrefix(blockId, "0x") {
			b, decodeErr := hexutil.Decode(blockId)
			if decodeErr != nil {
				e := NewBlockIdParseError(decodeErr)
				return [32]byte{}, nil, &e
			}
			if len(b) != 32 {
				e := NewBlockIdParseError(fmt.Errorf("root has length %d, expected 32", len(b)))
				return [32]byte{}, nil, &e
			}
			root = bytesutil.ToBytes32(b)
		} else {
			slot, parseErr := strconv.ParseUint(blockId, 10, 64)
			if parseErr != nil {
				// ID format does not match any valid options.
				e := NewBlockIdParseError(parseErr)
				return [32]byte{}, nil, &e
			}
			root, err = p.rootAtSlot(ctx, primitives.Slot(slot))
		}
	}
	if err != nil {
		return [32]byte{}, nil, err
	}

	blk, err := p.BeaconDB.Block(ctx, root)
	if err != nil {
		return [32]byte{}, nil, errors.Wrap(err, "could not retrieve block")
	}
	if blk == nil {
		e := NewBlockNotFoundError(fmt.Sprintf("block %#x not found", root))
		return [32]byte{}, nil, &e
	}
	return root, blk, nil
}

func (p *BeaconDbBlocker) rootAtSlot(ctx context.Context, slot primitives.Slot) ([32]byte, error) {
	roots, err := p.BeaconDB.BlockRootsBySlot(ctx, slot)
	if err != nil {
		return [32]byte{}, errors.Wrapf(err, "could not retrieve block roots for slot %d", slot)
	}
	if len(roots) == 0 {
		e := NewBlockNotFoundError(fmt.Sprintf("no block at slot %d", slot))
		return [32]byte{}, &e
	}
	return roots[0], nil
}

// finalizedRoot returns the last block at or before the finalized slot.
func (p *BeaconDbBlocker) finalizedRoot(ctx context.Context) ([32]byte, error) {
	slot, err := p.BeaconDB.FinalizedSlot(ctx)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			e := NewBlockNotFoundError("no finalized slot recorded")
			return [32]byte{}, &e
		}
		return [32]byte{}, errors.Wrap(err, "could not retrieve finalized slot")
	}
	_, roots, err := p.BeaconDB.BlockRootsInSlotRange(ctx, 0, slot)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not retrieve finalized block root")
	}
	if len(roots) == 0 {
		e := NewBlockNotFoundError(fmt.Sprintf("no block at or before finalized slot %d", slot))
		return [32]byte{}, &e
	}
	return roots[len(roots)-1], nil
}
