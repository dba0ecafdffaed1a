package structs

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

const (
	rootLength      = 32
	signatureLength = 96
	pubkeyLength    = 48
)

var (
	errNilValue         = errors.New("nil value")
	errMissingLengthBit = errors.New("bitlist is missing its length bit")
)

func decodeHexWithLength(s string, length int) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != length {
		return nil, fmt.Errorf("%s is not length %d bytes", s, length)
	}
	return b, nil
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func formatUint(u uint64) string {
	return strconv.FormatUint(u, 10)
}

func (c *Checkpoint) ToConsensus() (*containers.Checkpoint, error) {
	if c == nil {
		return nil, errNilValue
	}
	epoch, err := parseUint(c.Epoch)
	if err != nil {
		return nil, server.NewDecodeError(err, "Epoch")
	}
	root, err := decodeHexWithLength(c.Root, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "Root")
	}
	return &containers.Checkpoint{
		Epoch: primitives.Epoch(epoch),
		Root:  root,
	}, nil
}

func CheckpointFromConsensus(c *containers.Checkpoint) *Checkpoint {
	if c == nil {
		return nil
	}
	return &Checkpoint{
		Epoch: formatUint(uint64(c.Epoch)),
		Root:  hexutil.Encode(c.Root),
	}
}
