package main

import (
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/encoding/bytesutil"
)

// envelope is the {"version": ..., "data": ...} wrapper returned by beacon API debug endpoints.
type envelope struct {
	Data jsoniter.RawMessage `json:"data"`
}

// decodeFile reads a beacon API payload from path into v, unwrapping the response envelope if present.
func decodeFile(path string, v interface{}) error {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	env := &envelope{}
	if err := structs.Unmarshal(path, data, env); err == nil && len(env.Data) > 0 {
		return errors.Wrapf(structs.Unmarshal("data.json", env.Data, v), "could not decode %s", path)
	}
	return errors.Wrapf(structs.Unmarshal(path, data, v), "could not decode %s", path)
}

func loadBlock(path string) (*containers.SignedBeaconBlock, error) {
	b := &structs.SignedBeaconBlock{}
	if err := decodeFile(path, b); err != nil {
		return nil, err
	}
	blk, err := b.ToConsensus()
	if err != nil {
		return nil, errors.Wrap(err, "could not convert block")
	}
	return blk, nil
}

func loadPreState(path string) (*containers.BeaconStateData, error) {
	s := &structs.BeaconState{}
	if err := decodeFile(path, s); err != nil {
		return nil, err
	}
	st, err := s.ToConsensus()
	if err != nil {
		return nil, errors.Wrap(err, "could not convert pre-state")
	}
	return st, nil
}

func parseRoot(s string) ([32]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not decode block root")
	}
	if len(b) != 32 {
		return [32]byte{}, errors.Errorf("block root must be 32 bytes, got %d", len(b))
	}
	return bytesutil.ToBytes32(b), nil
}
