package rewards

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BlockRewards is the breakdown of the consensus rewards a proposer earned for one block, in Gwei.
// Total is always the sum of the other amounts.
type BlockRewards struct {
	ProposerIndex     primitives.ValidatorIndex
	Total             uint64
	Attestations      uint64
	SyncAggregate     uint64
	ProposerSlashings uint64
	AttesterSlashings uint64
}

// ToJSON converts the rewards to their beacon API representation.
func (r *BlockRewards) ToJSON() *structs.BlockRewards {
	return &structs.BlockRewards{
		ProposerIndex:     strconv.FormatUint(uint64(r.ProposerIndex), 10),
		Total:             strconv.FormatUint(r.Total, 10),
		Attestations:      strconv.FormatUint(r.Attestations, 10),
		SyncAggregate:     strconv.FormatUint(r.SyncAggregate, 10),
		ProposerSlashings: strconv.FormatUint(r.ProposerSlashings, 10),
		AttesterSlashings: strconv.FormatUint(r.AttesterSlashings, 10),
	}
}

// BlockRewardsFromJSON parses the beacon API representation of block rewards.
func BlockRewardsFromJSON(j *structs.BlockRewards) (*BlockRewards, error) {
	if j == nil {
		return nil, errors.New("nil block rewards")
	}
	proposerIndex, err := strconv.ParseUint(j.ProposerIndex, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal proposer index")
	}
	total, err := strconv.ParseUint(j.Total, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal total")
	}
	attestations, err := strconv.ParseUint(j.Attestations, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal attestations")
	}
	syncAggregate, err := strconv.ParseUint(j.SyncAggregate, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal sync aggregate")
	}
	proposerSlashings, err := strconv.ParseUint(j.ProposerSlashings, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal proposer slashings")
	}
	attesterSlashings, err := strconv.ParseUint(j.AttesterSlashings, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal attester slashings")
	}
	return &BlockRewards{
		ProposerIndex:     primitives.ValidatorIndex(proposerIndex),
		Total:             total,
		Attestations:      attestations,
		SyncAggregate:     syncAggregate,
		ProposerSlashings: proposerSlashings,
		AttesterSlashings: attesterSlashings,
	}, nil
}

// MarshalJSON encodes the rewards with string-encoded integers.
func (r *BlockRewards) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToJSON())
}

// UnmarshalJSON decodes rewards with string-encoded integers.
func (r *BlockRewards) UnmarshalJSON(b []byte) error {
	j := &structs.BlockRewards{}
	if err := json.Unmarshal(b, j); err != nil {
		return err
	}
	decoded, err := BlockRewardsFromJSON(j)
	if err != nil {
		return err
	}
	*r = *decoded
	return nil
}
