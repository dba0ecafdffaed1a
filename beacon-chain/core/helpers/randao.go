package helpers

import (
	"github.com/prysmaticlabs/blockrewards/beacon-chain/state"
	"github.com/prysmaticlabs/blockrewards/config/params"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/crypto/hash"
	"github.com/prysmaticlabs/blockrewards/encoding/bytesutil"
)

// Seed returns the randao seed used for shuffling of a given epoch.
//
// Pseudocode definition:
//
//	def get_seed(state: BeaconState, epoch: Epoch, domain_type: DomainType) -> Bytes32:
//	  """
//	  Return the seed at ``epoch``.
//	  """
//	  mix = get_randao_mix(state, Epoch(epoch + EPOCHS_PER_HISTORICAL_VECTOR - MIN_SEED_LOOKAHEAD - 1))  # Avoid underflow
//	  return hash(domain_type + uint_to_bytes(epoch) + mix)
func Seed(st state.ReadOnlyBeaconState, epoch primitives.Epoch, domain [4]byte) ([32]byte, error) {
	cfg := params.BeaconConfig()
	// The offset looks down by 1 so the mix is fixed before the lookahead window opens.
	lookAheadEpoch := epoch + cfg.EpochsPerHistoricalVector - cfg.MinSeedLookahead - 1

	randaoMix, err := RandaoMix(st, lookAheadEpoch)
	if err != nil {
		return [32]byte{}, err
	}
	seed := make([]byte, 0, 4+8+len(randaoMix))
	seed = append(seed, domain[:]...)
	seed = append(seed, bytesutil.Bytes8(uint64(epoch))...)
	seed = append(seed, randaoMix...)

	return hash.Hash(seed), nil
}

// RandaoMix returns the randao mix (xor'ed seed)
// of a given slot. It is used to shuffle validators.
//
// Pseudocode definition:
//
//	def get_randao_mix(state: BeaconState, epoch: Epoch) -> Bytes32:
//	  """
//	  Return the randao mix at a recent ``epoch``.
//	  """
//	  return state.randao_mixes[epoch % EPOCHS_PER_HISTORICAL_VECTOR]
func RandaoMix(st state.ReadOnlyBeaconState, epoch primitives.Epoch) ([]byte, error) {
	return st.RandaoMixAtIndex(uint64(epoch % params.BeaconConfig().EpochsPerHistoricalVector))
}
