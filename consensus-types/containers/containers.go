// Package containers defines the consensus containers read by block reward accounting.
// Field names follow the consensus specs so that API payloads map onto them one to one.
package containers

import (
	types "github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/go-bitfield"
)

// Validator is a validator record as stored in the beacon state.
type Validator struct {
	PublicKey                  []byte
	WithdrawalCredentials      []byte
	EffectiveBalance           uint64
	Slashed                    bool
	ActivationEligibilityEpoch types.Epoch
	ActivationEpoch            types.Epoch
	ExitEpoch                  types.Epoch
	WithdrawableEpoch          types.Epoch
}

// Copy returns a deep copy of the validator record.
func (v *Validator) Copy() *Validator {
	if v == nil {
		return nil
	}
	cp := *v
	cp.PublicKey = copyBytes(v.PublicKey)
	cp.WithdrawalCredentials = copyBytes(v.WithdrawalCredentials)
	return &cp
}

// Checkpoint is an (epoch, root) pair used for justification and attestation votes.
type Checkpoint struct {
	Epoch types.Epoch
	Root  []byte
}

// Copy returns a deep copy of the checkpoint.
func (c *Checkpoint) Copy() *Checkpoint {
	if c == nil {
		return nil
	}
	return &Checkpoint{Epoch: c.Epoch, Root: copyBytes(c.Root)}
}

// AttestationData is the vote cast by an attester.
type AttestationData struct {
	Slot            types.Slot
	CommitteeIndex  types.CommitteeIndex
	BeaconBlockRoot []byte
	Source          *Checkpoint
	Target          *Checkpoint
}

// Attestation is an aggregate of votes from one committee.
type Attestation struct {
	AggregationBits bitfield.Bitlist
	Data            *AttestationData
	Signature       []byte
}

// IndexedAttestation carries explicit attesting indices instead of a committee bitlist.
type IndexedAttestation struct {
	AttestingIndices []uint64
	Data             *AttestationData
	Signature        []byte
}

// BeaconBlockHeader is the header form of a beacon block.
type BeaconBlockHeader struct {
	Slot          types.Slot
	ProposerIndex types.ValidatorIndex
	ParentRoot    []byte
	StateRoot     []byte
	BodyRoot      []byte
}

// SignedBeaconBlockHeader is a header with the proposer signature.
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader
	Signature []byte
}

// ProposerSlashing is evidence of a proposer signing two different headers for the same slot.
type ProposerSlashing struct {
	Header_1 *SignedBeaconBlockHeader
	Header_2 *SignedBeaconBlockHeader
}

// AttesterSlashing is evidence of conflicting attestations.
type AttesterSlashing struct {
	Attestation_1 *IndexedAttestation
	Attestation_2 *IndexedAttestation
}

// SyncAggregate records which sync committee seats signed the previous block root.
type SyncAggregate struct {
	SyncCommitteeBits      bitfield.Bitfield
	SyncCommitteeSignature []byte
}

// BeaconBlockBody holds the operations of a block relevant to proposer rewards.
// SyncAggregate is nil for phase0 blocks.
type BeaconBlockBody struct {
	RandaoReveal      []byte
	Graffiti          []byte
	ProposerSlashings []*ProposerSlashing
	AttesterSlashings []*AttesterSlashing
	Attestations      []*Attestation
	SyncAggregate     *SyncAggregate
}

// BeaconBlock is an unsigned beacon block.
type BeaconBlock struct {
	Slot          types.Slot
	ProposerIndex types.ValidatorIndex
	ParentRoot    []byte
	StateRoot     []byte
	Body          *BeaconBlockBody
}

// SignedBeaconBlock is a beacon block with the proposer signature.
type SignedBeaconBlock struct {
	Block     *BeaconBlock
	Signature []byte
}

// BeaconStateData is the raw pre-state snapshot from which a read-only beacon state is built.
// Only the fields read by reward accounting are carried.
type BeaconStateData struct {
	Slot                        types.Slot
	GenesisValidatorsRoot       []byte
	Validators                  []*Validator
	BlockRoots                  [][]byte
	RandaoMixes                 [][]byte
	PreviousEpochParticipation  []byte
	CurrentEpochParticipation   []byte
	PreviousJustifiedCheckpoint *Checkpoint
	CurrentJustifiedCheckpoint  *Checkpoint
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}
