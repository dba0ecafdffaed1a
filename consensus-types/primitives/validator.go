package primitives

// ValidatorIndex in eth2.
type ValidatorIndex uint64

// CommitteeIndex of a beacon committee within a slot.
type CommitteeIndex uint64

// Gwei is the unit of validator balances and rewards.
type Gwei uint64
