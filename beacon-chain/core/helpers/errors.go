package helpers

import "github.com/pkg/errors"

var (
	errNilAttestation       = errors.New("attestation can't be nil")
	errNilAttestationData   = errors.New("attestation's data can't be nil")
	errNilAttestationTarget = errors.New("attestation's target can't be nil")
	errNilAttestationSource = errors.New("attestation's source can't be nil")
	errNilAggregationBits   = errors.New("attestation's bitfield can't be nil")
)
