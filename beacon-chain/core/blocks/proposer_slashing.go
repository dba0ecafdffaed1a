package blocks

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
)

var errNilProposerSlashing = errors.New("nil proposer slashing in block body")

// ProposerSlashingOffender returns the index of the proposer named by the first header of a
// proposer slashing.
func ProposerSlashingOffender(slashing *containers.ProposerSlashing) (primitives.ValidatorIndex, error) {
	if slashing == nil {
		return 0, errNilProposerSlashing
	}
	if slashing.Header_1 == nil || slashing.Header_1.Header == nil {
		return 0, errors.New("nil header in proposer slashing")
	}
	return slashing.Header_1.Header.ProposerIndex, nil
}
