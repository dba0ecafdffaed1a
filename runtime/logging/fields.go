package logging

import (
	"fmt"

	"github.com/prysmaticlabs/blockrewards/consensus-types/interfaces"
	"github.com/sirupsen/logrus"
)

// BlockFields extracts a standard set of fields from a block into a logrus.Fields struct
// which can be passed to log.WithFields.
func BlockFields(root [32]byte, blk interfaces.ReadOnlyBeaconBlock) logrus.Fields {
	fields := logrus.Fields{
		"blockRoot": fmt.Sprintf("%#x", root)[:10],
	}
	if blk == nil || blk.IsNil() {
		return fields
	}
	fields["slot"] = blk.Slot()
	fields["proposerIndex"] = blk.ProposerIndex()
	fields["parentRoot"] = fmt.Sprintf("%#x", blk.ParentRoot())[:10]
	if body := blk.Body(); body != nil && !body.IsNil() {
		fields["attestations"] = len(body.Attestations())
		fields["proposerSlashings"] = len(body.ProposerSlashings())
		fields["attesterSlashings"] = len(body.AttesterSlashings())
	}
	return fields
}
