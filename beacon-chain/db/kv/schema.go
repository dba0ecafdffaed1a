package kv

// The schema will define how to store and retrieve data from the db.
// Blocks and pre-states are keyed by block root. The slot index maps a big endian
// slot to the concatenation of every block root seen at that slot, so a cursor walks
// the index in slot order.
var (
	blocksBucket           = []byte("blocks")
	blockSlotIndicesBucket = []byte("block-slot-indices")
	preStatesBucket        = []byte("pre-states")
	chainMetadataBucket    = []byte("chain-metadata")

	// Metadata keys.
	finalizedSlotKey = []byte("finalized-slot")
)
