package db

import "github.com/prysmaticlabs/blockrewards/beacon-chain/db/iface"

// ReadOnlyDatabase exposes the block and pre-state retrieval methods.
type ReadOnlyDatabase = iface.ReadOnlyDatabase

// NoHeadAccessDatabase exposes the data writing methods without head access.
type NoHeadAccessDatabase = iface.NoHeadAccessDatabase

// Database defines the necessary methods for the block rewards store.
type Database = iface.Database
