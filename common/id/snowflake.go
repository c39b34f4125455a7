// Package id generates the int64 primary keys for users, organizations and
// sessions. Snowflake IDs are time-ordered, so primary-key order is roughly
// creation order and inserts stay append-heavy on the index.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	gen  *snowflake.Node
	once sync.Once
)

// Init fixes the node ID for this process. Each server replica needs its own
// node ID for IDs to stay unique across the fleet; repeated calls are no-ops.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		gen, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns the next ID. Init must have been called first.
func New() int64 {
	return gen.Generate().Int64()
}
