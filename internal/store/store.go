// Package store persists glucose readings so the watch and record commands
// can work across restarts and server outages.
package store

import (
	"time"

	nightscout "github.com/mrcode/nightscout-go"
)

// Store records glucose readings keyed by their reading time.
type Store interface {
	// Put upserts readings; a reading with an already-stored time replaces
	// the stored one.
	Put(readings []nightscout.SGV) error
	// Recent returns up to n readings, newest first.
	Recent(n int) ([]nightscout.SGV, error)
	// Range returns readings with from <= time < to, oldest first.
	Range(from, to time.Time) ([]nightscout.SGV, error)
	Close() error
}
