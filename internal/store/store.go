// Package store defines the persistent key-value slot the widgets read at
// startup and overwrite after each change.
package store

import (
	"errors"
	"io"
)

var (
	// ErrNotFound is returned by Get when nothing has been written under a key.
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt is returned when the backing data exists but cannot be parsed.
	ErrCorrupt = errors.New("stored data is corrupt")
)

// KV is a durable get/set-by-key store. Last write wins.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Backend is a KV that holds resources until closed.
type Backend interface {
	KV
	io.Closer
}
