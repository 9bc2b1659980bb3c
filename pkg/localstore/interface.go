// Package localstore provides durable on-device key/value slots, the
// equivalent of a browser's localStorage for a native client.
package localstore

import "errors"

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

var (
	ErrInvalidKey    = errors.New("localstore: invalid key")
	ErrUnknownDriver = errors.New("localstore: unknown driver")
)

// Storage is a flat namespace of named string slots.
type Storage interface {
	// GetItem returns the slot value and whether the slot exists.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Close() error
}
