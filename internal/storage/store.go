// Package storage provides the local key-value store the application
// persists its single progress record into. The store is a port: the
// session layer only sees Get/Set/Remove, so tests run against the
// in-memory implementation and the CLI wires the SQLite one.
package storage

// Store is the persistence port. Implementations must make Set idempotent:
// re-writing an identical value is a no-op in effect.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

// ApplicationKey is the single logical record the form session persists.
const ApplicationKey = "application"
