// Package store provides durable key-value storage for Phonebook.
package store

import (
	"context"
	"errors"
)

var (
	// ErrUnknownBackend is returned when the configured backend is not supported.
	ErrUnknownBackend = errors.New("unknown storage backend")
	// ErrClosed is returned when a closed store is used.
	ErrClosed = errors.New("store closed")
)

// Store is a string-keyed slot store that survives restarts.
type Store interface {
	// Get returns the value under key. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key, value string) error
	// Close releases any resources held by the store.
	Close() error
}
