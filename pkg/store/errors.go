package store

import "errors"

var (
	// ErrNotFound indicates the key is absent or its entry has expired
	ErrNotFound = errors.New("store.not_found")

	// ErrEmptyKey indicates an empty key name was passed
	ErrEmptyKey = errors.New("store.empty_key")
)
